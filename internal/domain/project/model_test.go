package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIdentifier(t *testing.T) {
	cases := map[string]string{
		"Mobile App":            "MOBILEAPP",
		"Customer Portal Redux": "CUSTOMERP",
		"api":                   "API",
		"Café Rewrite":          "CAFÉREWRI",
	}
	for name, want := range cases {
		assert.Equal(t, want, DeriveIdentifier(name), name)
	}
}
