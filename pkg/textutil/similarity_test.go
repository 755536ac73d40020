package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("", ""))
	assert.Equal(t, 1.0, Ratio("alice", "alice"))
	assert.Equal(t, 0.0, Ratio("abc", "xyz"))
	// "abcd" vs "bcde": "bcd" matches, 2*3/8
	assert.InDelta(t, 0.75, Ratio("abcd", "bcde"), 1e-9)
	// "jon" vs "john": "jo" + "n", 2*3/7
	assert.InDelta(t, 6.0/7.0, Ratio("jon", "john"), 1e-9)
}

func TestBestMatch(t *testing.T) {
	names := []string{"Alice Johnson", "Bob Smith", "Jon"}

	assert.Equal(t, 2, BestMatch("john", names, 0.6))
	assert.Equal(t, 0, BestMatch("  alice johnson ", names, 0.6))
	assert.Equal(t, 1, BestMatch("Bob Smyth", names, 0.6))
	assert.Equal(t, -1, BestMatch("Zed", names, 0.6))
	assert.Equal(t, -1, BestMatch("", names, 0.6))
	assert.Equal(t, -1, BestMatch("alice", nil, 0.6))
}
