package application

import (
	"strings"

	"github.com/linskybing/catalyst/pkg/utils"
)

// optionalID treats empty and blank references as unset.
func optionalID(id *string) *string {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	return utils.StringPtr(strings.TrimSpace(*id))
}

func optionalText(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
