package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	ErrEmptyParameter   = errors.New("empty parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ParseIDParam returns a record id from the path. Ids are opaque strings:
// UUIDs for records created here, Firestore document ids for migrated ones.
func ParseIDParam(c *gin.Context, param string) (string, error) {
	id := strings.TrimSpace(c.Param(param))
	if id == "" {
		return "", ErrEmptyParameter
	}
	if strings.ContainsAny(id, "/ ") || len(id) > 128 {
		return "", ErrInvalidParameter
	}
	return id, nil
}

func ParseQueryIntParam(c *gin.Context, param string, fallback int) (int, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(valStr)
	if err != nil || v < 0 {
		return 0, ErrInvalidParameter
	}
	return v, nil
}

// ParseQueryDate parses a YYYY-MM-DD query value. ok is false when absent.
func ParseQueryDate(c *gin.Context, param string) (t time.Time, ok bool, err error) {
	valStr := c.Query(param)
	if valStr == "" {
		return time.Time{}, false, nil
	}
	t, err = time.Parse("2006-01-02", valStr)
	if err != nil {
		return time.Time{}, false, ErrInvalidParameter
	}
	return t, true, nil
}

func StringPtr(s string) *string { return &s }

func DerefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
