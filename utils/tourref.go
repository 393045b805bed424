package utils

import (
	"errors"
	"strconv"
	"strings"
)

var ErrBadRef = errors.New("invalid numeric reference")

// ParseRef normalizes a path/query reference into a numeric id. Handlers call
// this at the boundary so business logic only ever sees a typed id.
func ParseRef(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrBadRef
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrBadRef
	}
	return uint(id), nil
}
