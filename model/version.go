package model

import (
	"fmt"
	"strings"
)

// APIVersion selects the response shapes a client validates against.
type APIVersion string

const (
	V3 APIVersion = "v3"
	V4 APIVersion = "v4"
)

// ParseAPIVersion accepts "v3", "3", "ols3" and the v4 equivalents, case-insensitively.
func ParseAPIVersion(s string) (APIVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v3", "3", "ols3":
		return V3, nil
	case "v4", "4", "ols4":
		return V4, nil
	}
	return "", fmt.Errorf("unknown API version %q (want v3 or v4)", s)
}

func (v APIVersion) String() string { return string(v) }

// Valid reports whether v is a supported version.
func (v APIVersion) Valid() bool { return v == V3 || v == V4 }
