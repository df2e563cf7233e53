package ols

import "github.com/reoring/ols/model"

// APIVersion selects between the OLS3 and OLS4 response shapes.
type APIVersion = model.APIVersion

const (
	V3 = model.V3
	V4 = model.V4
)

// ParseAPIVersion parses "v3"/"v4" and their short forms.
func ParseAPIVersion(s string) (APIVersion, error) { return model.ParseAPIVersion(s) }
