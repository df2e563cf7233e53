package schema

import (
	"bytes"
	"context"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/ols/schema/i18n"
)

// DecodeJSON decodes a single JSON document into an any tree. Numbers are kept
// as json.Number so integer and float wire forms stay distinguishable.
func DecodeJSON(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: err.Error(), Cause: err}}
	}
	if dec.More() {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "trailing data after JSON value"}}
	}
	return v, nil
}

// ParseJSON decodes data and validates it with s.
func ParseJSON[T any](ctx context.Context, s Schema[T], data []byte) (T, error) {
	return ParseReader(ctx, s, bytes.NewReader(data))
}

// ParseReader decodes one JSON document from r and validates it with s.
func ParseReader[T any](ctx context.Context, s Schema[T], r io.Reader) (T, error) {
	var zero T
	if s == nil {
		return zero, Issues{Issue{Path: "/", Code: CodeParseError, Message: "nil schema"}}
	}
	v, err := DecodeJSON(r)
	if err != nil {
		return zero, err
	}
	return s.Parse(ctx, v)
}
