package schema

import (
	"context"
	"encoding/json"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/reoring/ols/schema/i18n"
	js "github.com/reoring/ols/schema/jsonschema"
)

func invalidType(expected string) Issues {
	return Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected}), Hint: "expected " + expected}}
}

// String returns the minimal string schema implementation.
func String() Schema[string] { return stringSchema{} }

type stringSchema struct{}

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidType("string")
	}
	return s, nil
}

func (stringSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

// StringOf returns an Adapter for a string wire value projected to domain type T.
func StringOf[T ~string]() Adapter {
	return Adapter{
		parse: func(ctx context.Context, v any) (any, error) {
			s, err := (stringSchema{}).Parse(ctx, v)
			if err != nil {
				return nil, err
			}
			return T(s), nil
		},
		jsonSchema: stringSchema{}.JSONSchema,
	}
}

// Bool returns the minimal bool schema implementation.
func Bool() Schema[bool] { return boolSchema{} }

type boolSchema struct{}

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, invalidType("boolean")
	}
	return b, nil
}

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

// BoolOf returns an Adapter for a bool wire value projected to domain type T.
func BoolOf[T ~bool]() Adapter {
	return Adapter{
		parse: func(ctx context.Context, v any) (any, error) {
			b, err := (boolSchema{}).Parse(ctx, v)
			if err != nil {
				return nil, err
			}
			return T(b), nil
		},
		jsonSchema: boolSchema{}.JSONSchema,
	}
}

// Int returns a schema for integral JSON numbers. Fractional values are
// rejected with CodeInvalidType.
func Int() Schema[int64] { return intSchema{} }

type intSchema struct{}

func (intSchema) Parse(ctx context.Context, v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(string(n), 64)
		if err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f), nil
		}
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n), nil
		}
	}
	return 0, invalidType("integer")
}

func (intSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "integer"}, nil }

// IntOf returns an Adapter for an integral wire value projected to domain type T.
func IntOf[T ~int | ~int64]() Adapter {
	return Adapter{
		parse: func(ctx context.Context, v any) (any, error) {
			i, err := (intSchema{}).Parse(ctx, v)
			if err != nil {
				return nil, err
			}
			return T(i), nil
		},
		jsonSchema: intSchema{}.JSONSchema,
	}
}

// Number returns a schema accepting both integer and floating-point wire
// representations, yielding float64.
func Number() Schema[float64] { return numberSchema{} }

type numberSchema struct{}

func (numberSchema) Parse(ctx context.Context, v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		if f, err := strconv.ParseFloat(string(n), 64); err == nil {
			return f, nil
		}
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, invalidType("number")
}

func (numberSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

// NumberOf returns an Adapter for a numeric wire value projected to domain type T.
func NumberOf[T ~float64]() Adapter {
	return Adapter{
		parse: func(ctx context.Context, v any) (any, error) {
			f, err := (numberSchema{}).Parse(ctx, v)
			if err != nil {
				return nil, err
			}
			return T(f), nil
		},
		jsonSchema: numberSchema{}.JSONSchema,
	}
}

// URL returns a string schema that requires an absolute URL or IRI (a scheme
// must be present).
func URL() Schema[string] { return urlSchema{} }

type urlSchema struct{}

func (urlSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidType("string")
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return "", Issues{Issue{Path: "/", Code: CodeInvalidFormat, Message: i18n.T(CodeInvalidFormat, map[string]string{"format": "uri"}), Hint: "uri", Cause: err}}
	}
	return s, nil
}

func (urlSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "uri"}, nil
}

// URLOf returns an Adapter for an absolute URL projected to domain type T.
func URLOf[T ~string]() Adapter {
	return Adapter{
		parse: func(ctx context.Context, v any) (any, error) {
			s, err := (urlSchema{}).Parse(ctx, v)
			if err != nil {
				return nil, err
			}
			return T(s), nil
		},
		jsonSchema: urlSchema{}.JSONSchema,
	}
}

// Enum returns a string schema restricted to the given values.
func Enum[T ~string](values ...T) Schema[T] {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[string(v)] = struct{}{}
	}
	return enumSchema[T]{values: values, set: set}
}

type enumSchema[T ~string] struct {
	values []T
	set    map[string]struct{}
}

func (e enumSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidType("string")
	}
	if _, ok := e.set[s]; !ok {
		return "", Issues{Issue{Path: "/", Code: CodeInvalidEnum, Message: i18n.T(CodeInvalidEnum, nil), Hint: "one of " + e.joined(), Params: map[string]any{"got": s}}}
	}
	return T(s), nil
}

func (e enumSchema[T]) joined() string {
	parts := make([]string, 0, len(e.values))
	for _, v := range e.values {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ", ")
}

func (e enumSchema[T]) JSONSchema() (*js.Schema, error) {
	vals := make([]any, 0, len(e.values))
	for _, v := range e.values {
		vals = append(vals, string(v))
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}

// EnumOf adapts Enum for use in object builders.
func EnumOf[T ~string](values ...T) Adapter { return adapterFromSchema[T](Enum(values...)) }

// OneOfOrPattern returns a string schema accepting one of the given values or
// any string matching re. Rejections are reported as CodeInvalidEnum.
func OneOfOrPattern(re *regexp.Regexp, values ...string) Schema[string] {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return openEnumSchema{set: set, values: values, re: re}
}

type openEnumSchema struct {
	set    map[string]struct{}
	values []string
	re     *regexp.Regexp
}

func (o openEnumSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidType("string")
	}
	if _, ok := o.set[s]; ok {
		return s, nil
	}
	if o.re != nil && o.re.MatchString(s) {
		return s, nil
	}
	hint := "one of " + strings.Join(o.values, ", ")
	if o.re != nil {
		hint += " or matching " + o.re.String()
	}
	return "", Issues{Issue{Path: "/", Code: CodeInvalidEnum, Message: i18n.T(CodeInvalidEnum, nil), Hint: hint, Params: map[string]any{"got": s}}}
}

func (o openEnumSchema) JSONSchema() (*js.Schema, error) {
	vals := make([]any, 0, len(o.values))
	for _, v := range o.values {
		vals = append(vals, v)
	}
	alts := []*js.Schema{{Type: "string", Enum: vals}}
	if o.re != nil {
		alts = append(alts, &js.Schema{Type: "string", Format: "regex:" + o.re.String()})
	}
	return &js.Schema{OneOf: alts}, nil
}

// Any accepts every value, including null, unchanged.
func Any() Adapter {
	return Adapter{
		parse:      func(ctx context.Context, v any) (any, error) { return v, nil },
		jsonSchema: func() (*js.Schema, error) { return &js.Schema{}, nil },
		nullable:   true,
	}
}

// MapAny returns a minimal Schema[map[string]any] useful for loose objects.
func MapAny() Schema[map[string]any] { return mapAnySchema{} }

type mapAnySchema struct{}

func (mapAnySchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("object")
	}
	return m, nil
}

func (mapAnySchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "object", AdditionalProperties: true}, nil
}
