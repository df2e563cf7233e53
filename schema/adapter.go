package schema

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/reoring/ols/schema/i18n"
	js "github.com/reoring/ols/schema/jsonschema"
)

// Adapter adapts Schema[T] to an any-typed wrapper used by object fields.
// normalize runs before parse and is the only place where loose input is
// reshaped (for example a bare string into a one-element list).
type Adapter struct {
	parse      func(context.Context, any) (any, error)
	normalize  func(any) any
	jsonSchema func() (*js.Schema, error)
	nullable   bool
}

// adapterFromSchema wraps a strongly typed Schema[T] as Adapter for Field builders.
func adapterFromSchema[T any](s Schema[T]) Adapter {
	return Adapter{
		parse:      func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		jsonSchema: s.JSONSchema,
	}
}

// Of adapts a nested typed schema (usually from Bind) for use as a field.
func Of[T any](s Schema[T]) Adapter { return adapterFromSchema[T](s) }

func (ad Adapter) run(ctx context.Context, v any) (any, error) {
	if ad.normalize != nil {
		v = ad.normalize(v)
	}
	if v == nil && ad.nullable {
		return nil, nil
	}
	if ad.parse == nil {
		return v, nil
	}
	return ad.parse(ctx, v)
}

func (ad Adapter) schema() *js.Schema {
	var s *js.Schema
	if ad.jsonSchema != nil {
		if ps, err := ad.jsonSchema(); err == nil && ps != nil {
			s = ps
		}
	}
	if s == nil {
		s = &js.Schema{}
	}
	if ad.nullable && s.Type != "" {
		return js.Nullable(s)
	}
	return s
}

// Nullable wraps an Adapter to accept JSON null. Parsing a null yields nil.
func Nullable(ad Adapter) Adapter {
	out := ad
	out.nullable = true
	return out
}

// Nullable enables fluent chaining: schema.StringOf[string]().Nullable()
func (ad Adapter) Nullable() Adapter { return Nullable(ad) }

// Min sets a numeric minimum (inclusive) constraint at runtime and in JSON Schema.
// Non-numeric values are ignored by this guard (type errors are handled elsewhere).
func (ad Adapter) Min(n float64) Adapter {
	prevParse := ad.parse
	prevJSON := ad.jsonSchema
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if prevParse != nil {
			val, err := prevParse(ctx, v)
			if err != nil {
				return nil, err
			}
			if err := minCheck(val, n); err != nil {
				return nil, err
			}
			return val, nil
		}
		if err := minCheck(v, n); err != nil {
			return nil, err
		}
		return v, nil
	}
	out.jsonSchema = func() (*js.Schema, error) {
		s := &js.Schema{}
		if prevJSON != nil {
			ps, err := prevJSON()
			if err != nil {
				return nil, err
			}
			if ps != nil {
				s = ps
			}
		}
		s.Minimum = &n
		if s.Type == "" {
			s.Type = "number"
		}
		return s, nil
	}
	return out
}

func minCheck(v any, limit float64) error {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		pf, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return nil
		}
		f = pf
	default:
		return nil
	}
	if f < limit {
		return Issues{Issue{Path: "/", Code: CodeTooSmall, Message: i18n.T(CodeTooSmall, nil), Params: map[string]any{"min": limit, "got": f}}}
	}
	return nil
}
