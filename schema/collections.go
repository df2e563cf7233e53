package schema

import (
	"context"
	"sort"

	js "github.com/reoring/ols/schema/jsonschema"
)

// Array returns an array schema with the given element schema. Every failing
// element is reported, each under its own index.
func Array[E any](elem Schema[E]) Schema[[]E] {
	return &arraySchema[E]{elem: elem}
}

type arraySchema[E any] struct {
	elem Schema[E]
}

// ArrayOf adapts Array[E] to an Adapter for use in object builders.
// Example: Field("terms", schema.ArrayOf(termSchema))
func ArrayOf[E any](elem Schema[E]) Adapter {
	return adapterFromSchema[[]E](Array(elem))
}

func (a *arraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	switch src := v.(type) {
	case []any:
		res := make([]E, 0, len(src))
		var iss Issues
		for i := range src {
			ev, err := a.elem.Parse(ctx, src[i])
			if err != nil {
				iss = AppendIssues(iss, issuesFromErr(Root().Index(i).Pointer(), err)...)
				if IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
			res = append(res, ev)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return res, nil
	case []E:
		items := make([]any, len(src))
		for i := range src {
			items[i] = src[i]
		}
		return a.Parse(ctx, items)
	default:
		return nil, invalidType("array")
	}
}

func (a *arraySchema[E]) JSONSchema() (*js.Schema, error) {
	items, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: items}, nil
}

// StringList returns a schema for arrays of strings.
func StringList() Schema[[]string] { return Array(String()) }

// StringListOf adapts StringList for use in object builders.
func StringListOf() Adapter { return adapterFromSchema[[]string](StringList()) }

// StringOrList adapts StringList and additionally accepts a bare string,
// wrapping it into a one-element list before validation.
func StringOrList() Adapter { return ScalarOrList(StringListOf()) }

// ScalarOrList lets an array adapter also accept a bare string, wrapped into
// a one-element list before validation.
func ScalarOrList(ad Adapter) Adapter {
	ad.normalize = WrapScalar
	return ad
}

// WrapScalar turns a bare string into a one-element list; every other value is
// returned unchanged.
func WrapScalar(v any) any {
	if s, ok := v.(string); ok {
		return []any{s}
	}
	return v
}

// Map returns a schema for JSON objects where all properties are validated by
// elem schema.
func Map[V any](elem Schema[V]) Schema[map[string]V] { return mapSchema[V]{val: elem} }

// MapOf adapts Map[V] to an Adapter for use in object builders.
func MapOf[V any](elem Schema[V]) Adapter {
	return adapterFromSchema[map[string]V](Map(elem))
}

type mapSchema[V any] struct{ val Schema[V] }

func (m mapSchema[V]) Parse(ctx context.Context, v any) (map[string]V, error) {
	switch src := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(src))
		for k := range src {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]V, len(src))
		var iss Issues
		for _, k := range keys {
			pv, err := m.val.Parse(ctx, src[k])
			if err != nil {
				iss = AppendIssues(iss, issuesFromErr(Root().Field(k).Pointer(), err)...)
				if IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
			out[k] = pv
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	case map[string]V:
		return src, nil
	default:
		return nil, invalidType("object")
	}
}

func (m mapSchema[V]) JSONSchema() (*js.Schema, error) {
	vs, err := m.val.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "object", AdditionalProperties: vs}, nil
}
