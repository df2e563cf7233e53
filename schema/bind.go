package schema

import (
	"context"
	"reflect"
	"strings"

	js "github.com/reoring/ols/schema/jsonschema"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// canonical key.
// Priority: ols:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("ols"); gt != "" {
		parts := strings.Split(gt, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// Bind builds an object schema and binds it to struct type T.
func Bind[T any](b *ObjectBuilder) (Schema[T], error) {
	os, err := b.Build()
	if err != nil {
		return nil, err
	}
	return newTypedObjectSchema[T](os)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b *ObjectBuilder) Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

// typedObjectSchema adapts an ObjectSchema to a typed struct T using key resolution.
type typedObjectSchema[T any] struct {
	inner      *ObjectSchema
	t          reflect.Type
	fieldByKey map[string]int // canonical key -> struct field index
	wireByKey  map[string]string
}

func newTypedObjectSchema[T any](os *ObjectSchema) (Schema[T], error) {
	var t T
	rt := reflect.TypeOf(t)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "Bind[T] requires struct T"}}
	}
	idxByName := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	fm := make(map[string]int)
	wm := make(map[string]string)
	for _, f := range os.fields {
		if i, ok := idxByName[f.name]; ok {
			fm[f.name] = i
			wm[f.name] = f.wire[0]
		}
	}
	if tgt := os.unknownTarget; tgt != "" {
		i, ok := idxByName[tgt]
		if !ok {
			return nil, Issues{Issue{Path: "/" + tgt, Code: CodeParseError, Message: "unknown_target has no struct field"}}
		}
		if rt.Field(i).Type != reflect.TypeOf(map[string]any(nil)) {
			return nil, Issues{Issue{Path: "/" + tgt, Code: CodeInvalidType, Message: "unknown_target must be map[string]any"}}
		}
		fm[tgt] = i
		wm[tgt] = tgt
	}
	return &typedObjectSchema[T]{inner: os, t: rt, fieldByKey: fm, wireByKey: wm}, nil
}

// Parse maps wire -> map via inner, then into struct fields by mapping.
func (s *typedObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	m, err := s.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	rv := reflect.New(s.t).Elem()
	var iss Issues
	for key, idx := range s.fieldByKey {
		val, ok := m[key]
		if !ok || val == nil {
			continue
		}
		if !assign(rv.Field(idx), reflect.ValueOf(val)) {
			iss = AppendIssues(iss, Issue{Path: Root().Field(s.wireByKey[key]).Pointer(), Code: CodeInvalidType, Message: "field type mismatch"})
		}
	}
	if len(iss) > 0 {
		return zero, iss
	}
	return rv.Interface().(T), nil
}

// assign stores vv into fv, allocating pointers and converting named types
// (for example []string into a ~[]string list type).
func assign(fv, vv reflect.Value) bool {
	if !fv.CanSet() {
		return false
	}
	switch {
	case vv.Type().AssignableTo(fv.Type()):
		fv.Set(vv)
	case fv.Kind() == reflect.Pointer && vv.Type().AssignableTo(fv.Type().Elem()):
		p := reflect.New(fv.Type().Elem())
		p.Elem().Set(vv)
		fv.Set(p)
	case fv.Kind() == reflect.Pointer && convertible(vv.Type(), fv.Type().Elem()):
		p := reflect.New(fv.Type().Elem())
		p.Elem().Set(vv.Convert(fv.Type().Elem()))
		fv.Set(p)
	case convertible(vv.Type(), fv.Type()):
		fv.Set(vv.Convert(fv.Type()))
	case fv.Kind() == reflect.Interface && vv.Type().Implements(fv.Type()):
		fv.Set(vv)
	default:
		return false
	}
	return true
}

// convertible admits conversions between types of the same kind (named
// strings, lists) and between numeric kinds; int -> string is never allowed.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	return from.Kind() == to.Kind() || (isNumeric(from.Kind()) && isNumeric(to.Kind()))
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (s *typedObjectSchema[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }
