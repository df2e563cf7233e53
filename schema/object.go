package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/ols/schema/i18n"
	js "github.com/reoring/ols/schema/jsonschema"
)

type objectField struct {
	name     string   // canonical key in the parsed map
	wire     []string // accepted wire names, in priority order
	ad       Adapter
	required bool
}

// ObjectBuilder declares an object schema field by field.
type ObjectBuilder struct {
	fields        map[string]*objectField
	unknownPolicy UnknownPolicy
	unknownTarget string
	description   string
}

// FieldStep configures the field most recently added to an ObjectBuilder.
type FieldStep struct {
	b *ObjectBuilder
	f *objectField
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:        map[string]*objectField{},
		unknownPolicy: UnknownStrict,
	}
}

// Field registers a field with its adapter. The wire name defaults to name.
func (b *ObjectBuilder) Field(name string, ad Adapter) *FieldStep {
	f := &objectField{name: name, wire: []string{name}, ad: ad}
	b.fields[name] = f
	return &FieldStep{b: b, f: f}
}

// Required marks the field as required and returns the builder.
func (f *FieldStep) Required() *ObjectBuilder {
	f.f.required = true
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *FieldStep) Optional() *ObjectBuilder {
	f.f.required = false
	return f.b
}

// Wire replaces the accepted wire names of the field. When several are given
// the first one present in the input wins; the canonical key is unchanged.
func (f *FieldStep) Wire(names ...string) *FieldStep {
	if len(names) > 0 {
		f.f.wire = append([]string(nil), names...)
	}
	return f
}

func (f *FieldStep) Field(name string, ad Adapter) *FieldStep { return f.b.Field(name, ad) }
func (f *FieldStep) UnknownStrict() *ObjectBuilder            { return f.b.UnknownStrict() }
func (f *FieldStep) UnknownStrip() *ObjectBuilder             { return f.b.UnknownStrip() }
func (f *FieldStep) UnknownPassthrough(target string) *ObjectBuilder {
	return f.b.UnknownPassthrough(target)
}
func (f *FieldStep) Build() (*ObjectSchema, error) { return f.b.Build() }
func (f *FieldStep) MustBuild() *ObjectSchema      { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, n := range names {
		if f, ok := b.fields[n]; ok {
			f.required = true
		}
	}
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.unknownPolicy = UnknownStrict
	b.unknownTarget = ""
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.unknownPolicy = UnknownStrip
	b.unknownTarget = ""
	return b
}

// UnknownPassthrough keeps unknown keys, storing them as a map[string]any
// under target in the parsed output.
func (b *ObjectBuilder) UnknownPassthrough(target string) *ObjectBuilder {
	b.unknownPolicy = UnknownPassthrough
	b.unknownTarget = target
	return b
}

// Describe attaches a description exported with JSON Schema.
func (b *ObjectBuilder) Describe(text string) *ObjectBuilder {
	b.description = text
	return b
}

// Build validates the builder and returns a Schema.
func (b *ObjectBuilder) Build() (*ObjectSchema, error) {
	if b.unknownPolicy == UnknownPassthrough && b.unknownTarget == "" {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "unknown_target missing for passthrough"}}
	}
	wire := make(map[string]string, len(b.fields))
	names := make([]string, 0, len(b.fields))
	for name, f := range b.fields {
		names = append(names, name)
		for _, w := range f.wire {
			if owner, dup := wire[w]; dup {
				return nil, Issues{Issue{Path: "/" + w, Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: fmt.Sprintf("wire name shared by %q and %q", owner, name)}}
			}
			wire[w] = name
		}
	}
	if b.unknownPolicy == UnknownPassthrough {
		if _, clash := b.fields[b.unknownTarget]; clash {
			return nil, Issues{Issue{Path: "/" + b.unknownTarget, Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: "unknown_target collides with a declared field"}}
		}
	}
	// cache sorted keys for deterministic order without per-parse sorting
	sort.Strings(names)
	fields := make([]*objectField, 0, len(names))
	for _, n := range names {
		fields = append(fields, b.fields[n])
	}
	return &ObjectSchema{
		fields:        fields,
		wire:          wire,
		unknownPolicy: b.unknownPolicy,
		unknownTarget: b.unknownTarget,
		description:   b.description,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() *ObjectSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ObjectSchema validates JSON objects into map[string]any keyed by canonical
// field names.
type ObjectSchema struct {
	fields        []*objectField
	wire          map[string]string // wire name -> canonical name
	unknownPolicy UnknownPolicy
	unknownTarget string
	description   string
}

var _ Schema[map[string]any] = (*ObjectSchema)(nil)

// lookup returns the first wire name of f present in src.
func (f *objectField) lookup(src map[string]any) (string, any, bool) {
	for _, w := range f.wire {
		if v, ok := src[w]; ok {
			return w, v, true
		}
	}
	return "", nil, false
}

// collectKnown parses declared fields and enforces required ones.
func (o *ObjectSchema) collectKnown(ctx context.Context, src map[string]any) (map[string]any, Issues) {
	out := make(map[string]any, len(src))
	var iss Issues
	for _, f := range o.fields {
		w, val, exists := f.lookup(src)
		if exists && val == nil && !f.ad.nullable && !f.required {
			// null on an optional field reads as absent
			exists = false
		}
		if exists {
			parsed, err := f.ad.run(ctx, val)
			if err != nil {
				iss = AppendIssues(iss, issuesFromErr(Root().Field(w).Pointer(), err)...)
				if IsFailFast(ctx) {
					return out, iss
				}
				continue
			}
			out[f.name] = parsed
			continue
		}
		if f.required {
			hint := "required property missing"
			if len(f.wire) > 1 {
				hint = "expected one of " + strings.Join(f.wire, ", ")
			}
			iss = AppendIssues(iss, Issue{Path: Root().Field(f.wire[0]).Pointer(), Code: CodeRequired, Message: i18n.T(CodeRequired, nil), Hint: hint})
			if IsFailFast(ctx) {
				return out, iss
			}
		}
	}
	return out, iss
}

// collectUnknown processes unknown keys according to unknownPolicy and may write into out for passthrough.
func (o *ObjectSchema) collectUnknown(src map[string]any, out map[string]any) Issues {
	var iss Issues
	// unknown keys in key-sorted order
	uks := make([]string, 0, len(src))
	for k := range src {
		if _, known := o.wire[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	for _, k := range uks {
		switch o.unknownPolicy {
		case UnknownStrict:
			iss = AppendIssues(iss, Issue{Path: Root().Field(k).Pointer(), Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil)})
		case UnknownStrip:
			// drop
		case UnknownPassthrough:
			extra, _ := out[o.unknownTarget].(map[string]any)
			if extra == nil {
				extra = map[string]any{}
			}
			extra[k] = src[k]
			out[o.unknownTarget] = extra
		}
	}
	return iss
}

func (o *ObjectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("object")
	}
	out, iss := o.collectKnown(ctx, src)
	if IsFailFast(ctx) && len(iss) > 0 {
		return nil, iss
	}
	if issUnknown := o.collectUnknown(src, out); len(issUnknown) > 0 {
		iss = AppendIssues(iss, issUnknown...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// Keys returns the canonical field names in sorted order.
func (o *ObjectSchema) Keys() []string {
	out := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		out = append(out, f.name)
	}
	return out
}

// JSONSchema exports properties under their wire names. Aliased fields list
// every accepted wire name; only single-name required fields are listed as
// required.
func (o *ObjectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	var req []string
	for _, f := range o.fields {
		ps := f.ad.schema()
		for _, w := range f.wire {
			props[w] = ps
		}
		if f.required && len(f.wire) == 1 {
			req = append(req, f.wire[0])
		}
	}
	sort.Strings(req)
	var additional any
	switch o.unknownPolicy {
	case UnknownStrict:
		additional = false
	case UnknownStrip, UnknownPassthrough:
		additional = true
	}
	return &js.Schema{Type: "object", Description: o.description, Properties: props, Required: req, AdditionalProperties: additional}, nil
}
