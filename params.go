package ols

import (
	"bytes"
	"context"
	"regexp"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/ols/model"
	"github.com/reoring/ols/schema"
)

// SearchReturnFields are the documented values for SearchParams.FieldList.
var SearchReturnFields = []string{
	"annotations",
	"annotations_trimmed",
	"description",
	"iri",
	"label",
	"obo_id",
	"ontology_name",
	"ontology_prefix",
	"short_form",
	"subset",
	"synonym",
	"type",
}

// SearchQueryFields are the documented values for SearchParams.QueryFields.
var SearchQueryFields = []string{
	"annotations",
	"description",
	"iri",
	"label",
	"logical_description",
	"obo_id",
	"short_form",
	"subset",
	"synonym",
}

// annotationField matches annotation fields, accepted in addition to the
// documented field names.
var annotationField = regexp.MustCompile(`^\w+_annotation$`)

// List is a list of strings. Decoding from JSON or YAML also accepts a single
// bare string, which becomes a one-element list.
type List []string

func (l *List) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = nil
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := gojson.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = List{s}
		return nil
	}
	var ss []string
	if err := gojson.Unmarshal(b, &ss); err != nil {
		return err
	}
	*l = ss
	return nil
}

func (l *List) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		if n.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = List{n.Value}
		return nil
	}
	var ss []string
	if err := n.Decode(&ss); err != nil {
		return err
	}
	*l = ss
	return nil
}

// Bool returns a pointer to v, for optional parameter fields.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for optional parameter fields.
func Int(v int) *int { return &v }

// SearchParams are the optional filters of Search and Select. Nil pointers and
// empty lists are omitted from the query.
type SearchParams struct {
	Ontology      List             `json:"ontology,omitempty" yaml:"ontology,omitempty"`
	Type          model.EntityType `json:"type,omitempty" yaml:"type,omitempty"`
	Slim          List             `json:"slim,omitempty" yaml:"slim,omitempty"`
	FieldList     List             `json:"fieldList,omitempty" yaml:"fieldList,omitempty"`
	QueryFields   List             `json:"queryFields,omitempty" yaml:"queryFields,omitempty"`
	Exact         *bool            `json:"exact,omitempty" yaml:"exact,omitempty"`
	GroupField    *bool            `json:"groupField,omitempty" yaml:"groupField,omitempty"`
	Obsoletes     *bool            `json:"obsoletes,omitempty" yaml:"obsoletes,omitempty"`
	Local         *bool            `json:"local,omitempty" yaml:"local,omitempty"`
	ChildrenOf    List             `json:"childrenOf,omitempty" yaml:"childrenOf,omitempty"`
	AllChildrenOf List             `json:"allChildrenOf,omitempty" yaml:"allChildrenOf,omitempty"`
	Rows          *int             `json:"rows,omitempty" yaml:"rows,omitempty"`
	Start         *int             `json:"start,omitempty" yaml:"start,omitempty"`
}

var searchParamsSchema = schema.MustBind[SearchParams](schema.Object().
	Field("ontology", schema.StringOrList()).Optional().
	Field("type", schema.EnumOf(model.EntityTypes...)).Optional().
	Field("slim", schema.StringOrList()).Optional().
	Field("fieldList", schema.ScalarOrList(schema.ArrayOf(schema.OneOfOrPattern(annotationField, SearchReturnFields...)))).Optional().
	Field("queryFields", schema.ScalarOrList(schema.ArrayOf(schema.OneOfOrPattern(annotationField, SearchQueryFields...)))).Optional().
	Field("exact", schema.BoolOf[bool]()).Optional().
	Field("groupField", schema.BoolOf[bool]()).Optional().
	Field("obsoletes", schema.BoolOf[bool]()).Optional().
	Field("local", schema.BoolOf[bool]()).Optional().
	Field("childrenOf", schema.StringOrList()).Optional().
	Field("allChildrenOf", schema.StringOrList()).Optional().
	Field("rows", schema.IntOf[int]().Min(0)).Optional().
	Field("start", schema.IntOf[int]().Min(0)).Optional().
	UnknownStrict().
	Describe("search parameters"))

// SearchParamsFrom builds SearchParams from a loosely typed map such as decoded
// JSON. Any list field may be given as a bare string.
func SearchParamsFrom(m map[string]any) (SearchParams, error) {
	p, err := searchParamsSchema.Parse(context.Background(), m)
	if err != nil {
		return SearchParams{}, paramsErr("search", "invalid search parameters", err)
	}
	return p, nil
}

// each visits every set field with its wire name. Lists are passed as
// []string, flags as bool, counts as int.
func (p SearchParams) each(fn func(key string, v any)) {
	lists := []struct {
		key string
		val List
	}{
		{"ontology", p.Ontology},
		{"slim", p.Slim},
		{"fieldList", p.FieldList},
		{"queryFields", p.QueryFields},
		{"childrenOf", p.ChildrenOf},
		{"allChildrenOf", p.AllChildrenOf},
	}
	for _, l := range lists {
		if len(l.val) > 0 {
			fn(l.key, []string(l.val))
		}
	}
	if p.Type != "" {
		fn("type", string(p.Type))
	}
	flags := []struct {
		key string
		val *bool
	}{
		{"exact", p.Exact},
		{"groupField", p.GroupField},
		{"obsoletes", p.Obsoletes},
		{"local", p.Local},
	}
	for _, f := range flags {
		if f.val != nil {
			fn(f.key, *f.val)
		}
	}
	if p.Rows != nil {
		fn("rows", *p.Rows)
	}
	if p.Start != nil {
		fn("start", *p.Start)
	}
}

// Validate checks enum values, field names and non-negative counts.
func (p SearchParams) Validate() error {
	wire := map[string]any{}
	p.each(func(k string, v any) {
		if ss, ok := v.([]string); ok {
			items := make([]any, len(ss))
			for i, s := range ss {
				items[i] = s
			}
			v = items
		}
		wire[k] = v
	})
	if _, err := searchParamsSchema.Parse(context.Background(), wire); err != nil {
		return paramsErr("search", "invalid search parameters", err)
	}
	return nil
}

// QueryMap flattens the parameters into query values: lists joined with ",",
// booleans as "true"/"false", integers in decimal. Unset fields are omitted.
func (p SearchParams) QueryMap() map[string]string {
	q := map[string]string{}
	p.each(func(k string, v any) { q[k] = formatValue(v) })
	return q
}

func formatValue(v any) string {
	switch x := v.(type) {
	case []string:
		return strings.Join(x, ",")
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	}
	return ""
}

// PageParams selects a page of a paginated endpoint. Page starts at 0.
type PageParams struct {
	Page *int `json:"page,omitempty" yaml:"page,omitempty"`
	Size *int `json:"size,omitempty" yaml:"size,omitempty"`
}

// Page returns PageParams for the given page number and size.
func Page(page, size int) PageParams { return PageParams{Page: &page, Size: &size} }

var pageParamsSchema = schema.Object().
	Field("page", schema.IntOf[int]().Min(0)).Optional().
	Field("size", schema.IntOf[int]().Min(1)).Optional().
	UnknownStrict().
	MustBuild()

// Validate requires page >= 0 and size >= 1 when set.
func (p PageParams) Validate() error {
	wire := map[string]any{}
	if p.Page != nil {
		wire["page"] = *p.Page
	}
	if p.Size != nil {
		wire["size"] = *p.Size
	}
	if _, err := pageParamsSchema.Parse(context.Background(), wire); err != nil {
		return paramsErr("page", "invalid page parameters", err)
	}
	return nil
}

// QueryMap returns page and size as query values, omitting unset ones.
func (p PageParams) QueryMap() map[string]string {
	q := map[string]string{}
	if p.Page != nil {
		q["page"] = strconv.Itoa(*p.Page)
	}
	if p.Size != nil {
		q["size"] = strconv.Itoa(*p.Size)
	}
	return q
}

// TermLookupParams identify a term by one of its identifiers.
type TermLookupParams struct {
	IRI       string `json:"iri,omitempty" yaml:"iri,omitempty"`
	ShortForm string `json:"short_form,omitempty" yaml:"short_form,omitempty"`
	OboID     string `json:"obo_id,omitempty" yaml:"obo_id,omitempty"`
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
}

// IsZero reports whether no identifier is set.
func (p TermLookupParams) IsZero() bool { return p == TermLookupParams{} }

// QueryMap returns the non-empty identifiers keyed by their query name.
func (p TermLookupParams) QueryMap() map[string]string {
	q := map[string]string{}
	for k, v := range map[string]string{"iri": p.IRI, "short_form": p.ShortForm, "obo_id": p.OboID, "id": p.ID} {
		if v != "" {
			q[k] = v
		}
	}
	return q
}

func paramsErr(op, msg string, err error) error {
	iss, _ := schema.AsIssues(err)
	return &UsageError{Op: op, Message: msg, Issues: iss}
}

// mergeQuery copies every entry of the sources into one map.
func mergeQuery(srcs ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, m := range srcs {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
