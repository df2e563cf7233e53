package schema_test

import (
	"context"
	"encoding/json"
	"reflect"
	"regexp"
	"testing"

	"github.com/reoring/ols/schema"
)

func TestNumber_AcceptsIntAndFloat(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		in   any
		want float64
	}{
		{json.Number("1700000000000"), 1700000000000},
		{json.Number("1700000000000.5"), 1700000000000.5},
		{float64(3), 3},
		{int64(7), 7},
		{int(2), 2},
	}
	for _, tc := range cases {
		got, err := schema.Number().Parse(ctx, tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("Number(%v) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := schema.Number().Parse(ctx, "1"); err == nil {
		t.Fatalf("expected string to be rejected")
	}
}

func TestInt_RejectsFractions(t *testing.T) {
	ctx := context.Background()
	if v, err := schema.Int().Parse(ctx, json.Number("42")); err != nil || v != 42 {
		t.Fatalf("Int(42) = %v, %v", v, err)
	}
	if v, err := schema.Int().Parse(ctx, json.Number("4e1")); err != nil || v != 40 {
		t.Fatalf("Int(4e1) = %v, %v", v, err)
	}
	_, err := schema.Int().Parse(ctx, json.Number("1.5"))
	iss, _ := schema.AsIssues(err)
	if !iss.Has("/", schema.CodeInvalidType) {
		t.Fatalf("expected invalid_type, got %v", err)
	}
}

func TestIntOf_Min(t *testing.T) {
	obj := schema.Object().Field("rows", schema.IntOf[int]().Min(0)).Optional().MustBuild()
	m, err := obj.Parse(context.Background(), map[string]any{"rows": 5})
	if err != nil || m["rows"] != 5 {
		t.Fatalf("rows = %#v, %v", m["rows"], err)
	}
	_, err = obj.Parse(context.Background(), map[string]any{"rows": -1})
	iss, _ := schema.AsIssues(err)
	if !iss.Has("/rows", schema.CodeTooSmall) {
		t.Fatalf("expected too_small at /rows, got %v", err)
	}
}

func TestURL_RequiresScheme(t *testing.T) {
	ctx := context.Background()
	if _, err := schema.URL().Parse(ctx, "http://purl.obolibrary.org/obo/GO_0043226"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := schema.URL().Parse(ctx, "GO_0043226")
	iss, _ := schema.AsIssues(err)
	if !iss.Has("/", schema.CodeInvalidFormat) {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

type kind string

func TestEnum(t *testing.T) {
	e := schema.Enum[kind]("class", "property")
	if v, err := e.Parse(context.Background(), "class"); err != nil || v != "class" {
		t.Fatalf("Enum(class) = %v, %v", v, err)
	}
	_, err := e.Parse(context.Background(), "ontology")
	iss, _ := schema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != schema.CodeInvalidEnum || iss[0].Hint != "one of class, property" {
		t.Fatalf("unexpected issues: %+v", iss)
	}
}

func TestOneOfOrPattern(t *testing.T) {
	s := schema.OneOfOrPattern(regexp.MustCompile(`^\w+_annotation$`), "iri", "label")
	for _, ok := range []string{"iri", "label", "definition_annotation"} {
		if _, err := s.Parse(context.Background(), ok); err != nil {
			t.Fatalf("%q rejected: %v", ok, err)
		}
	}
	if _, err := s.Parse(context.Background(), "labels"); err == nil {
		t.Fatalf("expected labels to be rejected")
	}
}

func TestStringOrList_WrapsScalar(t *testing.T) {
	obj := schema.Object().
		Field("ontology", schema.StringOrList()).Optional().
		Field("strict", schema.StringListOf()).Optional().
		MustBuild()
	ctx := context.Background()

	a, err := obj.Parse(ctx, map[string]any{"ontology": "mondo"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := obj.Parse(ctx, map[string]any{"ontology": []any{"mondo"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(a["ontology"], []string{"mondo"}) {
		t.Fatalf("scalar and list forms differ: %#v vs %#v", a, b)
	}

	_, err = obj.Parse(ctx, map[string]any{"strict": "mondo"})
	iss, _ := schema.AsIssues(err)
	if !iss.Has("/strict", schema.CodeInvalidType) {
		t.Fatalf("strict list must reject a scalar, got %v", err)
	}
}

func TestArray_CollectsEveryElement(t *testing.T) {
	_, err := schema.StringList().Parse(context.Background(), []any{"a", 1, "b", true})
	iss, _ := schema.AsIssues(err)
	if !reflect.DeepEqual(iss.Paths(), []string{"/1", "/3"}) {
		t.Fatalf("paths = %v", iss.Paths())
	}
}

func TestMapOf_StringLists(t *testing.T) {
	s := schema.Map(schema.StringList())
	m, err := s.Parse(context.Background(), map[string]any{"database_cross_reference": []any{"MeSH:D002477"}})
	if err != nil || len(m["database_cross_reference"]) != 1 {
		t.Fatalf("unexpected result: %#v, %v", m, err)
	}
	_, err = s.Parse(context.Background(), map[string]any{"b": "x", "a": []any{1}})
	iss, _ := schema.AsIssues(err)
	if !reflect.DeepEqual(iss.Paths(), []string{"/a/0", "/b"}) {
		t.Fatalf("paths = %v", iss.Paths())
	}
}

func TestNullable(t *testing.T) {
	obj := schema.Object().Field("label", schema.StringOf[string]().Nullable()).Required().MustBuild()
	m, err := obj.Parse(context.Background(), map[string]any{"label": nil})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, ok := m["label"]; !ok || v != nil {
		t.Fatalf("label = %#v", m)
	}
	s, _ := obj.JSONSchema()
	if len(s.Properties["label"].OneOf) != 2 {
		t.Fatalf("nullable label should export oneOf: %+v", s.Properties["label"])
	}
}

func TestParseJSON_SyntaxError(t *testing.T) {
	_, err := schema.ParseJSON(context.Background(), schema.String(), []byte(`{"a":`))
	iss, ok := schema.AsIssues(err)
	if !ok || !iss.Has("/", schema.CodeParseError) {
		t.Fatalf("expected parse_error, got %v", err)
	}
	_, err = schema.ParseJSON(context.Background(), schema.String(), []byte(`"a" "b"`))
	if iss, _ := schema.AsIssues(err); !iss.Has("/", schema.CodeParseError) {
		t.Fatalf("expected trailing data to be rejected, got %v", err)
	}
}

func TestIssues_Error(t *testing.T) {
	iss := schema.Issues{
		{Path: "/a", Code: schema.CodeRequired},
		{Path: "/b", Code: schema.CodeRequired},
		{Path: "/c", Code: schema.CodeRequired},
		{Path: "/d", Code: schema.CodeRequired},
	}
	want := "required at /a; required at /b; required at /c; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestPathRef_Escaping(t *testing.T) {
	p := schema.Root().Field("a/b").Field("c~d").Index(2).Pointer()
	if p != "/a~1b/c~0d/2" {
		t.Fatalf("pointer = %q", p)
	}
	if schema.At("/x/0").Field("y").Pointer() != "/x/0/y" {
		t.Fatalf("At round trip failed")
	}
}
