package schema_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/reoring/ols/schema"
)

type label string

type tags []string

type inner struct {
	Href string `json:"href"`
}

type record struct {
	Label    label          `json:"label"`
	Tags     tags           `json:"tags"`
	Count    int            `json:"count"`
	Score    *float64       `json:"score"`
	Inner    *inner         `json:"inner"`
	Renamed  string         `ols:"name=other" json:"ignored"`
	Skipped  string         `json:"-"`
	Extra    map[string]any `json:"extra"`
	internal string
}

func recordSchema(t *testing.T) schema.Schema[record] {
	t.Helper()
	in := schema.MustBind[inner](schema.Object().Field("href", schema.StringOf[string]()).Required())
	s, err := schema.Bind[record](schema.Object().
		Field("label", schema.StringOf[label]()).Required().
		Field("tags", schema.StringListOf()).Optional().
		Field("count", schema.IntOf[int64]()).Optional().
		Field("score", schema.NumberOf[float64]()).Optional().
		Field("inner", schema.Of(in)).Wire("_inner").Optional().
		Field("other", schema.StringOf[string]()).Optional().
		UnknownPassthrough("extra"))
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	return s
}

func TestBind_AllFieldKinds(t *testing.T) {
	s := recordSchema(t)
	js := []byte(`{"label":"x","tags":["a"],"count":3,"score":1.5,"_inner":{"href":"h"},"other":"o","loaded":true}`)
	r, err := schema.ParseJSON(context.Background(), s, js)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Label != "x" || !reflect.DeepEqual(r.Tags, tags{"a"}) || r.Count != 3 || r.Renamed != "o" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.Score == nil || *r.Score != 1.5 {
		t.Fatalf("score = %v", r.Score)
	}
	if r.Inner == nil || r.Inner.Href != "h" {
		t.Fatalf("inner = %+v", r.Inner)
	}
	if r.Extra["loaded"] != true {
		t.Fatalf("extra = %#v", r.Extra)
	}
}

func TestBind_AbsentPointersStayNil(t *testing.T) {
	r, err := schema.ParseJSON(context.Background(), recordSchema(t), []byte(`{"label":"x"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Inner != nil || r.Score != nil || r.Tags != nil || r.Extra != nil {
		t.Fatalf("absent fields must be zero: %+v", r)
	}
}

func TestBind_NestedIssuesUseWirePath(t *testing.T) {
	_, err := schema.ParseJSON(context.Background(), recordSchema(t), []byte(`{"label":"x","_inner":{}}`))
	iss, _ := schema.AsIssues(err)
	if !iss.Has("/_inner/href", schema.CodeRequired) {
		t.Fatalf("expected /_inner/href required, got %v", err)
	}
}

func TestBind_RequiresStruct(t *testing.T) {
	if _, err := schema.Bind[string](schema.Object()); err == nil {
		t.Fatalf("expected non-struct T to be rejected")
	}
}

func TestBind_PassthroughTargetMustBeMap(t *testing.T) {
	type bad struct {
		Extra string `json:"extra"`
	}
	if _, err := schema.Bind[bad](schema.Object().UnknownPassthrough("extra")); err == nil {
		t.Fatalf("expected non-map passthrough target to be rejected")
	}
}

func TestResolveStructKey(t *testing.T) {
	rt := reflect.TypeOf(record{})
	cases := map[string]string{
		"Label":    "label",
		"Renamed":  "other",
		"Skipped":  "-",
		"internal": "internal",
	}
	for field, want := range cases {
		sf, _ := rt.FieldByName(field)
		if got := schema.ResolveStructKey(sf); got != want {
			t.Fatalf("%s: got %q want %q", field, got, want)
		}
	}
}
