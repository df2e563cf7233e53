package ols_test

import (
	"context"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reoring/ols"
	"github.com/reoring/ols/model"
	"github.com/reoring/ols/schema"
)

func TestSearchParams_QueryMap(t *testing.T) {
	p := ols.SearchParams{
		Ontology:  ols.List{"mondo", "upheno"},
		Type:      model.EntityClass,
		FieldList: ols.List{"iri", "label"},
		Exact:     ols.Bool(false),
		Local:     ols.Bool(true),
		Rows:      ols.Int(10),
		Start:     ols.Int(0),
	}
	assert.Equal(t, map[string]string{
		"ontology":  "mondo,upheno",
		"type":      "class",
		"fieldList": "iri,label",
		"exact":     "false",
		"local":     "true",
		"rows":      "10",
		"start":     "0",
	}, p.QueryMap())
}

func TestSearchParams_QueryMapOmitsUnset(t *testing.T) {
	assert.Empty(t, ols.SearchParams{}.QueryMap())
	q := ols.SearchParams{Slim: ols.List{}, ChildrenOf: ols.List{"http://purl.obolibrary.org/obo/GO_0005575"}}.QueryMap()
	assert.Equal(t, map[string]string{"childrenOf": "http://purl.obolibrary.org/obo/GO_0005575"}, q)
	for _, k := range []string{"ontology", "type", "slim", "exact", "groupField", "obsoletes", "local", "rows", "start"} {
		assert.NotContains(t, q, k)
	}
}

func TestSearchParamsFrom_BareStringEqualsList(t *testing.T) {
	for _, key := range []string{"ontology", "slim", "childrenOf", "allChildrenOf"} {
		a, err := ols.SearchParamsFrom(map[string]any{key: "mondo"})
		require.NoError(t, err, key)
		b, err := ols.SearchParamsFrom(map[string]any{key: []any{"mondo"}})
		require.NoError(t, err, key)
		assert.Equal(t, a, b, key)
		assert.Equal(t, a.QueryMap(), b.QueryMap(), key)
		assert.Equal(t, map[string]string{key: "mondo"}, a.QueryMap())
	}

	p, err := ols.SearchParamsFrom(map[string]any{"fieldList": "label", "queryFields": []string{"synonym", "definition_annotation"}})
	require.NoError(t, err)
	assert.Equal(t, ols.List{"label"}, p.FieldList)
	assert.Equal(t, ols.List{"synonym", "definition_annotation"}, p.QueryFields)
}

func TestSearchParamsFrom_AllFields(t *testing.T) {
	p, err := ols.SearchParamsFrom(map[string]any{
		"ontology":   []any{"go"},
		"type":       "property",
		"exact":      true,
		"groupField": false,
		"obsoletes":  true,
		"rows":       25,
		"start":      5,
	})
	require.NoError(t, err)
	assert.Equal(t, model.EntityProperty, p.Type)
	require.NotNil(t, p.GroupField)
	assert.False(t, *p.GroupField)
	assert.Nil(t, p.Local)
	assert.Equal(t, 25, *p.Rows)
	assert.Equal(t, "5", p.QueryMap()["start"])
}

func TestSearchParamsFrom_InvalidIsUsageError(t *testing.T) {
	_, err := ols.SearchParamsFrom(map[string]any{
		"rows":        -1,
		"type":        "thing",
		"fieldList":   []any{"label", "labels"},
		"queryFields": "type",
		"q":           "cow",
		"exact":       "yes",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ols.ErrUsage)
	iss, ok := schema.AsIssues(err)
	require.True(t, ok)
	assert.True(t, iss.Has("/rows", schema.CodeTooSmall), iss.Paths())
	assert.True(t, iss.Has("/type", schema.CodeInvalidEnum), iss.Paths())
	assert.True(t, iss.Has("/fieldList/1", schema.CodeInvalidEnum), iss.Paths())
	assert.True(t, iss.Has("/queryFields/0", schema.CodeInvalidEnum), iss.Paths())
	assert.True(t, iss.Has("/q", schema.CodeUnknownKey), iss.Paths())
	assert.True(t, iss.Has("/exact", schema.CodeInvalidType), iss.Paths())
}

func TestSearchParams_Validate(t *testing.T) {
	assert.NoError(t, ols.SearchParams{}.Validate())
	assert.NoError(t, ols.SearchParams{FieldList: ols.List{"iri", "has_exact_synonym_annotation"}}.Validate())

	err := ols.SearchParams{Start: ols.Int(-3), Type: "concept"}.Validate()
	var ue *ols.UsageError
	require.ErrorAs(t, err, &ue)
	assert.True(t, ue.Issues.Has("/start", schema.CodeTooSmall))
	assert.True(t, ue.Issues.Has("/type", schema.CodeInvalidEnum))
}

func TestList_DecodesBareString(t *testing.T) {
	var fromJSON struct {
		A ols.List `json:"a"`
		B ols.List `json:"b"`
		C ols.List `json:"c"`
	}
	require.NoError(t, gojson.Unmarshal([]byte(`{"a": "mondo", "b": ["mondo", "upheno"], "c": null}`), &fromJSON))
	assert.Equal(t, ols.List{"mondo"}, fromJSON.A)
	assert.Equal(t, ols.List{"mondo", "upheno"}, fromJSON.B)
	assert.Nil(t, fromJSON.C)

	var fromYAML ols.SearchParams
	require.NoError(t, yaml.Unmarshal([]byte("ontology: mondo\nslim: [a, b]\nrows: 3\n"), &fromYAML))
	assert.Equal(t, ols.List{"mondo"}, fromYAML.Ontology)
	assert.Equal(t, ols.List{"a", "b"}, fromYAML.Slim)
	assert.Equal(t, 3, *fromYAML.Rows)
}

func TestPageParams(t *testing.T) {
	assert.Empty(t, ols.PageParams{}.QueryMap())
	assert.Equal(t, map[string]string{"page": "1", "size": "20"}, ols.Page(1, 20).QueryMap())
	assert.NoError(t, ols.Page(0, 1).Validate())
	assert.ErrorIs(t, ols.PageParams{Size: ols.Int(0)}.Validate(), ols.ErrUsage)
}

func TestTermLookupParams(t *testing.T) {
	assert.True(t, ols.TermLookupParams{}.IsZero())
	p := ols.TermLookupParams{OboID: "GO:0043226", ID: "x"}
	assert.False(t, p.IsZero())
	assert.Equal(t, map[string]string{"obo_id": "GO:0043226", "id": "x"}, p.QueryMap())
}

func TestSearch_SendsQueryParamsAndWildcards(t *testing.T) {
	c, spy := newSpyClient(`{"responseHeader": {}, "response": {"numFound": 0, "start": 0, "docs": []}}`)
	ctx := context.Background()

	_, err := c.Search(ctx, "multiple  terms ", &ols.SearchParams{Ontology: ols.List{"mondo"}, Rows: ols.Int(5)}, ols.SearchOptions{AddWildcards: true})
	require.NoError(t, err)
	_, err = c.Select(ctx, "heart", nil, ols.SearchOptions{})
	require.NoError(t, err)

	require.Len(t, spy.reqs, 2)
	q := spy.reqs[0].URL.Query()
	assert.Equal(t, "/api/search", spy.reqs[0].URL.Path)
	assert.Equal(t, "multiple* terms*", q.Get("q"))
	assert.Equal(t, "mondo", q.Get("ontology"))
	assert.Equal(t, "5", q.Get("rows"))
	assert.False(t, q.Has("exact"))

	assert.Equal(t, "/api/select", spy.reqs[1].URL.Path)
	assert.Equal(t, "q=heart", spy.reqs[1].URL.RawQuery)
}

func TestSearch_UsageErrors(t *testing.T) {
	c, spy := newSpyClient(`{}`)
	ctx := context.Background()
	_, err := c.Search(ctx, "   ", nil, ols.SearchOptions{AddWildcards: true})
	assert.ErrorIs(t, err, ols.ErrUsage)
	_, err = c.Search(ctx, "cow", &ols.SearchParams{Rows: ols.Int(-1)}, ols.SearchOptions{})
	var ue *ols.UsageError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "search", ue.Op)
	assert.Empty(t, spy.reqs)
}

func TestSearch_VersionSelection(t *testing.T) {
	body := `{"responseHeader": {"status": 0}, "response": {"docs": [{"iri": "http://x/cow", "synonym": "cow", "type": "class"}]}}`
	ctx := context.Background()

	v3, _ := newSpyClient(body, ols.WithAPIVersion(ols.V3))
	_, err := v3.Search(ctx, "cow", nil, ols.SearchOptions{})
	var ve *ols.ValidationError
	require.ErrorAs(t, err, &ve, "v3 requires numFound and start")
	assert.True(t, ve.Issues.Has("/response/numFound", schema.CodeRequired))

	v4, _ := newSpyClient(body, ols.WithAPIVersion(ols.V4))
	_, err = v4.Search(ctx, "cow", nil, ols.SearchOptions{})
	require.ErrorAs(t, err, &ve, "v4 requires list-typed synonyms")
	assert.True(t, ve.Issues.Has("/response/docs/0/synonym", schema.CodeInvalidType), ve.Issues.Paths())

	full := `{"responseHeader": {}, "response": {"numFound": 1, "start": 0, "docs": [{"synonym": "cow"}]}}`
	v3ok, _ := newSpyClient(full, ols.WithAPIVersion(ols.V3))
	res, err := v3ok.Search(ctx, "cow", nil, ols.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"cow"}, res.Response.Docs[0].Synonyms)
}

func TestAddWildcards(t *testing.T) {
	cases := map[string]string{
		"multiple terms":      "multiple* terms*",
		"  leading trailing ": "leading* trailing*",
		"a\tb\nc":             "a* b* c*",
		"":                    "",
		"single":              "single*",
	}
	for in, want := range cases {
		assert.Equal(t, want, ols.AddWildcards(in), "%q", in)
	}
}

func TestQuoteIRI(t *testing.T) {
	assert.Equal(t, "http%253A%252F%252Fpurl.obolibrary.org%252Fobo%252FGO_0043226", ols.QuoteIRI(goTermIRI))

	for _, iri := range []string{
		goTermIRI,
		"http://www.ebi.ac.uk/efo/EFO_0000001",
		"https://example.org/a b?c=d&e=f#frag",
		"http://example.org/100%",
		"urn:uuid:6e8bc430-9c3a-11d9-9669-0800200c9a66",
	} {
		got, err := ols.UnquoteIRI(ols.QuoteIRI(iri))
		require.NoError(t, err)
		assert.Equal(t, iri, got)
	}

	_, err := ols.UnquoteIRI("%zz")
	assert.Error(t, err)
}

func TestParseRelation(t *testing.T) {
	for _, r := range ols.Relations {
		got, err := ols.ParseRelation(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ols.ParseRelation("siblings")
	assert.Error(t, err)
}
