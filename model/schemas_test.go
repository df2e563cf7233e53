package model_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ols/model"
	"github.com/reoring/ols/schema"
)

const termJSON = `{
  "iri": "http://purl.obolibrary.org/obo/GO_0043226",
  "label": "organelle",
  "description": ["Organized structure of distinctive morphology and function."],
  "annotation": {"has_obo_namespace": ["cellular_component"]},
  "synonyms": null,
  "obo_xref": [{"database": "NIF_Subcellular", "id": "sao1539965131", "url": null}],
  "obo_synonym": [{"name": "cell organelle", "scope": "hasExactSynonym", "xrefs": []}],
  "ontology_name": "go",
  "ontology_prefix": "GO",
  "ontology_iri": "http://purl.obolibrary.org/obo/go.owl",
  "is_obsolete": false,
  "term_replaced_by": null,
  "has_children": true,
  "is_root": false,
  "short_form": "GO_0043226",
  "obo_id": "GO:0043226",
  "in_subset": ["goslim_pir"],
  "is_defining_ontology": true,
  "_links": {"self": {"href": "https://www.ebi.ac.uk/ols4/api/ontologies/go/terms/x"}}
}`

func schemas(t *testing.T, v model.APIVersion) *model.Schemas {
	t.Helper()
	s, ok := model.SchemasFor(v)
	require.True(t, ok)
	return s
}

func TestTerm_ParsesAndKeepsExtraFields(t *testing.T) {
	term, err := schema.ParseJSON(context.Background(), schemas(t, model.V4).Term, []byte(termJSON))
	require.NoError(t, err)

	assert.Equal(t, "organelle", term.Label)
	assert.Equal(t, "GO:0043226", term.OboID)
	assert.Equal(t, []string{"cellular_component"}, term.Annotation["has_obo_namespace"])
	assert.Nil(t, term.Synonyms)
	assert.Nil(t, term.TermReplacedBy)
	require.Len(t, term.OboXref, 1)
	assert.Equal(t, "NIF_Subcellular", term.OboXref[0].Database)
	assert.Empty(t, term.OboXref[0].URL)
	require.Len(t, term.OboSynonym, 1)
	assert.Equal(t, "hasExactSynonym", term.OboSynonym[0].Scope)
	assert.Equal(t, []any{"goslim_pir"}, term.InSubset)
	assert.Contains(t, term.Links, "self")
	assert.Equal(t, map[string]any{"is_defining_ontology": true}, term.Extra)
}

func TestTerm_WrongTypeNamesTheField(t *testing.T) {
	body := []byte(`{
	  "iri": "http://purl.obolibrary.org/obo/GO_0043226",
	  "label": "organelle",
	  "description": "not a list",
	  "annotation": {},
	  "ontology_name": "go", "ontology_prefix": "GO",
	  "ontology_iri": "http://purl.obolibrary.org/obo/go.owl",
	  "is_obsolete": false, "has_children": true, "is_root": false,
	  "short_form": "GO_0043226",
	  "_links": {}
	}`)
	_, err := schema.ParseJSON(context.Background(), schemas(t, model.V4).Term, body)
	iss, ok := schema.AsIssues(err)
	require.True(t, ok, "expected Issues, got %v", err)
	assert.True(t, iss.Has("/description", schema.CodeInvalidType), iss.Paths())
}

func TestTerm_CollectsEveryMissingField(t *testing.T) {
	_, err := schema.ParseJSON(context.Background(), schemas(t, model.V4).Term, []byte(`{"label": 3}`))
	iss, ok := schema.AsIssues(err)
	require.True(t, ok)
	for _, p := range []string{"/iri", "/description", "/annotation", "/ontology_name", "/short_form", "/_links"} {
		assert.True(t, iss.Has(p, schema.CodeRequired), "missing %s in %v", p, iss.Paths())
	}
	assert.True(t, iss.Has("/label", schema.CodeInvalidType))
}

func TestTermList_MissingEmbeddedIsAbsent(t *testing.T) {
	body := []byte(`{"page": {"size": 20, "totalElements": 0, "totalPages": 0, "number": 0}}`)
	for _, v := range []model.APIVersion{model.V3, model.V4} {
		list, err := schema.ParseJSON(context.Background(), schemas(t, v).TermList, body)
		require.NoError(t, err, v)
		assert.Nil(t, list.Embedded)
		assert.Nil(t, list.Items())
		assert.Equal(t, 20, list.Page.Size)
	}
}

func TestTermList_EmbeddedTerms(t *testing.T) {
	body := []byte(`{"_embedded": {"terms": [` + termJSON + `]},
	  "_links": {"self": {"href": "https://www.ebi.ac.uk/ols4/api/ontologies/go/parents?id=GO_0043226"}},
	  "page": {"size": 20, "totalElements": 1, "totalPages": 1, "number": 0}}`)
	list, err := schema.ParseJSON(context.Background(), schemas(t, model.V4).TermList, body)
	require.NoError(t, err)
	require.NotNil(t, list.Embedded)
	require.Len(t, list.Items(), 1)
	assert.Equal(t, "GO_0043226", list.Items()[0].ShortForm)
}

func TestTermList_ElementIssuesUseWirePath(t *testing.T) {
	body := []byte(`{"_embedded": {"terms": [{"label": "x"}]},
	  "page": {"size": 20, "totalElements": 1, "totalPages": 1, "number": 0}}`)
	_, err := schema.ParseJSON(context.Background(), schemas(t, model.V4).TermList, body)
	iss, ok := schema.AsIssues(err)
	require.True(t, ok)
	assert.True(t, iss.Has("/_embedded/terms/0/iri", schema.CodeRequired), iss.Paths())
}

func TestDefiningOntology_EmbeddedRequiredOnlyInV3(t *testing.T) {
	body := []byte(`{"_links": {"self": {"href": "https://www.ebi.ac.uk/ols/api/terms/findByIdAndIsDefiningOntology/x"}},
	  "page": {"size": 20, "totalElements": 0, "totalPages": 0, "number": 0}}`)

	_, err := schema.ParseJSON(context.Background(), schemas(t, model.V3).DefiningOntology, body)
	iss, ok := schema.AsIssues(err)
	require.True(t, ok)
	assert.True(t, iss.Has("/_embedded", schema.CodeRequired))

	res, err := schema.ParseJSON(context.Background(), schemas(t, model.V4).DefiningOntology, body)
	require.NoError(t, err)
	assert.Nil(t, res.Embedded)
}

func TestSearch_SynonymAliases(t *testing.T) {
	for _, v := range []model.APIVersion{model.V3, model.V4} {
		for _, key := range []string{"synonym", "synonyms"} {
			body := []byte(`{"responseHeader": {"status": 0},
			  "response": {"numFound": 1, "start": 0, "docs": [{"iri": "http://x/cow", "` + key + `": ["cow"]}]}}`)
			res, err := schema.ParseJSON(context.Background(), schemas(t, v).Search, body)
			require.NoError(t, err, "%s %s", v, key)
			require.Len(t, res.Response.Docs, 1)
			assert.Equal(t, []string{"cow"}, res.Response.Docs[0].Synonyms, "%s %s", v, key)
			assert.Nil(t, res.Response.Docs[0].Extra)
		}
	}
}

func TestSearch_VersionSpecificShapes(t *testing.T) {
	scalar := []byte(`{"responseHeader": {}, "response": {"numFound": 1, "start": 0,
	  "docs": [{"description": "single line", "type": "class", "score": 1.5}]}}`)

	res, err := schema.ParseJSON(context.Background(), schemas(t, model.V3).Search, scalar)
	require.NoError(t, err)
	assert.Equal(t, []string{"single line"}, res.Response.Docs[0].Description)
	assert.Equal(t, model.EntityClass, res.Response.Docs[0].Type)
	assert.Contains(t, res.Response.Docs[0].Extra, "score")

	_, err = schema.ParseJSON(context.Background(), schemas(t, model.V4).Search, scalar)
	iss, ok := schema.AsIssues(err)
	require.True(t, ok)
	assert.True(t, iss.Has("/response/docs/0/description", schema.CodeInvalidType), iss.Paths())

	docsOnly := []byte(`{"responseHeader": {}, "response": {"docs": []}}`)
	_, err = schema.ParseJSON(context.Background(), schemas(t, model.V4).Search, docsOnly)
	require.NoError(t, err)
	_, err = schema.ParseJSON(context.Background(), schemas(t, model.V3).Search, docsOnly)
	iss, ok = schema.AsIssues(err)
	require.True(t, ok)
	assert.True(t, iss.Has("/response/numFound", schema.CodeRequired))
	assert.True(t, iss.Has("/response/start", schema.CodeRequired))
}

func TestSearch_RejectsUnknownEntityType(t *testing.T) {
	body := []byte(`{"responseHeader": {}, "response": {"docs": [{"type": "thing"}]}}`)
	_, err := schema.ParseJSON(context.Background(), schemas(t, model.V4).Search, body)
	iss, ok := schema.AsIssues(err)
	require.True(t, ok)
	assert.True(t, iss.Has("/response/docs/0/type", schema.CodeInvalidEnum))
}

func TestOntology_ExtraAndLinks(t *testing.T) {
	body := []byte(`{"ontologyId": "go", "status": "LOADED", "numberOfProperties": 12,
	  "numberOfTerms": 51000, "languages": ["en"], "loaded": "2024-01-01", "config": {"title": "GO"},
	  "_links": {
	    "self": {"href": "https://www.ebi.ac.uk/ols4/api/ontologies/go"},
	    "terms": {"href": "https://www.ebi.ac.uk/ols4/api/ontologies/go/terms"},
	    "properties": {"href": "https://www.ebi.ac.uk/ols4/api/ontologies/go/properties"},
	    "individuals": {"href": "https://www.ebi.ac.uk/ols4/api/ontologies/go/individuals"}}}`)
	o, err := schema.ParseJSON(context.Background(), schemas(t, model.V4).Ontology, body)
	require.NoError(t, err)
	assert.Equal(t, 51000, o.NumberOfTerms)
	assert.Equal(t, "https://www.ebi.ac.uk/ols4/api/ontologies/go/terms", o.Links.Terms.Href)
	assert.Contains(t, o.Extra, "config")
	assert.Contains(t, o.Extra, "loaded")
}

func TestErrorResponse_TimestampIntOrFloat(t *testing.T) {
	for _, ts := range []string{"1700000000000", "1700000000000.0"} {
		body := []byte(`{"error": "Not Found", "message": "No resource", "path": "/api/x", "status": 404, "timestamp": ` + ts + `}`)
		e, err := schema.ParseJSON(context.Background(), model.ErrorSchema(), body)
		require.NoError(t, err, ts)
		assert.Equal(t, 404, e.Status)
		assert.Equal(t, int64(1700000000000), e.Time().UnixMilli())
	}
}

func TestParseAPIVersion(t *testing.T) {
	for in, want := range map[string]model.APIVersion{"v3": model.V3, "3": model.V3, "OLS4": model.V4, " v4 ": model.V4} {
		got, err := model.ParseAPIVersion(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := model.ParseAPIVersion("v5")
	assert.Error(t, err)
}

func TestSchemas_JSONSchemaByName(t *testing.T) {
	s := schemas(t, model.V4)
	assert.Contains(t, s.Names(), "term")
	assert.Contains(t, s.Names(), "search")

	js, err := s.JSONSchema("term")
	require.NoError(t, err)
	assert.Equal(t, "object", js.Type)
	assert.Contains(t, js.Required, "iri")
	assert.Equal(t, "uri", js.Properties["iri"].Format)

	_, err = s.JSONSchema("nope")
	assert.Error(t, err)
}
