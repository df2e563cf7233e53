package model

import (
	"fmt"
	"sort"

	"github.com/reoring/ols/schema"
	js "github.com/reoring/ols/schema/jsonschema"
)

var (
	linkSchema = schema.MustBind[Link](schema.Object().
			Field("href", schema.URLOf[string]()).Required().
			UnknownStrip())

	linksAdapter = schema.MapOf(linkSchema)

	pageInfoSchema = schema.MustBind[PageInfo](schema.Object().
			Field("size", schema.IntOf[int]()).Required().
			Field("totalElements", schema.IntOf[int]()).Required().
			Field("totalPages", schema.IntOf[int]()).Required().
			Field("number", schema.IntOf[int]()).Required().
			UnknownStrip().
			Describe("page info"))

	apiLinksSchema = schema.MustBind[ApiLinks](schema.Object().
			Field("ontologies", schema.Of(linkSchema)).Required().
			Field("individuals", schema.Of(linkSchema)).Required().
			Field("terms", schema.Of(linkSchema)).Required().
			Field("properties", schema.Of(linkSchema)).Required().
			Field("profile", schema.Of(linkSchema)).Required().
			UnknownStrip())

	apiInfoSchema = schema.MustBind[ApiInfo](schema.Object().
			Field("_links", schema.Of(apiLinksSchema)).Required().
			UnknownStrip())

	oboXrefSchema = schema.MustBind[OboXref](schema.Object().
			Field("database", schema.StringOf[string]()).Optional().
			Field("id", schema.StringOf[string]()).Optional().
			Field("description", schema.StringOf[string]()).Optional().
			Field("url", schema.StringOf[string]()).Optional().
			UnknownStrip())

	oboSynonymSchema = schema.MustBind[OboSynonym](schema.Object().
			Field("name", schema.StringOf[string]()).Required().
			Field("scope", schema.StringOf[string]()).Required().
			Field("type", schema.StringOf[string]()).Optional().
			Field("xrefs", schema.ArrayOf(oboXrefSchema)).Optional().
			UnknownStrip())

	termSchema = schema.MustBind[Term](schema.Object().
			Field("iri", schema.URLOf[string]()).Required().
			Field("label", schema.StringOf[string]()).Required().
			Field("description", schema.StringListOf()).Required().
			Field("annotation", schema.MapOf(schema.StringList())).Required().
			Field("synonyms", schema.StringListOf()).Optional().
			Field("obo_xref", schema.ArrayOf(oboXrefSchema)).Optional().
			Field("obo_synonym", schema.ArrayOf(oboSynonymSchema)).Optional().
			Field("ontology_name", schema.StringOf[string]()).Required().
			Field("ontology_prefix", schema.StringOf[string]()).Required().
			Field("ontology_iri", schema.URLOf[string]()).Required().
			Field("is_obsolete", schema.BoolOf[bool]()).Required().
			Field("term_replaced_by", schema.Any()).Optional().
			Field("has_children", schema.BoolOf[bool]()).Required().
			Field("is_root", schema.BoolOf[bool]()).Required().
			Field("short_form", schema.StringOf[string]()).Required().
			Field("obo_id", schema.StringOf[string]()).Optional().
			Field("in_subset", schema.Any()).Optional().
			Field("_links", linksAdapter).Required().
			UnknownPassthrough("extra").
			Describe("ontology term"))

	ontologyLinksSchema = schema.MustBind[OntologyLinks](schema.Object().
			Field("self", schema.Of(linkSchema)).Required().
			Field("terms", schema.Of(linkSchema)).Required().
			Field("properties", schema.Of(linkSchema)).Required().
			Field("individuals", schema.Of(linkSchema)).Required().
			UnknownStrip())

	ontologySchema = schema.MustBind[OntologyItem](schema.Object().
			Field("ontologyId", schema.StringOf[string]()).Required().
			Field("status", schema.StringOf[string]()).Required().
			Field("numberOfProperties", schema.IntOf[int]()).Required().
			Field("numberOfTerms", schema.IntOf[int]()).Required().
			Field("languages", schema.StringListOf()).Optional().
			Field("_links", schema.Of(ontologyLinksSchema)).Required().
			UnknownPassthrough("extra").
			Describe("ontology"))

	propertySchema = schema.MustBind[Property](schema.Object().
			Field("iri", schema.URLOf[string]()).Required().
			Field("label", schema.StringOf[string]()).Required().
			Field("description", schema.StringListOf()).Optional().
			Field("annotation", schema.MapOf(schema.StringList())).Optional().
			Field("synonyms", schema.StringListOf()).Optional().
			Field("ontology_name", schema.StringOf[string]()).Required().
			Field("ontology_prefix", schema.StringOf[string]()).Required().
			Field("ontology_iri", schema.URLOf[string]()).Required().
			Field("is_obsolete", schema.BoolOf[bool]()).Optional().
			Field("has_children", schema.BoolOf[bool]()).Optional().
			Field("is_root", schema.BoolOf[bool]()).Optional().
			Field("short_form", schema.StringOf[string]()).Required().
			Field("obo_id", schema.StringOf[string]()).Optional().
			Field("_links", linksAdapter).Optional().
			UnknownPassthrough("extra").
			Describe("ontology property"))

	individualSchema = schema.MustBind[Individual](schema.Object().
			Field("iri", schema.URLOf[string]()).Required().
			Field("label", schema.StringOf[string]()).Required().
			Field("description", schema.StringListOf()).Optional().
			Field("annotation", schema.MapOf(schema.StringList())).Optional().
			Field("synonyms", schema.StringListOf()).Optional().
			Field("ontology_name", schema.StringOf[string]()).Required().
			Field("ontology_prefix", schema.StringOf[string]()).Required().
			Field("ontology_iri", schema.URLOf[string]()).Required().
			Field("is_obsolete", schema.BoolOf[bool]()).Optional().
			Field("short_form", schema.StringOf[string]()).Required().
			Field("obo_id", schema.StringOf[string]()).Optional().
			Field("_links", linksAdapter).Optional().
			UnknownPassthrough("extra").
			Describe("ontology individual"))

	errorSchema = schema.MustBind[ErrorResponse](schema.Object().
			Field("error", schema.StringOf[string]()).Required().
			Field("message", schema.StringOf[string]()).Required().
			Field("path", schema.StringOf[string]()).Required().
			Field("status", schema.IntOf[int]()).Required().
			Field("timestamp", schema.NumberOf[float64]()).Required().
			UnknownStrip().
			Describe("error envelope"))
)

type envelope uint8

const (
	embeddedRequired envelope = 1 << iota
	linksRequired
)

// pagedSchema builds the envelope for a list of resources stored under
// _embedded.<resource>.
func pagedSchema[T any](resource string, item schema.Schema[T], req envelope) schema.Schema[Paged[T]] {
	embedded := schema.MustBind[Embedded[T]](schema.Object().
		Field("items", schema.ArrayOf(item)).Wire(resource).Required().
		UnknownStrip())
	b := schema.Object().
		Field("page", schema.Of(pageInfoSchema)).Required().
		Field("_embedded", schema.Of(embedded)).Optional().
		Field("_links", linksAdapter).Optional().
		UnknownPassthrough("extra").
		Describe(resource + " page")
	if req&embeddedRequired != 0 {
		b.Require("_embedded")
	}
	if req&linksRequired != 0 {
		b.Require("_links")
	}
	return schema.MustBind[Paged[T]](b)
}

// searchItemSchema builds a search hit schema; list decides how the list-typed
// fields treat a bare string.
func searchItemSchema(list func() schema.Adapter) schema.Schema[SearchResultItem] {
	return schema.MustBind[SearchResultItem](schema.Object().
		Field("id", schema.StringOf[string]()).Optional().
		Field("annotations", list()).Optional().
		Field("annotations_trimmed", list()).Optional().
		Field("description", list()).Optional().
		Field("iri", schema.StringOf[string]()).Optional().
		Field("label", schema.StringOf[string]()).Optional().
		Field("obo_id", schema.StringOf[string]()).Optional().
		Field("ontology_name", schema.StringOf[string]()).Optional().
		Field("ontology_prefix", schema.StringOf[string]()).Optional().
		Field("subset", list()).Optional().
		Field("short_form", schema.StringOf[string]()).Optional().
		Field("synonyms", list()).Wire("synonyms", "synonym").Optional().
		Field("type", schema.EnumOf(EntityTypes...)).Optional().
		UnknownPassthrough("extra").
		Describe("search hit"))
}

func searchSchema(item schema.Schema[SearchResultItem], countsRequired bool) schema.Schema[SearchResponse] {
	rb := schema.Object().
		Field("numFound", schema.IntOf[int]()).Optional().
		Field("start", schema.IntOf[int]()).Optional().
		Field("docs", schema.ArrayOf(item)).Required().
		UnknownPassthrough("extra")
	if countsRequired {
		rb.Require("numFound", "start")
	}
	return schema.MustBind[SearchResponse](schema.Object().
		Field("responseHeader", schema.Of(schema.MapAny())).Required().
		Field("response", schema.Of(schema.MustBind[SearchResults](rb))).Required().
		UnknownPassthrough("extra").
		Describe("search response"))
}

// Schemas is the response schema set of one API version. Only Search and
// DefiningOntology differ between versions.
type Schemas struct {
	Version          APIVersion
	APIInfo          schema.Schema[ApiInfo]
	Ontology         schema.Schema[OntologyItem]
	OntologyList     schema.Schema[OntologyList]
	Term             schema.Schema[Term]
	TermList         schema.Schema[TermList]
	Property         schema.Schema[Property]
	PropertyList     schema.Schema[PropertyList]
	Individual       schema.Schema[Individual]
	IndividualList   schema.Schema[IndividualList]
	DefiningOntology schema.Schema[DefiningOntologyTerms]
	Search           schema.Schema[SearchResponse]
	Error            schema.Schema[ErrorResponse]
}

var (
	termListSchema       = pagedSchema("terms", termSchema, 0)
	ontologyListSchema   = pagedSchema("ontologies", ontologySchema, 0)
	propertyListSchema   = pagedSchema("properties", propertySchema, 0)
	individualListSchema = pagedSchema("individuals", individualSchema, 0)

	schemaSets = map[APIVersion]*Schemas{
		V3: {
			Version:          V3,
			DefiningOntology: pagedSchema("terms", termSchema, embeddedRequired|linksRequired),
			Search:           searchSchema(searchItemSchema(schema.StringOrList), true),
		},
		V4: {
			Version:          V4,
			DefiningOntology: pagedSchema("terms", termSchema, linksRequired),
			Search:           searchSchema(searchItemSchema(schema.StringListOf), false),
		},
	}
)

func init() {
	for _, s := range schemaSets {
		s.APIInfo = apiInfoSchema
		s.Ontology = ontologySchema
		s.OntologyList = ontologyListSchema
		s.Term = termSchema
		s.TermList = termListSchema
		s.Property = propertySchema
		s.PropertyList = propertyListSchema
		s.Individual = individualSchema
		s.IndividualList = individualListSchema
		s.Error = errorSchema
	}
}

// SchemasFor returns the schema set for v.
func SchemasFor(v APIVersion) (*Schemas, bool) {
	s, ok := schemaSets[v]
	return s, ok
}

// ErrorSchema validates the service's error envelope; it is the same for every version.
func ErrorSchema() schema.Schema[ErrorResponse] { return errorSchema }

type exporter interface {
	JSONSchema() (*js.Schema, error)
}

func (s *Schemas) byName() map[string]exporter {
	return map[string]exporter{
		"api":         s.APIInfo,
		"ontology":    s.Ontology,
		"ontologies":  s.OntologyList,
		"term":        s.Term,
		"terms":       s.TermList,
		"property":    s.Property,
		"properties":  s.PropertyList,
		"individual":  s.Individual,
		"individuals": s.IndividualList,
		"defining":    s.DefiningOntology,
		"search":      s.Search,
		"error":       s.Error,
	}
}

// Names lists the names accepted by JSONSchema, sorted.
func (s *Schemas) Names() []string {
	m := s.byName()
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// JSONSchema exports the named response schema, for example "term" or "search".
func (s *Schemas) JSONSchema(name string) (*js.Schema, error) {
	e, ok := s.byName()[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (known: %v)", name, s.Names())
	}
	return e.JSONSchema()
}
