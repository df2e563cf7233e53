package model

import "time"

// EntityType is the kind of resource a search hit refers to.
type EntityType string

const (
	EntityClass      EntityType = "class"
	EntityProperty   EntityType = "property"
	EntityIndividual EntityType = "individual"
	EntityOntology   EntityType = "ontology"
)

// EntityTypes lists every accepted EntityType.
var EntityTypes = []EntityType{EntityClass, EntityProperty, EntityIndividual, EntityOntology}

// Link is a single hypermedia link.
type Link struct {
	Href string `json:"href"`
}

// Links maps a relation name ("self", "parents", ...) to its link.
type Links map[string]Link

// PageInfo describes the current page of a paginated envelope.
type PageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// ApiLinks are the links returned by the API root.
type ApiLinks struct {
	Ontologies  Link `json:"ontologies"`
	Individuals Link `json:"individuals"`
	Terms       Link `json:"terms"`
	Properties  Link `json:"properties"`
	Profile     Link `json:"profile"`
}

// ApiInfo is the response of the API root endpoint.
type ApiInfo struct {
	Links ApiLinks `json:"_links"`
}

type OboXref struct {
	Database    string `json:"database,omitempty"`
	ID          string `json:"id,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

type OboSynonym struct {
	Name  string    `json:"name"`
	Scope string    `json:"scope"`
	Type  string    `json:"type,omitempty"`
	Xrefs []OboXref `json:"xrefs,omitempty"`
}

// Term is an ontology class as returned by the term endpoints.
// Undeclared wire fields are kept in Extra.
type Term struct {
	IRI            string              `json:"iri"`
	Label          string              `json:"label"`
	Description    []string            `json:"description"`
	Annotation     map[string][]string `json:"annotation"`
	Synonyms       []string            `json:"synonyms,omitempty"`
	OboXref        []OboXref           `json:"obo_xref,omitempty"`
	OboSynonym     []OboSynonym        `json:"obo_synonym,omitempty"`
	OntologyName   string              `json:"ontology_name"`
	OntologyPrefix string              `json:"ontology_prefix"`
	OntologyIRI    string              `json:"ontology_iri"`
	IsObsolete     bool                `json:"is_obsolete"`
	TermReplacedBy any                 `json:"term_replaced_by,omitempty"`
	HasChildren    bool                `json:"has_children"`
	IsRoot         bool                `json:"is_root"`
	ShortForm      string              `json:"short_form"`
	OboID          string              `json:"obo_id,omitempty"`
	InSubset       any                 `json:"in_subset,omitempty"`
	Links          Links               `json:"_links"`
	Extra          map[string]any      `json:"extra,omitempty"`
}

// OntologyLinks are the links carried by every ontology.
type OntologyLinks struct {
	Self        Link `json:"self"`
	Terms       Link `json:"terms"`
	Properties  Link `json:"properties"`
	Individuals Link `json:"individuals"`
}

// OntologyItem describes one loaded ontology. Configuration blocks such as
// "config" and "loaded" land in Extra.
type OntologyItem struct {
	OntologyID         string         `json:"ontologyId"`
	Status             string         `json:"status"`
	NumberOfProperties int            `json:"numberOfProperties"`
	NumberOfTerms      int            `json:"numberOfTerms"`
	Languages          []string       `json:"languages,omitempty"`
	Links              OntologyLinks  `json:"_links"`
	Extra              map[string]any `json:"extra,omitempty"`
}

// Property is an ontology property (object, data or annotation property).
type Property struct {
	IRI            string              `json:"iri"`
	Label          string              `json:"label"`
	Description    []string            `json:"description,omitempty"`
	Annotation     map[string][]string `json:"annotation,omitempty"`
	Synonyms       []string            `json:"synonyms,omitempty"`
	OntologyName   string              `json:"ontology_name"`
	OntologyPrefix string              `json:"ontology_prefix"`
	OntologyIRI    string              `json:"ontology_iri"`
	IsObsolete     bool                `json:"is_obsolete,omitempty"`
	HasChildren    bool                `json:"has_children,omitempty"`
	IsRoot         bool                `json:"is_root,omitempty"`
	ShortForm      string              `json:"short_form"`
	OboID          string              `json:"obo_id,omitempty"`
	Links          Links               `json:"_links,omitempty"`
	Extra          map[string]any      `json:"extra,omitempty"`
}

// Individual is a named instance declared in an ontology.
type Individual struct {
	IRI            string              `json:"iri"`
	Label          string              `json:"label"`
	Description    []string            `json:"description,omitempty"`
	Annotation     map[string][]string `json:"annotation,omitempty"`
	Synonyms       []string            `json:"synonyms,omitempty"`
	OntologyName   string              `json:"ontology_name"`
	OntologyPrefix string              `json:"ontology_prefix"`
	OntologyIRI    string              `json:"ontology_iri"`
	IsObsolete     bool                `json:"is_obsolete,omitempty"`
	ShortForm      string              `json:"short_form"`
	OboID          string              `json:"obo_id,omitempty"`
	Links          Links               `json:"_links,omitempty"`
	Extra          map[string]any      `json:"extra,omitempty"`
}

// SearchResultItem is one search hit. Every field is optional; Synonyms is
// filled from either the "synonyms" or the "synonym" wire key.
type SearchResultItem struct {
	ID                 string         `json:"id,omitempty"`
	Annotations        []string       `json:"annotations,omitempty"`
	AnnotationsTrimmed []string       `json:"annotations_trimmed,omitempty"`
	Description        []string       `json:"description,omitempty"`
	IRI                string         `json:"iri,omitempty"`
	Label              string         `json:"label,omitempty"`
	OboID              string         `json:"obo_id,omitempty"`
	OntologyName       string         `json:"ontology_name,omitempty"`
	OntologyPrefix     string         `json:"ontology_prefix,omitempty"`
	Subset             []string       `json:"subset,omitempty"`
	ShortForm          string         `json:"short_form,omitempty"`
	Synonyms           []string       `json:"synonyms,omitempty"`
	Type               EntityType     `json:"type,omitempty"`
	Extra              map[string]any `json:"extra,omitempty"`
}

// SearchResults is the "response" block of a search envelope.
type SearchResults struct {
	NumFound int                `json:"numFound"`
	Start    int                `json:"start"`
	Docs     []SearchResultItem `json:"docs"`
	Extra    map[string]any     `json:"extra,omitempty"`
}

// SearchResponse is the envelope returned by /search and /select.
type SearchResponse struct {
	ResponseHeader map[string]any `json:"responseHeader"`
	Response       SearchResults  `json:"response"`
	Extra          map[string]any `json:"extra,omitempty"`
}

// ErrorResponse is the body the service returns for failed requests.
type ErrorResponse struct {
	Error     string  `json:"error"`
	Message   string  `json:"message"`
	Path      string  `json:"path"`
	Status    int     `json:"status"`
	Timestamp float64 `json:"timestamp"`
}

// Time converts the epoch-millisecond timestamp.
func (e ErrorResponse) Time() time.Time {
	return time.UnixMicro(int64(e.Timestamp * 1000)).UTC()
}
