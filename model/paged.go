package model

// Embedded holds the resources of a paginated envelope. On the wire the list
// sits under a resource-specific key ("terms", "ontologies", ...).
type Embedded[T any] struct {
	Items []T `json:"items"`
}

// Paged is the envelope used by every multi-result endpoint. Embedded is nil
// when the response carried no "_embedded" block.
type Paged[T any] struct {
	Page     PageInfo       `json:"page"`
	Embedded *Embedded[T]   `json:"_embedded,omitempty"`
	Links    Links          `json:"_links,omitempty"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// Items returns the embedded resources, or nil when the block was absent.
func (p Paged[T]) Items() []T {
	if p.Embedded == nil {
		return nil
	}
	return p.Embedded.Items
}

type (
	TermList       = Paged[Term]
	OntologyList   = Paged[OntologyItem]
	PropertyList   = Paged[Property]
	IndividualList = Paged[Individual]

	// DefiningOntologyTerms is the envelope of the defining-ontology lookup.
	DefiningOntologyTerms = Paged[Term]
)
