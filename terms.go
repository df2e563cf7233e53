package ols

import (
	"context"
	"fmt"
	"net/url"

	"github.com/reoring/ols/model"
)

// Relation names a hierarchy endpoint of a term.
type Relation string

const (
	Parents                 Relation = "parents"
	HierarchicalParents     Relation = "hierarchicalParents"
	Children                Relation = "children"
	HierarchicalChildren    Relation = "hierarchicalChildren"
	Ancestors               Relation = "ancestors"
	HierarchicalAncestors   Relation = "hierarchicalAncestors"
	Descendants             Relation = "descendants"
	HierarchicalDescendants Relation = "hierarchicalDescendants"
)

// Relations lists every Relation.
var Relations = []Relation{
	Parents, HierarchicalParents,
	Children, HierarchicalChildren,
	Ancestors, HierarchicalAncestors,
	Descendants, HierarchicalDescendants,
}

// ParseRelation accepts the wire name of a relation.
func ParseRelation(s string) (Relation, error) {
	for _, r := range Relations {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown relation %q", s)
}

func ontologyPath(ontologyID string, parts ...string) string {
	p := "/ontologies/" + url.PathEscape(ontologyID)
	for _, s := range parts {
		p += "/" + s
	}
	return p
}

// Term fetches one term of an ontology by IRI.
func (c *Client) Term(ctx context.Context, ontologyID, iri string) (model.Term, error) {
	const op = "term"
	if err := requireArgs(op, "ontology id", ontologyID, "iri", iri); err != nil {
		return model.Term{}, err
	}
	return get(ctx, c, request{op: op, path: ontologyPath(ontologyID, "terms", QuoteIRI(iri))}, termSchema)
}

// Terms lists the terms of an ontology, optionally filtered by identifier.
func (c *Client) Terms(ctx context.Context, ontologyID string, lookup TermLookupParams, page PageParams) (model.TermList, error) {
	const op = "terms"
	if err := requireArgs(op, "ontology id", ontologyID); err != nil {
		return model.TermList{}, err
	}
	if err := page.Validate(); err != nil {
		return model.TermList{}, withOp(err, op)
	}
	r := request{op: op, path: ontologyPath(ontologyID, "terms"), query: mergeQuery(lookup.QueryMap(), page.QueryMap())}
	return get(ctx, c, r, termListSchema)
}

// TermRelatives fetches the terms related to termID by rel. termID may be an
// IRI, short form or OBO id.
func (c *Client) TermRelatives(ctx context.Context, rel Relation, ontologyID, termID string, page PageParams) (model.TermList, error) {
	op := "term_" + string(rel)
	if _, err := ParseRelation(string(rel)); err != nil {
		return model.TermList{}, usageErr(op, "%v", err)
	}
	if err := requireArgs(op, "ontology id", ontologyID, "term id", termID); err != nil {
		return model.TermList{}, err
	}
	if err := page.Validate(); err != nil {
		return model.TermList{}, withOp(err, op)
	}
	r := request{op: op, path: ontologyPath(ontologyID, string(rel)), query: mergeQuery(map[string]string{"id": termID}, page.QueryMap())}
	return get(ctx, c, r, termListSchema)
}

func (c *Client) TermParents(ctx context.Context, ontologyID, termID string, page PageParams) (model.TermList, error) {
	return c.TermRelatives(ctx, Parents, ontologyID, termID, page)
}

func (c *Client) TermHierarchicalParents(ctx context.Context, ontologyID, termID string, page PageParams) (model.TermList, error) {
	return c.TermRelatives(ctx, HierarchicalParents, ontologyID, termID, page)
}

func (c *Client) TermChildren(ctx context.Context, ontologyID, termID string, page PageParams) (model.TermList, error) {
	return c.TermRelatives(ctx, Children, ontologyID, termID, page)
}

func (c *Client) TermHierarchicalChildren(ctx context.Context, ontologyID, termID string, page PageParams) (model.TermList, error) {
	return c.TermRelatives(ctx, HierarchicalChildren, ontologyID, termID, page)
}

func (c *Client) TermAncestors(ctx context.Context, ontologyID, termID string, page PageParams) (model.TermList, error) {
	return c.TermRelatives(ctx, Ancestors, ontologyID, termID, page)
}

func (c *Client) TermHierarchicalAncestors(ctx context.Context, ontologyID, termID string, page PageParams) (model.TermList, error) {
	return c.TermRelatives(ctx, HierarchicalAncestors, ontologyID, termID, page)
}

func (c *Client) TermDescendants(ctx context.Context, ontologyID, termID string, page PageParams) (model.TermList, error) {
	return c.TermRelatives(ctx, Descendants, ontologyID, termID, page)
}

func (c *Client) TermHierarchicalDescendants(ctx context.Context, ontologyID, termID string, page PageParams) (model.TermList, error) {
	return c.TermRelatives(ctx, HierarchicalDescendants, ontologyID, termID, page)
}

// TermInDefiningOntology finds a term in the ontology that defines it. Exactly
// one of iri and a non-empty params must be given.
func (c *Client) TermInDefiningOntology(ctx context.Context, iri string, params *TermLookupParams) (model.DefiningOntologyTerms, error) {
	const op = "term_in_defining_ontology"
	hasParams := params != nil && !params.IsZero()
	switch {
	case iri != "" && hasParams:
		return model.DefiningOntologyTerms{}, usageErr(op, "pass either an IRI or lookup parameters, not both")
	case iri == "" && !hasParams:
		return model.DefiningOntologyTerms{}, usageErr(op, "an IRI or lookup parameters are required")
	}
	r := request{op: op}
	if iri != "" {
		r.path = "/terms/findByIdAndIsDefiningOntology/" + QuoteIRI(iri)
	} else {
		r.path = "/terms/findByIdAndIsDefiningOntology"
		r.query = params.QueryMap()
	}
	return get(ctx, c, r, definingSchema)
}

// FindTerms looks a term up across all ontologies by identifier.
func (c *Client) FindTerms(ctx context.Context, lookup TermLookupParams, page PageParams) (model.TermList, error) {
	const op = "find_terms"
	if lookup.IsZero() {
		return model.TermList{}, usageErr(op, "at least one identifier is required")
	}
	if err := page.Validate(); err != nil {
		return model.TermList{}, withOp(err, op)
	}
	return get(ctx, c, request{op: op, path: "/terms", query: mergeQuery(lookup.QueryMap(), page.QueryMap())}, termListSchema)
}

// RelatedTerms follows a direct property edge from a term, for example
// part_of, and returns the terms at the other end.
func (c *Client) RelatedTerms(ctx context.Context, ontologyID, termIRI, propertyIRI string, page PageParams) (model.TermList, error) {
	const op = "related_terms"
	if err := requireArgs(op, "ontology id", ontologyID, "term iri", termIRI, "property iri", propertyIRI); err != nil {
		return model.TermList{}, err
	}
	if err := page.Validate(); err != nil {
		return model.TermList{}, withOp(err, op)
	}
	r := request{op: op, path: ontologyPath(ontologyID, "terms", QuoteIRI(termIRI), QuoteIRI(propertyIRI)), query: page.QueryMap()}
	return get(ctx, c, r, termListSchema)
}
