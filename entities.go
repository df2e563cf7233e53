package ols

import (
	"context"

	"github.com/reoring/ols/model"
)

// Property fetches one property of an ontology by IRI.
func (c *Client) Property(ctx context.Context, ontologyID, iri string) (model.Property, error) {
	const op = "property"
	if err := requireArgs(op, "ontology id", ontologyID, "iri", iri); err != nil {
		return model.Property{}, err
	}
	return get(ctx, c, request{op: op, path: ontologyPath(ontologyID, "properties", QuoteIRI(iri))}, propertySchema)
}

func (c *Client) Properties(ctx context.Context, ontologyID string, page PageParams) (model.PropertyList, error) {
	const op = "properties"
	if err := requireArgs(op, "ontology id", ontologyID); err != nil {
		return model.PropertyList{}, err
	}
	if err := page.Validate(); err != nil {
		return model.PropertyList{}, withOp(err, op)
	}
	return get(ctx, c, request{op: op, path: ontologyPath(ontologyID, "properties"), query: page.QueryMap()}, propertyListSchema)
}

// Individual fetches one individual of an ontology by IRI.
func (c *Client) Individual(ctx context.Context, ontologyID, iri string) (model.Individual, error) {
	const op = "individual"
	if err := requireArgs(op, "ontology id", ontologyID, "iri", iri); err != nil {
		return model.Individual{}, err
	}
	return get(ctx, c, request{op: op, path: ontologyPath(ontologyID, "individuals", QuoteIRI(iri))}, individualSchema)
}

func (c *Client) Individuals(ctx context.Context, ontologyID string, page PageParams) (model.IndividualList, error) {
	const op = "individuals"
	if err := requireArgs(op, "ontology id", ontologyID); err != nil {
		return model.IndividualList{}, err
	}
	if err := page.Validate(); err != nil {
		return model.IndividualList{}, withOp(err, op)
	}
	return get(ctx, c, request{op: op, path: ontologyPath(ontologyID, "individuals"), query: page.QueryMap()}, individualListSchema)
}
