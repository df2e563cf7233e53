package ols

import (
	"context"
	"net/url"

	"github.com/reoring/ols/model"
)

// APIInfo fetches the API root, which links to the top-level collections.
func (c *Client) APIInfo(ctx context.Context) (model.ApiInfo, error) {
	return get(ctx, c, request{op: "api_info", path: "/"}, apiInfoSchema)
}

// Ontologies lists the loaded ontologies.
func (c *Client) Ontologies(ctx context.Context, page PageParams) (model.OntologyList, error) {
	const op = "ontologies"
	if err := page.Validate(); err != nil {
		return model.OntologyList{}, withOp(err, op)
	}
	return get(ctx, c, request{op: op, path: "/ontologies", query: page.QueryMap()}, ontologyListSchema)
}

// Ontology fetches one ontology by id, for example "go".
func (c *Client) Ontology(ctx context.Context, ontologyID string) (model.OntologyItem, error) {
	const op = "ontology"
	if err := requireArgs(op, "ontology id", ontologyID); err != nil {
		return model.OntologyItem{}, err
	}
	return get(ctx, c, request{op: op, path: "/ontologies/" + url.PathEscape(ontologyID) + "/"}, ontologySchema)
}

// withOp stamps op on a UsageError produced by parameter validation.
func withOp(err error, op string) error {
	if ue, ok := err.(*UsageError); ok {
		cp := *ue
		cp.Op = op
		return &cp
	}
	return err
}
