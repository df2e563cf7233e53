package ols

import (
	"context"
	"strings"

	"github.com/reoring/ols/model"
)

// SearchOptions change how the query text is sent.
type SearchOptions struct {
	// AddWildcards appends "*" to every whitespace-separated token.
	AddWildcards bool
}

// AddWildcards splits q on whitespace and appends "*" to every token:
// "multiple terms" becomes "multiple* terms*".
func AddWildcards(q string) string {
	fields := strings.Fields(q)
	for i, f := range fields {
		fields[i] = f + "*"
	}
	return strings.Join(fields, " ")
}

// Search runs a free-text search. params may be nil.
func (c *Client) Search(ctx context.Context, query string, params *SearchParams, opts SearchOptions) (model.SearchResponse, error) {
	return c.search(ctx, "search", "/search", query, params, opts)
}

// Select runs an autocomplete-style search, tuned for partial input.
func (c *Client) Select(ctx context.Context, query string, params *SearchParams, opts SearchOptions) (model.SearchResponse, error) {
	return c.search(ctx, "select", "/select", query, params, opts)
}

func (c *Client) search(ctx context.Context, op, path, query string, params *SearchParams, opts SearchOptions) (model.SearchResponse, error) {
	if opts.AddWildcards {
		query = AddWildcards(query)
	}
	if err := requireArgs(op, "query", query); err != nil {
		return model.SearchResponse{}, err
	}
	q := map[string]string{}
	if params != nil {
		if err := params.Validate(); err != nil {
			return model.SearchResponse{}, withOp(err, op)
		}
		q = params.QueryMap()
	}
	q["q"] = query
	return get(ctx, c, request{op: op, path: path, query: q}, searchSchema)
}
