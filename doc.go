// Package ols is a typed client for the Ontology Lookup Service REST API.
//
// It provides:
//
// - One method per API operation (ontologies, terms and their relatives, properties, individuals, search)
// - Validated, typed responses with undeclared fields kept in Extra maps
// - Response shapes selected once per client by API version (V3 or V4)
// - Search parameters that accept a bare string wherever a list is expected
// - Double encoding of IRIs used as URL path segments
//
// Design policy:
// - Keep public APIs in the root package; response models live in model/, the validation engine in schema/.
// - One GET per call; no retries, caching or background work.
// - Errors are returned, never logged: *HTTPError, *ValidationError, *UsageError.
//
// Typical usage:
//
//	c := ols.New(ols.EBIOLS4, ols.WithAPIVersion(ols.V4))
//	term, err := c.Term(ctx, "go", "http://purl.obolibrary.org/obo/GO_0043226")
//	res, err := c.Search(ctx, "organelle", &ols.SearchParams{Ontology: ols.List{"go"}}, ols.SearchOptions{})
package ols
