package ols

import "net/url"

// QuoteIRI encodes an IRI for use as a single URL path segment. The value is
// query-escaped twice, so "%" from the first pass becomes "%25":
//
//	http://purl.obolibrary.org/obo/GO_0043226
//	http%253A%252F%252Fpurl.obolibrary.org%252Fobo%252FGO_0043226
func QuoteIRI(iri string) string {
	return url.QueryEscape(url.QueryEscape(iri))
}

// UnquoteIRI reverses QuoteIRI.
func UnquoteIRI(s string) (string, error) {
	once, err := url.QueryUnescape(s)
	if err != nil {
		return "", err
	}
	return url.QueryUnescape(once)
}
