// Package model declares the typed responses of the ontology lookup service
// and the per-version schema sets that validate them.
//
// Resources tolerate undeclared wire fields and keep them in an Extra map.
// Paginated responses share the Paged envelope; a missing "_embedded" block
// leaves Paged.Embedded nil.
package model
