// Package schema validates decoded JSON against declared shapes and binds
// the result into typed Go structs.
//
// It provides:
//
// - Object schemas built field by field (Required/Optional, ordered wire-name aliases)
// - Unknown-key policies (Strict/Strip/Passthrough into a side map)
// - A stable error model via Issues (JSON Pointer, code, message), collecting every offending path
// - Bind[T] to project a validated object into a struct
// - ParseJSON / ParseReader backed by goccy/go-json with json.Number preservation
// - JSON Schema projection of every schema
//
// Typical usage:
//
//	s := schema.MustBind[Item](schema.Object().
//		Field("id", schema.StringOf[string]()).Required().
//		Field("synonyms", schema.StringListOf()).Wire("synonyms", "synonym").Optional().
//		UnknownPassthrough("extra"))
//	v, err := schema.ParseJSON(ctx, s, body)
package schema
