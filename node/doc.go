// Package node provides an ordered, tagged JSON tree for OpenAPI documents.
//
// A [Node] is one of seven kinds: missing, null, bool, number, string, array
// or object. Object keys keep the order they had in the source document, so
// anything derived by walking a tree (route listings, change records) comes
// out in a stable, document-defined order.
//
// A nil *Node is valid everywhere and reports [KindMissing], which lets
// callers chain lookups without nil checks:
//
//	schema := doc.Get("paths").Get("/pets").Get("get").Get("responses")
//	if schema.IsAbsent() {
//		// no responses
//	}
//
// Trees are built from YAML or JSON with [Unmarshal] or [FromYAML], or from
// decoded Go values with [FromValue].
package node
