// Package differ computes a route-level difference between two versions of
// an OpenAPI description.
//
// Compare takes a candidate (newer) document and a baseline (previous)
// document and sorts every route, an HTTP method and path pair, into one of
// four lists: unchanged, added, deleted or changed. A changed route lists
// the parameters, request bodies, response bodies and response headers that
// differ, each with the schema keywords that changed and a short comment:
//
//	result, err := differ.CompareWithOptions(
//	    differ.WithCandidateFilePath("api-v2.yaml"),
//	    differ.WithBaselineFilePath("api-v1.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, route := range result.ChangedRoutes {
//	    for _, change := range route.Changes {
//	        fmt.Println(change.Comment)
//	    }
//	}
//
// # Matching rules
//
// Parameters are matched by name and location, so reordering a parameter
// list is not a change and moving a parameter from query to header is a
// deletion plus an addition. Request bodies are matched by media type and
// responses by status code, then by header name and media type. Operation
// methods are matched case insensitively; only the eight OpenAPI methods are
// routes, and path item fields such as summary and description are ignored.
//
// # Schemas and references
//
// Schemas are compared keyword by keyword. When both sides hold the same
// "$ref", the differ follows it in each document and reports the changes
// at the place the reference is used: a changed property type inside a
// shared component is reported as "#/properties/bar/type" under every
// schema that references it. Recursive schemas terminate, and each
// difference is reported once. Different "$ref" strings are a single
// modification of the "$ref" keyword.
//
// # Breaking changes
//
// Every change is given a severity from a BreakingRulesConfig. By default
// deleting a route is critical, deleting a parameter or body is an error,
// and additions are informational. Result.Summary counts them and
// Result.HasBreakingChanges reports whether anything reached error level.
package differ
