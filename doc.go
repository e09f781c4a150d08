// Package routediff compares two versions of an OpenAPI description route by
// route and reports which routes were added, deleted or changed.
//
// # Overview
//
// The module is organized as a small set of packages:
//
//   - node: an order-preserving JSON/YAML value tree
//   - parser: load documents from files, URLs, readers or bytes
//   - resolver: resolve local "$ref" pointers within a document
//   - differ: compare a candidate document with a baseline document
//   - oaserrors: typed errors shared by the packages above
//
// A route is an HTTP method and path pair. For every route the differ
// reports the parameters, request bodies, response bodies and response
// headers that changed, down to the individual schema keywords, and rates
// each change with a severity from info to critical. Breaking change rules
// adjust or ignore those severities.
//
// Swagger 2.0 and OpenAPI 3.x documents are accepted. Both documents must
// share the same major version.
//
// # Quick start
//
//	result, err := differ.CompareWithOptions(
//	    differ.WithCandidateFilePath("openapi-v2.yaml"),
//	    differ.WithBaselineFilePath("openapi-v1.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.HasBreakingChanges() {
//	    for _, r := range result.DeletedRoutes {
//	        fmt.Printf("deleted: %s %s\n", r.Method, r.Path)
//	    }
//	}
//
// # Command line
//
// The routediff command wraps the differ:
//
//	routediff diff --fail-on breaking openapi-v2.yaml openapi-v1.yaml
//	routediff mcp
//
// The mcp command serves a diff_routes tool to MCP clients over stdio.
//
// # Build metadata
//
// Version, Commit and BuildTime are set through ldflags at release time.
// UserAgent is sent by the parser when fetching documents over HTTP.
package routediff
