// Package parser loads OpenAPI documents from files, URLs, readers or byte
// slices into an order-preserving [node.Node] tree.
//
// Both YAML and JSON input are accepted. The parser does not validate the
// document; it only decodes it and records where it came from:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithLogger(parser.NewSlogAdapter(slog.Default())),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Version, result.Document.Get("paths").Len())
//
// Decoding failures are reported as [oaserrors.ParseError] and oversized
// input as [oaserrors.ResourceLimitError].
package parser
