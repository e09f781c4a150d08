// Package oaserrors provides structured error types for the routediff library.
//
// Import path: github.com/erraggy/routediff/oaserrors
//
// # Error Types
//
//   - [DocumentError]: an argument to Compare is not a JSON object
//   - [VersionError]: a version precondition failed (missing, invalid, mismatch)
//   - [ReferenceError]: a $ref pointer did not resolve within its document
//   - [ParseError]: YAML/JSON parsing failures while loading
//   - [ResourceLimitError]: a loaded document exceeded a size limit
//   - [ConfigError]: invalid options
//
// # Sentinel Errors
//
//   - [ErrInvalidDocument]: Matches any [DocumentError]
//   - [ErrMissingVersion]: Matches [VersionError] with Kind VersionMissing
//   - [ErrInvalidVersion]: Matches [VersionError] with Kind VersionInvalid
//   - [ErrVersionMismatch]: Matches [VersionError] with Kind VersionMismatch
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// Precondition errors are returned before any route is compared, so a caller
// can branch on them without inspecting partial output:
//
//	var verr *oaserrors.VersionError
//	if errors.As(err, &verr) && verr.Kind == oaserrors.VersionMismatch {
//	    fmt.Printf("cannot compare %s with %s\n", verr.CandidateVersion, verr.BaselineVersion)
//	}
package oaserrors
