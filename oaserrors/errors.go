package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidDocument indicates a compared document is not an object.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrMissingVersion indicates a document has no string version field.
	ErrMissingVersion = errors.New("missing version")

	// ErrInvalidVersion indicates a version field could not be parsed.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrVersionMismatch indicates the documents have different major versions.
	ErrVersionMismatch = errors.New("major version mismatch")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// Role names which side of a comparison an error refers to.
type Role string

const (
	// RoleCandidate is the newer document being checked.
	RoleCandidate Role = "candidate"
	// RoleBaseline is the previous document being checked against.
	RoleBaseline Role = "baseline"
)

// DocumentError reports that one of the compared documents is not a
// JSON object (nil, a scalar or an array).
type DocumentError struct {
	// Role identifies the offending argument
	Role Role
	// Kind describes what was received instead (e.g., "null", "number")
	Kind string
}

// Error returns a human-readable error message.
func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s document must be an object", e.Role)
}

// Is reports whether target matches this error type.
func (e *DocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// VersionErrorKind distinguishes the version precondition failures.
type VersionErrorKind int

const (
	// VersionMissing means the version field is absent or not a string.
	VersionMissing VersionErrorKind = iota
	// VersionInvalid means the version string is not a semantic version.
	VersionInvalid
	// VersionMismatch means the two documents have different major versions.
	VersionMismatch
)

// VersionError represents a failed version precondition.
type VersionError struct {
	// Kind is the failure category
	Kind VersionErrorKind
	// Role is the offending document; empty for VersionMismatch
	Role Role
	// CandidateVersion and BaselineVersion are the raw version strings, when known
	CandidateVersion string
	BaselineVersion  string
	// Cause is the underlying parse error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *VersionError) Error() string {
	switch e.Kind {
	case VersionMissing:
		return fmt.Sprintf("%s document version must be a string", e.Role)
	case VersionInvalid:
		msg := fmt.Sprintf("%s document version is not a valid semantic version", e.Role)
		if e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
		return msg
	default:
		return "candidate and baseline documents must have the same major version"
	}
}

// Unwrap returns the underlying cause for error chaining.
func (e *VersionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *VersionError) Is(target error) bool {
	switch e.Kind {
	case VersionMissing:
		return target == ErrMissingVersion
	case VersionInvalid:
		return target == ErrInvalidVersion
	default:
		return target == ErrVersionMismatch
	}
}

// ReferenceError represents a failure to resolve a $ref.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// DocumentID is the resolver id of the document the ref was resolved against
	DocumentID string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// ParseError represents a failure to parse an OpenAPI document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded (e.g., "file_size")
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
