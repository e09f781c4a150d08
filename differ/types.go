package differ

import (
	"github.com/erraggy/routediff/internal/severity"
	"github.com/erraggy/routediff/node"
)

// ChangeType indicates whether a schema change is an addition, removal, or modification
type ChangeType string

const (
	// ChangeTypeAdded indicates a keyword present only in the candidate
	ChangeTypeAdded ChangeType = "added"
	// ChangeTypeRemoved indicates a keyword present only in the baseline
	ChangeTypeRemoved ChangeType = "removed"
	// ChangeTypeModified indicates a keyword whose value differs
	ChangeTypeModified ChangeType = "modified"
)

// Severity indicates the impact level of a change
type Severity = severity.Severity

const (
	// SeverityInfo indicates additive changes
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates changes that may affect some clients
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates breaking changes (removed parameters or bodies)
	SeverityError = severity.SeverityError
	// SeverityCritical indicates a removed route
	SeverityCritical = severity.SeverityCritical
)

// SchemaChange is a single keyword-level difference between two schemas.
//
// Path is a JSON Pointer in dereferenced coordinates: "$ref" hops are
// transparent, so a change inside a referenced component is reported where
// it appears in the schema that uses it.
type SchemaChange struct {
	Type ChangeType `json:"type" yaml:"type"`
	Path string     `json:"path" yaml:"path"`
	// OldValue is the baseline value (nil for additions)
	OldValue *node.Node `json:"oldValue,omitempty" yaml:"oldValue,omitempty"`
	// NewValue is the candidate value (nil for removals)
	NewValue *node.Node `json:"newValue,omitempty" yaml:"newValue,omitempty"`
}

// KeywordChanges groups schema changes by the construct keyword they were
// found under. Only "schema" is produced today.
type KeywordChanges struct {
	Keyword string         `json:"keyword" yaml:"keyword"`
	Changes []SchemaChange `json:"changes" yaml:"changes"`
}

// OperationChangeType names the OpenAPI construct an OperationChange is about
type OperationChangeType string

const (
	// ChangeParameter is a parameter matched by name and location
	ChangeParameter OperationChangeType = "parameter"
	// ChangeRequestBody is one media type of a request body
	ChangeRequestBody OperationChangeType = "requestBody"
	// ChangeResponseBody is one media type of a response
	ChangeResponseBody OperationChangeType = "responseBody"
	// ChangeResponseHeader is one header of a response
	ChangeResponseHeader OperationChangeType = "responseHeader"
)

// Action is what happened to a construct between the two documents
type Action string

const (
	// ActionAdded means the construct exists only in the candidate
	ActionAdded Action = "added"
	// ActionChanged means the construct exists on both sides with a different schema
	ActionChanged Action = "changed"
	// ActionDeleted means the construct exists only in the baseline
	ActionDeleted Action = "deleted"
)

// OperationChange describes one parameter, request body, response body or
// response header that differs on a route.
type OperationChange struct {
	Type   OperationChangeType `json:"type" yaml:"type"`
	Action Action              `json:"action" yaml:"action"`
	// Name and In identify a parameter
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	In   string `json:"in,omitempty" yaml:"in,omitempty"`
	// StatusCode identifies a response body or header
	StatusCode string `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
	// MediaType identifies a request or response body
	MediaType string `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
	// Header identifies a response header
	Header   string           `json:"header,omitempty" yaml:"header,omitempty"`
	Changes  []KeywordChanges `json:"changes" yaml:"changes"`
	Comment  string           `json:"comment" yaml:"comment"`
	Severity Severity         `json:"severity" yaml:"severity"`
	// Ignored is set when a breaking rule excludes the change from the summary
	Ignored bool `json:"ignored,omitempty" yaml:"ignored,omitempty"`
}

// Route is one (method, path) pair and its verdict. Schema is set for
// unchanged, added and deleted routes; CandidateSchema, BaselineSchema and
// Changes for changed routes.
type Route struct {
	Method          string            `json:"method" yaml:"method"`
	Path            string            `json:"path" yaml:"path"`
	Schema          *node.Node        `json:"schema,omitempty" yaml:"schema,omitempty"`
	CandidateSchema *node.Node        `json:"candidateSchema,omitempty" yaml:"candidateSchema,omitempty"`
	BaselineSchema  *node.Node        `json:"baselineSchema,omitempty" yaml:"baselineSchema,omitempty"`
	Changes         []OperationChange `json:"changes,omitempty" yaml:"changes,omitempty"`
	Severity        Severity          `json:"severity" yaml:"severity"`
	Ignored         bool              `json:"ignored,omitempty" yaml:"ignored,omitempty"`
}

// Result is the verdict of comparing a candidate document with a baseline.
// Each route list is ordered by the candidate's path order, then
// baseline-only paths, then the fixed method order.
type Result struct {
	// IsEqual is true when no route was added, deleted or changed
	IsEqual          bool    `json:"isEqual" yaml:"isEqual"`
	UnchangedRoutes  []Route `json:"unchangedRoutes" yaml:"unchangedRoutes"`
	AddedRoutes      []Route `json:"addedRoutes" yaml:"addedRoutes"`
	DeletedRoutes    []Route `json:"deletedRoutes" yaml:"deletedRoutes"`
	ChangedRoutes    []Route `json:"changedRoutes" yaml:"changedRoutes"`
	CandidateVersion string  `json:"candidateVersion" yaml:"candidateVersion"`
	BaselineVersion  string  `json:"baselineVersion" yaml:"baselineVersion"`
}
