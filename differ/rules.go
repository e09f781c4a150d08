package differ

import (
	"fmt"
	"strings"
)

// BreakingChangeRule configures how a specific change type is treated.
type BreakingChangeRule struct {
	// Severity overrides the default severity for this change type.
	// If nil, the default severity is used.
	Severity *Severity

	// Ignore keeps the change in the result but leaves it out of the
	// summary and of the route's severity.
	Ignore bool
}

// ChangeRules holds one rule per action on a construct.
type ChangeRules struct {
	Added   *BreakingChangeRule
	Changed *BreakingChangeRule
	Deleted *BreakingChangeRule
}

// BreakingRulesConfig configures the severity of each kind of change.
// A nil field falls back to the default severity.
//
// Example:
//
//	rules := &differ.BreakingRulesConfig{
//	    Parameter: &differ.ChangeRules{
//	        Added: &differ.BreakingChangeRule{Severity: differ.SeverityPtr(differ.SeverityError)},
//	    },
//	    ResponseHeader: &differ.ChangeRules{
//	        Deleted: &differ.BreakingChangeRule{Ignore: true},
//	    },
//	}
type BreakingRulesConfig struct {
	// Route configures added and deleted routes. Default: added info,
	// deleted critical. Changed routes take the highest severity of their
	// changes.
	Route *ChangeRules

	// Parameter configures parameter changes.
	// Default: added warning, changed warning, deleted error
	Parameter *ChangeRules

	// RequestBody configures request body media type changes.
	// Default: added info, changed warning, deleted error
	RequestBody *ChangeRules

	// ResponseBody configures response body media type changes.
	// Default: added info, changed warning, deleted error
	ResponseBody *ChangeRules

	// ResponseHeader configures response header changes.
	// Default: added info, changed warning, deleted warning
	ResponseHeader *ChangeRules
}

// SeverityPtr returns a pointer to the given severity.
func SeverityPtr(s Severity) *Severity {
	return &s
}

// ApplyRule returns the severity to use and whether the change is ignored.
func (r *BreakingChangeRule) ApplyRule(defaultSeverity Severity) (Severity, bool) {
	if r == nil {
		return defaultSeverity, false
	}
	if r.Ignore {
		return defaultSeverity, true
	}
	if r.Severity != nil {
		return *r.Severity, false
	}
	return defaultSeverity, false
}

func (c *ChangeRules) rule(action Action) *BreakingChangeRule {
	if c == nil {
		return nil
	}
	switch action {
	case ActionAdded:
		return c.Added
	case ActionDeleted:
		return c.Deleted
	default:
		return c.Changed
	}
}

func (c *BreakingRulesConfig) constructRules(t OperationChangeType) *ChangeRules {
	if c == nil {
		return nil
	}
	switch t {
	case ChangeParameter:
		return c.Parameter
	case ChangeRequestBody:
		return c.RequestBody
	case ChangeResponseBody:
		return c.ResponseBody
	case ChangeResponseHeader:
		return c.ResponseHeader
	default:
		return nil
	}
}

func (c *BreakingRulesConfig) routeRule(action Action) *BreakingChangeRule {
	if c == nil {
		return nil
	}
	return c.Route.rule(action)
}

// DefaultRules returns the default rule set. Every field is nil, so every
// change gets its default severity.
func DefaultRules() *BreakingRulesConfig {
	return &BreakingRulesConfig{}
}

// StrictRules treats every change that can affect an existing client as an
// error.
func StrictRules() *BreakingRulesConfig {
	errRule := &BreakingChangeRule{Severity: SeverityPtr(SeverityError)}
	return &BreakingRulesConfig{
		Parameter:      &ChangeRules{Added: errRule, Changed: errRule},
		RequestBody:    &ChangeRules{Changed: errRule},
		ResponseBody:   &ChangeRules{Changed: errRule},
		ResponseHeader: &ChangeRules{Changed: errRule, Deleted: errRule},
	}
}

// LenientRules downgrades deletions of parameters, bodies and headers to
// warnings and ignores additions.
func LenientRules() *BreakingRulesConfig {
	warn := &BreakingChangeRule{Severity: SeverityPtr(SeverityWarning)}
	ignore := &BreakingChangeRule{Ignore: true}
	return &BreakingRulesConfig{
		Route:          &ChangeRules{Added: ignore},
		Parameter:      &ChangeRules{Added: ignore, Deleted: warn},
		RequestBody:    &ChangeRules{Added: ignore, Deleted: warn},
		ResponseBody:   &ChangeRules{Added: ignore, Deleted: warn},
		ResponseHeader: &ChangeRules{Added: ignore},
	}
}

// RuleSetNames lists the names accepted by RulesByName.
var RuleSetNames = []string{"default", "strict", "lenient"}

// RulesByName returns the named rule set. An empty name selects the
// default rules.
func RulesByName(name string) (*BreakingRulesConfig, error) {
	switch name {
	case "default", "":
		return DefaultRules(), nil
	case "strict":
		return StrictRules(), nil
	case "lenient":
		return LenientRules(), nil
	default:
		return nil, fmt.Errorf("invalid rules '%s'. Valid rules: %s", name, strings.Join(RuleSetNames, ", "))
	}
}
