// Package severity defines the levels used to classify route changes.
//
// Levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

import (
	"fmt"
	"strings"
)

// Severity is the impact level of a route change on existing clients.
type Severity int

const (
	// SeverityInfo marks additive changes that cannot break a client.
	SeverityInfo Severity = iota

	// SeverityWarning marks changes that may break some clients, such as a
	// modified schema or a new parameter.
	SeverityWarning

	// SeverityError marks removals that break clients relying on them.
	SeverityError

	// SeverityCritical marks a removed route.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is as severe as min or more.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}

// MarshalText encodes the level by name.
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityInfo || s > SeverityCritical {
		return nil, fmt.Errorf("severity: invalid level %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a level name as produced by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Parse converts a level name, in any case, to a Severity.
func Parse(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return SeverityInfo, fmt.Errorf("severity: unknown level %q", name)
	}
}
