package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDocumentError(t *testing.T) {
	t.Run("Error message names the role", func(t *testing.T) {
		err := &DocumentError{Role: RoleCandidate, Kind: "number"}
		if err.Error() != "candidate document must be an object" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
		err = &DocumentError{Role: RoleBaseline, Kind: "null"}
		if err.Error() != "baseline document must be an object" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrInvalidDocument", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &DocumentError{Role: RoleCandidate})
		if !errors.Is(err, ErrInvalidDocument) {
			t.Error("DocumentError should match ErrInvalidDocument")
		}
		if errors.Is(err, ErrMissingVersion) {
			t.Error("DocumentError should not match ErrMissingVersion")
		}
	})
}

func TestVersionError(t *testing.T) {
	tests := []struct {
		name     string
		err      *VersionError
		message  string
		sentinel error
	}{
		{
			name:     "missing candidate version",
			err:      &VersionError{Kind: VersionMissing, Role: RoleCandidate},
			message:  "candidate document version must be a string",
			sentinel: ErrMissingVersion,
		},
		{
			name:     "missing baseline version",
			err:      &VersionError{Kind: VersionMissing, Role: RoleBaseline},
			message:  "baseline document version must be a string",
			sentinel: ErrMissingVersion,
		},
		{
			name:     "invalid version with cause",
			err:      &VersionError{Kind: VersionInvalid, Role: RoleBaseline, Cause: errors.New(`invalid major version: "x"`)},
			message:  `baseline document version is not a valid semantic version: invalid major version: "x"`,
			sentinel: ErrInvalidVersion,
		},
		{
			name:     "mismatch",
			err:      &VersionError{Kind: VersionMismatch, CandidateVersion: "2.0.0", BaselineVersion: "1.0.0"},
			message:  "candidate and baseline documents must have the same major version",
			sentinel: ErrVersionMismatch,
		},
	}

	all := []error{ErrMissingVersion, ErrInvalidVersion, ErrVersionMismatch}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.message {
				t.Errorf("unexpected error message: %s", tt.err.Error())
			}
			for _, s := range all {
				if got, want := errors.Is(tt.err, s), s == tt.sentinel; got != want {
					t.Errorf("errors.Is(%v) = %v, want %v", s, got, want)
				}
			}
		})
	}

	t.Run("As extracts versions", func(t *testing.T) {
		err := fmt.Errorf("compare: %w", &VersionError{Kind: VersionMismatch, CandidateVersion: "3.1.0", BaselineVersion: "2.0"})
		var verr *VersionError
		if !errors.As(err, &verr) {
			t.Fatal("errors.As should succeed")
		}
		if verr.CandidateVersion != "3.1.0" || verr.BaselineVersion != "2.0" {
			t.Errorf("unexpected versions: %s %s", verr.CandidateVersion, verr.BaselineVersion)
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ReferenceError{
			Ref:     "#/components/schemas/Pet",
			Message: "not found",
			Cause:   errors.New("missing key: Pet"),
		}
		expected := "reference error: #/components/schemas/Pet: not found: missing key: Pet"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ReferenceError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if err.Unwrap() != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrReference", func(t *testing.T) {
		if !errors.Is(&ReferenceError{}, ErrReference) {
			t.Error("ReferenceError should match ErrReference")
		}
		if errors.Is(&ReferenceError{}, ErrParse) {
			t.Error("ReferenceError should not match ErrParse")
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   errors.New("underlying error"),
		}
		if err.Error() != "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		if (&ParseError{}).Error() != "parse error" {
			t.Error("unexpected error message for empty ParseError")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		if !errors.Is(&ParseError{}, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "file_size", Limit: 10, Actual: 20}
	if err.Error() != "resource limit exceeded: file_size (limit: 10, actual: 20)" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrResourceLimit) {
		t.Error("ResourceLimitError should match ErrResourceLimit")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "format", Value: "xml", Message: "unsupported"}
	if err.Error() != "configuration error for format (value: xml): unsupported" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
}
