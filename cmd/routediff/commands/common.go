// Package commands provides CLI command handlers for routediff.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Exit codes
const (
	// ExitOK means the comparison ran and nothing matched --fail-on.
	ExitOK = 0
	// ExitChanges means the comparison found changes matching --fail-on.
	ExitChanges = 1
	// ExitError means the comparison could not run.
	ExitError = 2
)

// ExitCodeError asks the caller to exit with Code without printing an error.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	if _, err := fmt.Fprintln(w, string(bytes)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
