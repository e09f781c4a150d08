// Package options holds validation shared by the functional options of the
// parser and differ packages and by the MCP tool inputs.
package options

import "errors"

// CountSources returns how many of the given input sources are set.
func CountSources(sources ...bool) int {
	n := 0
	for _, set := range sources {
		if set {
			n++
		}
	}
	return n
}

// ValidateSingleInputSource returns noSourceMsg as an error when no source
// is set and multiSourceMsg when more than one is.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	switch CountSources(sources...) {
	case 1:
		return nil
	case 0:
		return errors.New(noSourceMsg)
	default:
		return errors.New(multiSourceMsg)
	}
}
