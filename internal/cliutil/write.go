// Package cliutil provides output helpers for the routediff CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Banner writes text followed by an "=" underline of the same width and a
// blank line.
func Banner(w io.Writer, text string) {
	Writef(w, "%s\n%s\n\n", text, strings.Repeat("=", utf8.RuneCountInString(text)))
}

// Section writes a title-cased section heading with an item count, such as
// "Added Routes (2):".
func Section(w io.Writer, heading string, count int) {
	Writef(w, "%s (%d):\n", titleCaser.String(heading), count)
}
