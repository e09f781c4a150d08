package commands

import (
	"io"
	"strings"

	"github.com/erraggy/routediff"
	"github.com/erraggy/routediff/differ"
	"github.com/erraggy/routediff/internal/cliutil"
	"github.com/erraggy/routediff/parser"
)

// severitySymbol marks a line with the impact of the change.
func severitySymbol(sev differ.Severity, ignored bool) string {
	if ignored {
		return "·"
	}
	switch sev {
	case differ.SeverityError, differ.SeverityCritical:
		return "✗"
	case differ.SeverityWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

func routeLine(r differ.Route) string {
	return strings.ToUpper(r.Method) + " " + r.Path
}

// renderText writes the human-readable report.
func renderText(w io.Writer, candidate, baseline *parser.ParseResult, result *differ.Result) {
	cliutil.Banner(w, "OpenAPI Route Diff")
	cliutil.Writef(w, "routediff version: %s\n", routediff.Version())
	cliutil.Writef(w, "Candidate: %s (OAS %s, %s)\n", candidate.SourcePath, result.CandidateVersion, parser.FormatBytes(candidate.SourceSize))
	cliutil.Writef(w, "Baseline:  %s (OAS %s, %s)\n\n", baseline.SourcePath, result.BaselineVersion, parser.FormatBytes(baseline.SourceSize))

	if result.IsEqual {
		cliutil.Writef(w, "✓ No route differences found (%d unchanged)\n", len(result.UnchangedRoutes))
		return
	}

	renderRoutes(w, "added routes", result.AddedRoutes)
	renderRoutes(w, "deleted routes", result.DeletedRoutes)

	if len(result.ChangedRoutes) > 0 {
		cliutil.Section(w, "changed routes", len(result.ChangedRoutes))
		for _, r := range result.ChangedRoutes {
			cliutil.Writef(w, "  %s %s\n", severitySymbol(r.Severity, r.Ignored), routeLine(r))
			for _, c := range r.Changes {
				cliutil.Writef(w, "    %s [%s] %s\n", severitySymbol(c.Severity, c.Ignored), c.Severity, c.Comment)
				if c.Action != differ.ActionChanged {
					continue
				}
				for _, kw := range c.Changes {
					for _, sc := range kw.Changes {
						renderSchemaChange(w, sc)
					}
				}
			}
		}
		cliutil.Writef(w, "\n")
	}

	s := result.Summary()
	cliutil.Writef(w, "Summary:\n")
	cliutil.Writef(w, "  Unchanged routes: %d\n", len(result.UnchangedRoutes))
	cliutil.Writef(w, "  Added routes: %d\n", len(result.AddedRoutes))
	cliutil.Writef(w, "  Deleted routes: %d\n", len(result.DeletedRoutes))
	cliutil.Writef(w, "  Changed routes: %d\n", len(result.ChangedRoutes))
	if s.Breaking() > 0 {
		cliutil.Writef(w, "  ⚠️  Breaking changes: %d\n", s.Breaking())
	} else {
		cliutil.Writef(w, "  ✓ Breaking changes: 0\n")
	}
	cliutil.Writef(w, "  Warnings: %d\n", s.Warnings)
	cliutil.Writef(w, "  Info: %d\n", s.Info)
	if s.Ignored > 0 {
		cliutil.Writef(w, "  Ignored: %d\n", s.Ignored)
	}
}

func renderRoutes(w io.Writer, heading string, routes []differ.Route) {
	if len(routes) == 0 {
		return
	}
	cliutil.Section(w, heading, len(routes))
	for _, r := range routes {
		cliutil.Writef(w, "  %s [%s] %s\n", severitySymbol(r.Severity, r.Ignored), r.Severity, routeLine(r))
	}
	cliutil.Writef(w, "\n")
}

func renderSchemaChange(w io.Writer, sc differ.SchemaChange) {
	switch sc.Type {
	case differ.ChangeTypeAdded:
		cliutil.Writef(w, "        + %s: %s\n", sc.Path, sc.NewValue)
	case differ.ChangeTypeRemoved:
		cliutil.Writef(w, "        - %s: %s\n", sc.Path, sc.OldValue)
	default:
		cliutil.Writef(w, "        ~ %s: %s -> %s\n", sc.Path, sc.OldValue, sc.NewValue)
	}
}
