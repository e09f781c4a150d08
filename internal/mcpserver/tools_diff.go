package mcpserver

import (
	"context"
	"strconv"

	"github.com/erraggy/routediff/differ"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type diffRoutesInput struct {
	Candidate        specInput `json:"candidate"                   jsonschema:"The newer OpenAPI document"`
	Baseline         specInput `json:"baseline"                    jsonschema:"The previous OpenAPI document the candidate is compared against"`
	Rules            string    `json:"rules,omitempty"             jsonschema:"Breaking change rule set: default, strict or lenient"`
	BreakingOnly     bool      `json:"breaking_only,omitempty"     jsonschema:"Only list routes and changes at error severity or above"`
	IncludeUnchanged bool      `json:"include_unchanged,omitempty" jsonschema:"List unchanged routes as well as counting them"`
	IncludeSchemas   bool      `json:"include_schemas,omitempty"   jsonschema:"Include schema level differences for each change"`
	Limit            int       `json:"limit,omitempty"             jsonschema:"Maximum routes per list (default 100, configurable via ROUTEDIFF_DETAIL_LIMIT)"`
}

type schemaChangeDetail struct {
	Type     string `json:"type"`
	Path     string `json:"path"`
	OldValue any    `json:"old_value,omitempty"`
	NewValue any    `json:"new_value,omitempty"`
}

type changeDetail struct {
	Type          string               `json:"type"`
	Action        string               `json:"action"`
	Severity      string               `json:"severity"`
	Ignored       bool                 `json:"ignored,omitempty"`
	Comment       string               `json:"comment"`
	SchemaChanges []schemaChangeDetail `json:"schema_changes,omitempty"`
}

type routeSummary struct {
	Method   string         `json:"method"`
	Path     string         `json:"path"`
	Severity string         `json:"severity"`
	Ignored  bool           `json:"ignored,omitempty"`
	Changes  []changeDetail `json:"changes,omitempty"`
}

type diffRoutesOutput struct {
	IsEqual          bool           `json:"is_equal"`
	CandidateVersion string         `json:"candidate_version"`
	BaselineVersion  string         `json:"baseline_version"`
	UnchangedCount   int            `json:"unchanged_count"`
	UnchangedRoutes  []string       `json:"unchanged_routes,omitempty"`
	AddedRoutes      []routeSummary `json:"added_routes,omitempty"`
	DeletedRoutes    []routeSummary `json:"deleted_routes,omitempty"`
	ChangedRoutes    []routeSummary `json:"changed_routes,omitempty"`
	BreakingCount    int            `json:"breaking_count"`
	WarningCount     int            `json:"warning_count"`
	InfoCount        int            `json:"info_count"`
	IgnoredCount     int            `json:"ignored_count"`
	Truncated        bool           `json:"truncated,omitempty"`
	Summary          string         `json:"summary"`
}

func handleDiffRoutes(_ context.Context, _ *mcp.CallToolRequest, input diffRoutesInput) (*mcp.CallToolResult, diffRoutesOutput, error) {
	rules, err := differ.RulesByName(input.Rules)
	if err != nil {
		return errResult(err), diffRoutesOutput{}, nil
	}

	candidate, err := input.Candidate.resolve()
	if err != nil {
		return errResult(err), diffRoutesOutput{}, nil
	}
	baseline, err := input.Baseline.resolve()
	if err != nil {
		return errResult(err), diffRoutesOutput{}, nil
	}

	result, err := differ.CompareWithOptions(
		differ.WithCandidateParsed(candidate),
		differ.WithBaselineParsed(baseline),
		differ.WithBreakingRules(rules),
	)
	if err != nil {
		return errResult(err), diffRoutesOutput{}, nil
	}

	summary := result.Summary()
	output := diffRoutesOutput{
		IsEqual:          result.IsEqual,
		CandidateVersion: result.CandidateVersion,
		BaselineVersion:  result.BaselineVersion,
		UnchangedCount:   len(result.UnchangedRoutes),
		BreakingCount:    summary.Breaking(),
		WarningCount:     summary.Warnings,
		InfoCount:        summary.Info,
		IgnoredCount:     summary.Ignored,
	}

	limit := input.Limit
	if limit <= 0 {
		limit = cfg.DetailLimit
	}
	lister := routeLister{limit: limit, breakingOnly: input.BreakingOnly, schemas: input.IncludeSchemas}

	if input.IncludeUnchanged && !input.BreakingOnly {
		output.UnchangedRoutes = makeSlice[string](min(len(result.UnchangedRoutes), limit))
		for _, rt := range result.UnchangedRoutes {
			if len(output.UnchangedRoutes) == limit {
				lister.truncated = true
				break
			}
			output.UnchangedRoutes = append(output.UnchangedRoutes, rt.Method+" "+rt.Path)
		}
	}
	output.AddedRoutes = lister.list(result.AddedRoutes)
	output.DeletedRoutes = lister.list(result.DeletedRoutes)
	output.ChangedRoutes = lister.list(result.ChangedRoutes)
	output.Truncated = lister.truncated
	output.Summary = buildDiffSummary(result, summary)

	return nil, output, nil
}

// routeLister converts differ routes into tool output, applying the
// breaking_only filter and the per-list limit.
type routeLister struct {
	limit        int
	breakingOnly bool
	schemas      bool
	truncated    bool
}

func (l *routeLister) list(routes []differ.Route) []routeSummary {
	out := makeSlice[routeSummary](min(len(routes), l.limit))
	for _, rt := range routes {
		if l.breakingOnly && !isBreaking(rt.Severity, rt.Ignored) {
			continue
		}
		if len(out) == l.limit {
			l.truncated = true
			break
		}
		out = append(out, l.route(rt))
	}
	return out
}

func (l *routeLister) route(rt differ.Route) routeSummary {
	s := routeSummary{
		Method:   rt.Method,
		Path:     rt.Path,
		Severity: rt.Severity.String(),
		Ignored:  rt.Ignored,
		Changes:  makeSlice[changeDetail](len(rt.Changes)),
	}
	for _, c := range rt.Changes {
		if l.breakingOnly && !isBreaking(c.Severity, c.Ignored) {
			continue
		}
		d := changeDetail{
			Type:     string(c.Type),
			Action:   string(c.Action),
			Severity: c.Severity.String(),
			Ignored:  c.Ignored,
			Comment:  c.Comment,
		}
		if l.schemas {
			d.SchemaChanges = schemaDetails(c.Changes)
		}
		s.Changes = append(s.Changes, d)
	}
	return s
}

// schemaDetails flattens keyword groups into plain values. Node values are
// converted so the output schema stays inferable.
func schemaDetails(groups []differ.KeywordChanges) []schemaChangeDetail {
	var out []schemaChangeDetail
	for _, g := range groups {
		for _, sc := range g.Changes {
			out = append(out, schemaChangeDetail{
				Type:     string(sc.Type),
				Path:     sc.Path,
				OldValue: sc.OldValue.Value(),
				NewValue: sc.NewValue.Value(),
			})
		}
	}
	return out
}

func isBreaking(sev differ.Severity, ignored bool) bool {
	return !ignored && sev.AtLeast(differ.SeverityError)
}

func buildDiffSummary(result *differ.Result, summary differ.Summary) string {
	if result.IsEqual {
		return "No route differences found (" + formatCount(len(result.UnchangedRoutes), "unchanged route") + ")."
	}

	s := ""
	if summary.Breaking() > 0 {
		s = "Breaking changes detected. "
	}
	s += formatCount(len(result.AddedRoutes), "added route") + ", " +
		formatCount(len(result.DeletedRoutes), "deleted route") + ", " +
		formatCount(len(result.ChangedRoutes), "changed route")
	if summary.Breaking() > 0 {
		s += " (" + formatCount(summary.Breaking(), "breaking change") + ")."
	} else {
		s += "."
	}
	return s
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
