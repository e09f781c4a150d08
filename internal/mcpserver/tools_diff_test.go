package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	candidateFile = "../../testdata/petstore-candidate.yaml"
	baselineFile  = "../../testdata/petstore-baseline.yaml"
)

const smallBaseline = `openapi: 3.0.0
paths:
  /x:
    get:
      parameters:
        - name: id
          in: query
          schema: {type: integer}
      responses:
        "200":
          description: ok
`

const smallCandidate = `openapi: 3.0.0
paths:
  /x:
    get:
      parameters:
        - name: id
          in: query
          schema: {type: string}
      responses:
        "200":
          description: ok
`

func petstoreInput() diffRoutesInput {
	return diffRoutesInput{
		Candidate: specInput{File: candidateFile},
		Baseline:  specInput{File: baselineFile},
	}
}

func routeKeys(routes []routeSummary) []string {
	keys := make([]string, 0, len(routes))
	for _, rt := range routes {
		keys = append(keys, rt.Method+" "+rt.Path)
	}
	return keys
}

func TestDiffRoutesTool_Petstore(t *testing.T) {
	specCache.reset()
	result, output, err := handleDiffRoutes(context.Background(), &mcp.CallToolRequest{}, petstoreInput())
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.False(t, output.IsEqual)
	assert.Equal(t, "3.1.0", output.CandidateVersion)
	assert.Equal(t, "3.0.3", output.BaselineVersion)
	assert.Equal(t, 1, output.UnchangedCount)
	assert.Empty(t, output.UnchangedRoutes)
	assert.Equal(t, []string{"patch /pets/{petId}"}, routeKeys(output.AddedRoutes))
	assert.Equal(t, []string{"delete /pets/{petId}"}, routeKeys(output.DeletedRoutes))
	assert.Equal(t, []string{"get /pets", "get /pets/{petId}"}, routeKeys(output.ChangedRoutes))

	assert.Equal(t, 1, output.BreakingCount)
	assert.Equal(t, 5, output.WarningCount)
	assert.Equal(t, 1, output.InfoCount)
	assert.Equal(t, 0, output.IgnoredCount)
	assert.False(t, output.Truncated)
	assert.Equal(t, "Breaking changes detected. 1 added route, 1 deleted route, 2 changed routes (1 breaking change).", output.Summary)

	assert.Equal(t, "critical", output.DeletedRoutes[0].Severity)
	listPets := output.ChangedRoutes[0]
	assert.Equal(t, "warning", listPets.Severity)
	require.Len(t, listPets.Changes, 4)
	for _, c := range listPets.Changes {
		assert.NotEmpty(t, c.Comment)
		assert.NotEmpty(t, c.Type)
		assert.NotEmpty(t, c.Action)
		assert.Empty(t, c.SchemaChanges, "schema changes are opt-in")
	}
}

func TestDiffRoutesTool_IncludeSchemas(t *testing.T) {
	input := diffRoutesInput{
		Candidate:      specInput{Content: smallCandidate},
		Baseline:       specInput{Content: smallBaseline},
		IncludeSchemas: true,
	}
	_, output, err := handleDiffRoutes(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.ChangedRoutes, 1)
	require.Len(t, output.ChangedRoutes[0].Changes, 1)
	change := output.ChangedRoutes[0].Changes[0]
	assert.Equal(t, "parameter", change.Type)
	assert.Equal(t, "changed", change.Action)
	assert.Equal(t, `query parameter "id" has been changed in GET "/x" route`, change.Comment)
	assert.Equal(t, []schemaChangeDetail{
		{Type: "modified", Path: "#/type", OldValue: "integer", NewValue: "string"},
	}, change.SchemaChanges)
}

func TestDiffRoutesTool_BreakingOnly(t *testing.T) {
	input := petstoreInput()
	input.BreakingOnly = true
	_, output, err := handleDiffRoutes(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Empty(t, output.AddedRoutes)
	assert.Empty(t, output.ChangedRoutes)
	assert.Equal(t, []string{"delete /pets/{petId}"}, routeKeys(output.DeletedRoutes))
	// Counts always describe the whole result.
	assert.Equal(t, 5, output.WarningCount)
}

func TestDiffRoutesTool_Rules(t *testing.T) {
	tests := []struct {
		rules    string
		breaking int
		warnings int
		ignored  int
	}{
		{rules: "", breaking: 1, warnings: 5},
		{rules: "default", breaking: 1, warnings: 5},
		{rules: "strict", breaking: 6, warnings: 0},
		{rules: "lenient", breaking: 1, warnings: 4, ignored: 2},
	}
	for _, tt := range tests {
		t.Run("rules="+tt.rules, func(t *testing.T) {
			input := petstoreInput()
			input.Rules = tt.rules
			_, output, err := handleDiffRoutes(context.Background(), &mcp.CallToolRequest{}, input)
			require.NoError(t, err)
			assert.Equal(t, tt.breaking, output.BreakingCount)
			assert.Equal(t, tt.warnings, output.WarningCount)
			assert.Equal(t, tt.ignored, output.IgnoredCount)
		})
	}
}

func TestDiffRoutesTool_Limit(t *testing.T) {
	input := petstoreInput()
	input.Limit = 1
	input.IncludeUnchanged = true
	_, output, err := handleDiffRoutes(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, []string{"post /pets"}, output.UnchangedRoutes)
	assert.Equal(t, []string{"get /pets"}, routeKeys(output.ChangedRoutes))
	assert.True(t, output.Truncated)
}

func TestDiffRoutesTool_NoChanges(t *testing.T) {
	input := diffRoutesInput{
		Candidate:        specInput{File: baselineFile},
		Baseline:         specInput{File: "../../testdata/petstore-baseline.json"},
		IncludeUnchanged: true,
	}
	_, output, err := handleDiffRoutes(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.IsEqual)
	assert.Equal(t, 4, output.UnchangedCount)
	assert.Len(t, output.UnchangedRoutes, 4)
	assert.Empty(t, output.AddedRoutes)
	assert.Empty(t, output.DeletedRoutes)
	assert.Empty(t, output.ChangedRoutes)
	assert.Equal(t, "No route differences found (4 unchanged routes).", output.Summary)
}

func TestDiffRoutesTool_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   diffRoutesInput
		message string
	}{
		{
			name: "invalid rules",
			input: diffRoutesInput{
				Candidate: specInput{Content: smallCandidate},
				Baseline:  specInput{Content: smallBaseline},
				Rules:     "loose",
			},
			message: "invalid rules 'loose'",
		},
		{
			name: "invalid candidate",
			input: diffRoutesInput{
				Candidate: specInput{Content: "not valid yaml: ["},
				Baseline:  specInput{Content: smallBaseline},
			},
		},
		{
			name: "missing baseline",
			input: diffRoutesInput{
				Candidate: specInput{Content: smallCandidate},
			},
			message: "exactly one of file, url, or content must be provided",
		},
		{
			name: "major version mismatch",
			input: diffRoutesInput{
				Candidate: specInput{File: "../../testdata/major-2.yaml"},
				Baseline:  specInput{Content: smallBaseline},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleDiffRoutes(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Empty(t, output.ChangedRoutes)
			if tt.message != "" {
				text, ok := result.Content[0].(*mcp.TextContent)
				require.True(t, ok)
				assert.Contains(t, text.Text, tt.message)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1 route", formatCount(1, "route"))
	assert.Equal(t, "0 routes", formatCount(0, "route"))
	assert.Equal(t, "3 routes", formatCount(3, "route"))
}
