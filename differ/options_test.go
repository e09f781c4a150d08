package differ

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/routediff/parser"
)

func TestCompareWithOptionsSources(t *testing.T) {
	candidate, err := parser.New().Parse("../testdata/petstore-candidate.yaml")
	require.NoError(t, err)
	baseline, err := parser.New().Parse("../testdata/petstore-baseline.json")
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []Option
	}{
		{"file paths", []Option{
			WithCandidateFilePath("../testdata/petstore-candidate.yaml"),
			WithBaselineFilePath("../testdata/petstore-baseline.json"),
		}},
		{"parsed", []Option{WithCandidateParsed(candidate), WithBaselineParsed(baseline)}},
		{"nodes", []Option{WithCandidateNode(candidate.Document), WithBaselineNode(baseline.Document)}},
		{"mixed", []Option{
			WithCandidateParsed(candidate),
			WithBaselineFilePath("../testdata/petstore-baseline.yaml"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareWithOptions(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, []string{"patch /pets/{petId}"}, routeNames(result.AddedRoutes))
			assert.Equal(t, []string{"delete /pets/{petId}"}, routeNames(result.DeletedRoutes))
			assert.Equal(t, []string{"get /pets", "get /pets/{petId}"}, routeNames(result.ChangedRoutes))
			assert.Equal(t, []string{"post /pets"}, routeNames(result.UnchangedRoutes))
		})
	}
}

func TestCompareWithOptionsErrors(t *testing.T) {
	doc := mustNode(t, `{openapi: 3.0.0, paths: {}}`)

	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{
			name:    "no candidate",
			opts:    []Option{WithBaselineNode(doc)},
			wantErr: "must specify a candidate",
		},
		{
			name:    "two candidates",
			opts:    []Option{WithCandidateNode(doc), WithCandidateFilePath("x.yaml"), WithBaselineNode(doc)},
			wantErr: "must specify exactly one candidate",
		},
		{
			name:    "no baseline",
			opts:    []Option{WithCandidateNode(doc)},
			wantErr: "must specify a baseline",
		},
		{
			name:    "nil parse result",
			opts:    []Option{WithCandidateParsed(nil), WithBaselineNode(doc)},
			wantErr: "candidate parse result must not be nil",
		},
		{
			name:    "nil node",
			opts:    []Option{WithCandidateNode(doc), WithBaselineNode(nil)},
			wantErr: "baseline document must not be nil",
		},
		{
			name: "missing file",
			opts: []Option{
				WithCandidateFilePath("../testdata/does-not-exist.yaml"),
				WithBaselineNode(doc),
			},
			wantErr: "failed to parse candidate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompareWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCompareWithOptionsLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := CompareWithOptions(
		WithCandidateFilePath("../testdata/petstore-candidate.yaml"),
		WithBaselineFilePath("../testdata/petstore-baseline.yaml"),
		WithLogger(logger),
		WithUserAgent("routediff-test"),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "comparing documents")
	assert.Contains(t, out, "compared documents")
	assert.Contains(t, out, "changed=2")
}

func TestCompareWithOptionsLogsSuspectKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	candidate := mustNode(t, `
openapi: 3.0.0
paths:
  /x:
    get:
      requestBody:
        content:
          not a media type:
            schema: {type: string}
      responses:
        "200":
          content:
            application/json:
              schema: {type: string}
    GET:
      responses:
        "500": {}
`)
	baseline := mustNode(t, `
openapi: 3.0.0
paths:
  /x:
    get:
      requestBody:
        content:
          not a media type:
            schema: {type: string}
      responses:
        "200":
          content:
            application/json:
              schema: {type: string}
`)

	result, err := CompareWithOptions(
		WithCandidateNode(candidate),
		WithBaselineNode(baseline),
		WithLogger(logger),
	)
	require.NoError(t, err)
	assert.True(t, result.IsEqual)
	assert.Equal(t, []string{"get /x"}, routeNames(result.UnchangedRoutes))

	out := buf.String()
	assert.Contains(t, out, "unexpected media type")
	assert.Contains(t, out, `mediaType="not a media type"`)
	assert.NotContains(t, out, "mediaType=application/json")
	assert.Contains(t, out, "duplicate method key ignored")
	assert.Contains(t, out, "key=GET")
	assert.Contains(t, out, "using=get")
}

func TestDifferCompareParsed(t *testing.T) {
	d := New()
	_, err := d.CompareParsed(nil, nil)
	assert.Error(t, err)

	result, err := d.CompareFiles("../testdata/petstore-baseline.yaml", "../testdata/petstore-baseline.json")
	require.NoError(t, err)
	assert.True(t, result.IsEqual)
}
