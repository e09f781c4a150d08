package differ

import (
	"fmt"

	"github.com/erraggy/routediff/internal/semver"
	"github.com/erraggy/routediff/node"
	"github.com/erraggy/routediff/oaserrors"
	"github.com/erraggy/routediff/parser"
)

// Differ compares OpenAPI documents route by route.
type Differ struct {
	// Logger receives debug events. Nil discards them.
	Logger parser.Logger
	// BreakingRules configures the severity of each kind of change.
	// When nil, default rules are used.
	BreakingRules *BreakingRulesConfig
	// UserAgent is the User-Agent string used when fetching URLs.
	// Empty means the parser default.
	UserAgent string
}

// New creates a new Differ instance with default settings
func New() *Differ {
	return &Differ{}
}

// Compare compares a candidate document with a baseline document. Both must
// be objects with a string "openapi" (or "swagger") field of the same major
// version; otherwise a *oaserrors.DocumentError or *oaserrors.VersionError
// is returned before anything is compared. An unresolvable "$ref" aborts
// the comparison with a *oaserrors.ReferenceError.
func Compare(candidate, baseline *node.Node) (*Result, error) {
	return New().Compare(candidate, baseline)
}

// CompareValues compares documents given as decoded JSON values, such as
// the output of json.Unmarshal into an any.
func CompareValues(candidate, baseline any) (*Result, error) {
	c, err := node.FromValue(candidate)
	if err != nil {
		return nil, fmt.Errorf("differ: candidate: %w", err)
	}
	b, err := node.FromValue(baseline)
	if err != nil {
		return nil, fmt.Errorf("differ: baseline: %w", err)
	}
	return Compare(c, b)
}

// Compare compares a candidate document with a baseline document.
func (d *Differ) Compare(candidate, baseline *node.Node) (*Result, error) {
	log := d.logger()

	cversion, bversion, err := checkDocuments(candidate, baseline)
	if err != nil {
		return nil, err
	}

	s := newSession(candidate, baseline, log)
	log.Debug("comparing documents",
		"candidateVersion", cversion,
		"baselineVersion", bversion,
		"candidateID", s.candidate.id,
		"baselineID", s.baseline.id,
	)

	if err := s.comparePaths(candidate.Get("paths"), baseline.Get("paths")); err != nil {
		return nil, err
	}

	result := &Result{
		IsEqual:          len(s.added) == 0 && len(s.deleted) == 0 && len(s.changed) == 0,
		UnchangedRoutes:  s.unchanged,
		AddedRoutes:      s.added,
		DeletedRoutes:    s.deleted,
		ChangedRoutes:    s.changed,
		CandidateVersion: cversion,
		BaselineVersion:  bversion,
	}
	classify(result, d.BreakingRules)

	log.Debug("compared documents",
		"unchanged", len(result.UnchangedRoutes),
		"added", len(result.AddedRoutes),
		"deleted", len(result.DeletedRoutes),
		"changed", len(result.ChangedRoutes),
		"schemaPaths", len(s.memo),
	)
	return result, nil
}

// CompareParsed compares two parsed documents.
func (d *Differ) CompareParsed(candidate, baseline *parser.ParseResult) (*Result, error) {
	if candidate == nil || baseline == nil {
		return nil, fmt.Errorf("differ: parse results must not be nil")
	}
	return d.Compare(candidate.Document, baseline.Document)
}

// CompareFiles parses and compares two documents given as file paths or URLs.
func (d *Differ) CompareFiles(candidatePath, baselinePath string) (*Result, error) {
	candidate, err := d.parse(candidatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse candidate: %w", err)
	}
	baseline, err := d.parse(baselinePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse baseline: %w", err)
	}
	return d.CompareParsed(candidate, baseline)
}

func (d *Differ) parse(path string) (*parser.ParseResult, error) {
	p := parser.New()
	p.Logger = d.Logger
	if d.UserAgent != "" {
		p.UserAgent = d.UserAgent
	}
	return p.Parse(path)
}

func (d *Differ) logger() parser.Logger {
	if d.Logger == nil {
		return parser.NopLogger{}
	}
	return d.Logger
}

// checkDocuments enforces the preconditions of a comparison and returns the
// two version strings.
func checkDocuments(candidate, baseline *node.Node) (string, string, error) {
	if !candidate.IsObject() {
		return "", "", &oaserrors.DocumentError{Role: oaserrors.RoleCandidate, Kind: candidate.Kind().String()}
	}
	if !baseline.IsObject() {
		return "", "", &oaserrors.DocumentError{Role: oaserrors.RoleBaseline, Kind: baseline.Kind().String()}
	}

	cversion, ok := parser.DocumentVersion(candidate)
	if !ok {
		return "", "", &oaserrors.VersionError{Kind: oaserrors.VersionMissing, Role: oaserrors.RoleCandidate}
	}
	bversion, ok := parser.DocumentVersion(baseline)
	if !ok {
		return "", "", &oaserrors.VersionError{Kind: oaserrors.VersionMissing, Role: oaserrors.RoleBaseline}
	}

	cmajor, err := semver.MajorVersion(cversion)
	if err != nil {
		return "", "", &oaserrors.VersionError{Kind: oaserrors.VersionInvalid, Role: oaserrors.RoleCandidate, CandidateVersion: cversion, Cause: err}
	}
	bmajor, err := semver.MajorVersion(bversion)
	if err != nil {
		return "", "", &oaserrors.VersionError{Kind: oaserrors.VersionInvalid, Role: oaserrors.RoleBaseline, BaselineVersion: bversion, Cause: err}
	}
	if cmajor != bmajor {
		return "", "", &oaserrors.VersionError{Kind: oaserrors.VersionMismatch, CandidateVersion: cversion, BaselineVersion: bversion}
	}
	return cversion, bversion, nil
}
