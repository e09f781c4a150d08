package differ

import (
	"fmt"

	"github.com/erraggy/routediff/internal/options"
	"github.com/erraggy/routediff/node"
	"github.com/erraggy/routediff/parser"
)

// Option is a function that configures a comparison
type Option func(*compareConfig) error

// compareConfig holds configuration for a comparison
type compareConfig struct {
	// Input sources (exactly one candidate and one baseline must be set)
	candidateFilePath *string
	candidateParsed   *parser.ParseResult
	candidateNode     *node.Node
	baselineFilePath  *string
	baselineParsed    *parser.ParseResult
	baselineNode      *node.Node

	logger        parser.Logger
	breakingRules *BreakingRulesConfig
	userAgent     string
}

// CompareWithOptions compares two OpenAPI documents using functional options.
//
// Example:
//
//	result, err := differ.CompareWithOptions(
//	    differ.WithCandidateFilePath("api-v2.yaml"),
//	    differ.WithBaselineFilePath("api-v1.yaml"),
//	    differ.WithBreakingRules(differ.StrictRules()),
//	)
func CompareWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("differ: invalid options: %w", err)
	}

	d := &Differ{
		Logger:        cfg.logger,
		BreakingRules: cfg.breakingRules,
		UserAgent:     cfg.userAgent,
	}

	candidate, err := d.resolveInput(cfg.candidateFilePath, cfg.candidateParsed, cfg.candidateNode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse candidate: %w", err)
	}
	baseline, err := d.resolveInput(cfg.baselineFilePath, cfg.baselineParsed, cfg.baselineNode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse baseline: %w", err)
	}
	return d.Compare(candidate, baseline)
}

func (d *Differ) resolveInput(path *string, parsed *parser.ParseResult, doc *node.Node) (*node.Node, error) {
	switch {
	case path != nil:
		res, err := d.parse(*path)
		if err != nil {
			return nil, err
		}
		return res.Document, nil
	case parsed != nil:
		return parsed.Document, nil
	default:
		return doc, nil
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*compareConfig, error) {
	cfg := &compareConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify a candidate (use WithCandidateFilePath, WithCandidateParsed or WithCandidateNode)",
		"must specify exactly one candidate",
		cfg.candidateFilePath != nil, cfg.candidateParsed != nil, cfg.candidateNode != nil,
	); err != nil {
		return nil, err
	}
	if err := options.ValidateSingleInputSource(
		"must specify a baseline (use WithBaselineFilePath, WithBaselineParsed or WithBaselineNode)",
		"must specify exactly one baseline",
		cfg.baselineFilePath != nil, cfg.baselineParsed != nil, cfg.baselineNode != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithCandidateFilePath specifies a file path or URL as the candidate document
func WithCandidateFilePath(path string) Option {
	return func(cfg *compareConfig) error {
		cfg.candidateFilePath = &path
		return nil
	}
}

// WithCandidateParsed specifies a parsed document as the candidate
func WithCandidateParsed(result *parser.ParseResult) Option {
	return func(cfg *compareConfig) error {
		if result == nil {
			return fmt.Errorf("candidate parse result must not be nil")
		}
		cfg.candidateParsed = result
		return nil
	}
}

// WithCandidateNode specifies an in-memory document as the candidate
func WithCandidateNode(doc *node.Node) Option {
	return func(cfg *compareConfig) error {
		if doc == nil {
			return fmt.Errorf("candidate document must not be nil")
		}
		cfg.candidateNode = doc
		return nil
	}
}

// WithBaselineFilePath specifies a file path or URL as the baseline document
func WithBaselineFilePath(path string) Option {
	return func(cfg *compareConfig) error {
		cfg.baselineFilePath = &path
		return nil
	}
}

// WithBaselineParsed specifies a parsed document as the baseline
func WithBaselineParsed(result *parser.ParseResult) Option {
	return func(cfg *compareConfig) error {
		if result == nil {
			return fmt.Errorf("baseline parse result must not be nil")
		}
		cfg.baselineParsed = result
		return nil
	}
}

// WithBaselineNode specifies an in-memory document as the baseline
func WithBaselineNode(doc *node.Node) Option {
	return func(cfg *compareConfig) error {
		if doc == nil {
			return fmt.Errorf("baseline document must not be nil")
		}
		cfg.baselineNode = doc
		return nil
	}
}

// WithLogger sets the logger for debug events
// Default: none
func WithLogger(l parser.Logger) Option {
	return func(cfg *compareConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithBreakingRules configures the severity of each kind of change
// Default: DefaultRules()
func WithBreakingRules(rules *BreakingRulesConfig) Option {
	return func(cfg *compareConfig) error {
		cfg.breakingRules = rules
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "" (uses parser default)
func WithUserAgent(ua string) Option {
	return func(cfg *compareConfig) error {
		cfg.userAgent = ua
		return nil
	}
}
