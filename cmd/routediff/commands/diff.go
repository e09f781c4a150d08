package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/routediff/differ"
	"github.com/erraggy/routediff/internal/cliutil"
	"github.com/erraggy/routediff/parser"
)

// Values accepted by --fail-on
const (
	FailOnBreaking = "breaking"
	FailOnChanges  = "changes"
	FailOnNone     = "none"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	Format  string
	FailOn  string
	Rules   string
	Verbose bool
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.FailOn, "fail-on", FailOnBreaking, "exit with status 1 on: breaking, changes, or none")
	fs.StringVar(&flags.Rules, "rules", "default", "breaking change rules: default, strict, or lenient")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log loading and comparison details to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: routediff diff [flags] <candidate> <baseline>\n\n")
		cliutil.Writef(fs.Output(), "Compare the routes of a candidate OpenAPI document (the new version)\n")
		cliutil.Writef(fs.Output(), "with a baseline document (the previous version). Both may be files or URLs.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nSeverities (default rules):\n")
		cliutil.Writef(fs.Output(), "  critical  Deleted route\n")
		cliutil.Writef(fs.Output(), "  error     Deleted parameter, request body or response body\n")
		cliutil.Writef(fs.Output(), "  warning   Added parameter, deleted response header, any changed schema\n")
		cliutil.Writef(fs.Output(), "  info      Added route, body or response header\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  routediff diff api-v2.yaml api-v1.yaml\n")
		cliutil.Writef(fs.Output(), "  routediff diff --fail-on changes new.json old.json\n")
		cliutil.Writef(fs.Output(), "  routediff diff --format json api-v2.yaml api-v1.yaml | jq '.summary'\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Nothing matched --fail-on\n")
		cliutil.Writef(fs.Output(), "  1    Breaking changes (or any change with --fail-on changes)\n")
		cliutil.Writef(fs.Output(), "  2    The documents could not be loaded or compared\n")
	}

	return fs, flags
}

// diffReport is the structured output of the diff command.
type diffReport struct {
	differ.Result      `yaml:",inline"`
	Summary            differ.Summary `json:"summary" yaml:"summary"`
	HasBreakingChanges bool           `json:"hasBreakingChanges" yaml:"hasBreakingChanges"`
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	return RunDiff(args, os.Stdout, os.Stderr)
}

// RunDiff executes the diff command with explicit output streams. A
// comparison that matches --fail-on returns an *ExitCodeError.
func RunDiff(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupDiffFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two file paths or URLs")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	rules, err := differ.RulesByName(flags.Rules)
	if err != nil {
		return err
	}
	switch flags.FailOn {
	case FailOnBreaking, FailOnChanges, FailOnNone:
	default:
		return fmt.Errorf("invalid fail-on '%s'. Valid values: %s, %s, %s", flags.FailOn, FailOnBreaking, FailOnChanges, FailOnNone)
	}

	candidatePath, baselinePath := fs.Arg(0), fs.Arg(1)

	var logger parser.Logger = parser.NopLogger{}
	if flags.Verbose {
		logger = parser.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	candidate, err := parser.ParseWithOptions(parser.WithFilePath(candidatePath), parser.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("parsing candidate: %w", err)
	}
	baseline, err := parser.ParseWithOptions(parser.WithFilePath(baselinePath), parser.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("parsing baseline: %w", err)
	}

	result, err := differ.CompareWithOptions(
		differ.WithCandidateParsed(candidate),
		differ.WithBaselineParsed(baseline),
		differ.WithLogger(logger),
		differ.WithBreakingRules(rules),
	)
	if err != nil {
		return fmt.Errorf("comparing documents: %w", err)
	}

	if flags.Format == FormatText {
		renderText(stdout, candidate, baseline, result)
	} else {
		report := diffReport{
			Result:             *result,
			Summary:            result.Summary(),
			HasBreakingChanges: result.HasBreakingChanges(),
		}
		if err := OutputStructured(stdout, report, flags.Format); err != nil {
			return err
		}
	}

	if shouldFail(flags.FailOn, result) {
		return &ExitCodeError{Code: ExitChanges}
	}
	return nil
}

func shouldFail(failOn string, result *differ.Result) bool {
	switch failOn {
	case FailOnChanges:
		return !result.IsEqual
	case FailOnBreaking:
		return result.HasBreakingChanges()
	default:
		return false
	}
}
