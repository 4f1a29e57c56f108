package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"arblint/internal/dart"
	"arblint/internal/diag"
	"arblint/internal/engine"
	"arblint/internal/logging"
	"arblint/internal/output"
)

var (
	analyzeRoot   string
	analyzeFormat string
	analyzeJobs   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [unit.json ...]",
	Short: "Analyze serialized compilation units for unlocalized strings",
	Long: `Analyze resolved compilation units exported by the host toolchain.

Each argument is a JSON file holding one serialized unit (the resolved
AST slice plus file text). With no arguments, a single unit is read from
stdin. Diagnostics from all units are merged, sorted, and rendered as
colored text or as the protocol's JSON result shape.

Exit status is 1 when unlocalized strings were found, 2 on operational
errors.

Examples:
  arblint analyze --root . build/units/main.json
  arblint analyze --root ~/app --format json build/units/*.json
  dart run l10n_export lib/main.dart | arblint analyze --root .`,
	Run: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRoot, "root", ".", "Package root containing l10n.yaml and arblint.yaml")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "text", "Output format (text, json)")
	analyzeCmd.Flags().IntVar(&analyzeJobs, "jobs", 0, "Max units analyzed in parallel (default: GOMAXPROCS)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	log := newLogger(logging.FormatHuman)

	root, err := filepath.Abs(analyzeRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving root: %v\n", err)
		os.Exit(2)
	}

	units := len(args)
	var diags []diag.Diagnostic
	if len(args) == 0 {
		units = 1
		diags, err = analyzeStdin(log, root, os.Stdin)
	} else {
		diags, err = analyzeFiles(log, root, args, analyzeJobs)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	output.Sort(diags)
	switch analyzeFormat {
	case "json":
		if err := output.JSON(os.Stdout, diags); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			os.Exit(2)
		}
	case "text":
		output.Text(os.Stdout, diags)
		output.Summary(os.Stdout, units, len(diags))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", analyzeFormat)
		os.Exit(2)
	}

	if len(diags) > 0 {
		os.Exit(1)
	}
}

func analyzeStdin(log zerolog.Logger, root string, r io.Reader) ([]diag.Diagnostic, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read unit from stdin: %w", err)
	}
	return analyzeUnit(engine.New(log), log, root, data, "stdin")
}

// analyzeFiles runs the engine over unit files, distinct files in
// parallel. Results keep argument order until the caller's final sort.
func analyzeFiles(log zerolog.Logger, root string, paths []string, jobs int) ([]diag.Diagnostic, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	eng := engine.New(log)
	results := make([][]diag.Diagnostic, len(paths))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read unit %s: %w", path, err)
			}
			diags, err := analyzeUnit(eng, log, root, data, path)
			if err != nil {
				return err
			}
			results[i] = diags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []diag.Diagnostic
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// analyzeUnit decodes and analyzes one serialized unit. A failed pass
// skips the unit with a warning instead of aborting the whole run,
// matching the serve protocol's handling.
func analyzeUnit(eng *engine.Engine, log zerolog.Logger, root string, data []byte, name string) ([]diag.Diagnostic, error) {
	unit, err := dart.DecodeUnit(data)
	if err != nil {
		return nil, fmt.Errorf("decode unit %s: %w", name, err)
	}

	diags, err := eng.Analyze(root, unit)
	if err != nil {
		var pe *engine.PassError
		if !errors.As(err, &pe) {
			return nil, err
		}
		log.Warn().Str("file", pe.File).Str("cause", pe.Cause).Msg("analysis pass failed; unit skipped")
		return nil, nil
	}
	return diags, nil
}
