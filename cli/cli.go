package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/gdbcheck/gdbcheck/model"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const AppName = "gdb-check"

type App struct {
	logger zerolog.Logger
	cli    *cli.App
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger: logger,
		cli: &cli.App{
			Name:      AppName,
			Usage:     "Build and test two revisions of GDB and collect the results for diffing",
			ArgsUsage: "<before-ref> <after-ref>",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "jobs",
					Aliases: []string{"j"},
					Usage:   "-j value to pass to make when building",
					Value:   1,
				},
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"d"},
					Usage:   "Print the commands that would be run without executing them",
				},
				&cli.StringFlag{
					Name:  "source",
					Usage: "Git worktree to check revisions out in",
					Value: ".",
				},
				&cli.StringFlag{
					Name:  "build",
					Usage: "Directory passed to make -C",
					Value: "..",
				},
				&cli.StringFlag{
					Name:  "results",
					Usage: "Directory to collect result files in (default: a fresh temporary directory)",
				},
				&cli.StringFlag{
					Name:  "runtest-flags",
					Usage: "RUNTESTFLAGS value passed to make check",
					Value: "--directory=gdb.python",
				},
				&cli.StringFlag{
					Name:  "before-flags",
					Usage: "RUNTESTFLAGS override for the first tested revision",
				},
				&cli.StringFlag{
					Name:  "after-flags",
					Usage: "RUNTESTFLAGS override for the last tested revision",
				},
				&cli.StringSliceFlag{
					Name:    "test",
					Aliases: []string{"t"},
					Usage:   "Test name appended to RUNTESTFLAGS (can be specified multiple times)",
				},
				&cli.BoolFlag{
					Name:  "all-commits",
					Usage: "Test every commit between the two references, oldest first",
				},
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "Enable verbose (debug) logging",
				},
			},
			Before: func(ctx *cli.Context) error {
				if ctx.Bool("verbose") {
					zerolog.SetGlobalLevel(zerolog.DebugLevel)
				}
				return nil
			},
		},
	}
	app.cli.Action = app.check
	return app
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit[:8], date)
	}
}

func (a *App) check(ctx *cli.Context) error {
	startTime := time.Now()

	if ctx.NArg() != 2 {
		return cli.Exit(fmt.Sprintf("usage: %s [options] <before-ref> <after-ref>", AppName), 2)
	}

	source := ctx.String("source")
	dryRun := ctx.Bool("dry-run")

	// Resolve both endpoints up front; if either fails, nothing has been
	// touched yet and we can exit cleanly.
	before, err := a.resolveRevision(source, ctx.Args().Get(0))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	after, err := a.resolveRevision(source, ctx.Args().Get(1))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	revisions := []string{before, after}
	if ctx.Bool("all-commits") {
		between, err := a.revList(source, before, after)
		if err != nil {
			return err
		}
		// The before endpoint is the baseline; rev-list excludes it.
		revisions = append([]string{before}, between...)
	}

	summaries := make([]string, len(revisions))
	for i, sha1 := range revisions {
		summary, err := a.commitSummary(source, sha1)
		if err != nil {
			return err
		}
		summaries[i] = summary
	}

	labels := revisionLabels(revisions)
	for i, sha1 := range revisions {
		fmt.Printf("%s: %s  %s\n", labels[i], shortRevision(sha1), summaries[i])
	}

	resultsDir, err := a.prepareResultsDir(ctx.String("results"), dryRun)
	if err != nil {
		return err
	}

	suffixes := resultSuffixes(revisions)
	runtestFlags := runtestFlagValues(len(revisions),
		ctx.String("runtest-flags"), ctx.String("before-flags"), ctx.String("after-flags"))
	specs := make([]model.Spec, len(revisions))
	for i, sha1 := range revisions {
		specs[i] = model.Spec{
			Source:       source,
			Build:        ctx.String("build"),
			Results:      resultsDir,
			Revision:     sha1,
			Jobs:         ctx.Int("jobs"),
			RuntestFlags: runtestFlags[i],
			Tests:        ctx.StringSlice("test"),
			Suffix:       suffixes[i],
		}
	}

	runner := newRunner(a.logger, dryRun, os.Stdout)
	if err := a.runPipeline(runner, specs); err != nil {
		return err
	}

	a.report(os.Stdout, specs)

	if !dryRun {
		run := &model.Run{
			Timestamp: startTime,
			Duration:  time.Since(startTime),
			Args:      os.Args,
			Source:    source,
			Build:     ctx.String("build"),
		}
		for i, spec := range specs {
			run.Revisions = append(run.Revisions, model.Revision{
				Sha1:    spec.Revision,
				Summary: summaries[i],
				Suffix:  spec.Suffix,
				SumFile: spec.SumFile(),
				LogFile: spec.LogFile(),
			})
		}
		if err := a.recordRun(run, resultsDir); err != nil {
			a.logger.Warn().Err(err).Msg("Failed to record run metadata")
		}
	}

	return nil
}

// prepareResultsDir returns the directory result files are collected in.
// Dry runs never touch the filesystem; a placeholder is used when no
// directory was given.
func (a *App) prepareResultsDir(results string, dryRun bool) (string, error) {
	if dryRun {
		if results == "" {
			return "<results_dir>", nil
		}
		return results, nil
	}
	if results == "" {
		dir, err := os.MkdirTemp("", "gdb-check")
		if err != nil {
			return "", fmt.Errorf("failed to create results directory: %w", err)
		}
		a.logger.Info().Str("dir", dir).Msg("Collecting results in temporary directory")
		return dir, nil
	}
	if err := os.MkdirAll(results, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}
	return results, nil
}

func shortRevision(sha1 string) string {
	if len(sha1) > 8 {
		return sha1[:8]
	}
	return sha1
}

// revisionLabels returns the display labels printed next to the resolved
// revisions: A/B for the common two-revision case, the execution index
// otherwise.
func revisionLabels(revisions []string) []string {
	if len(revisions) == 2 {
		return []string{"A", "B"}
	}
	labels := make([]string, len(revisions))
	for i := range revisions {
		labels[i] = fmt.Sprintf("%02d", i)
	}
	return labels
}

// runtestFlagValues returns the per-revision RUNTESTFLAGS base value: the
// global value everywhere, with the first and last revisions overridden
// when a per-side value was given.
func runtestFlagValues(n int, global, before, after string) []string {
	values := make([]string, n)
	for i := range values {
		values[i] = global
	}
	if n == 0 {
		return values
	}
	if before != "" {
		values[0] = before
	}
	if after != "" {
		values[n-1] = after
	}
	return values
}

// resultSuffixes returns the result-file suffix for each revision:
// before/after for the two-revision case, a zero-padded index plus the
// short revision id otherwise. Indexed suffixes sort in execution order
// and cannot collide even if a commit appears twice.
func resultSuffixes(revisions []string) []string {
	if len(revisions) == 2 {
		return []string{"before", "after"}
	}
	suffixes := make([]string, len(revisions))
	for i, sha1 := range revisions {
		suffixes[i] = fmt.Sprintf("%02d-%s", i, shortRevision(sha1))
	}
	return suffixes
}
