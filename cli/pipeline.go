package cli

// This file contains the sequential driver that takes each spec through
// checkout, build, test and result collection. Every revision is checked
// out into the one shared worktree, so the specs must run strictly in
// order.

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/gdbcheck/gdbcheck/model"
)

// abortWindow is how long a real run waits after printing the resolved
// revisions, so the operator can interrupt a comparison that doesn't make
// sense.
const abortWindow = 2 * time.Second

func (a *App) runPipeline(runner *Runner, specs []model.Spec) error {
	if !runner.dryRun {
		time.Sleep(abortWindow)
	}

	for _, spec := range specs {
		if err := a.testRevision(runner, spec); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) testRevision(runner *Runner, spec model.Spec) error {
	logger := a.logger.With().
		Str("revision", spec.ShortRevision()).
		Str("suffix", spec.Suffix).
		Logger()

	logger.Info().Msg("Checking out")
	if err := runner.Run(true, "git", "-C", spec.Source, "checkout", spec.Revision); err != nil {
		return err
	}

	logger.Info().Int("jobs", spec.Jobs).Msg("Building")
	if err := runner.Run(true, "make", "-C", spec.Build, "-j", strconv.Itoa(spec.Jobs)); err != nil {
		return err
	}

	logger.Info().Msg("Running tests")
	if err := runner.Run(false, "make", "-C", spec.Build, "check", "RUNTESTFLAGS="+spec.Runtest()); err != nil {
		return err
	}

	logger.Info().Str("dir", spec.Results).Msg("Copying results")
	if err := runner.Run(true, "cp", filepath.Join(spec.Build, "testsuite", "gdb.sum"), spec.SumFile()); err != nil {
		return err
	}
	return runner.Run(true, "cp", filepath.Join(spec.Build, "testsuite", "gdb.log"), spec.LogFile())
}
