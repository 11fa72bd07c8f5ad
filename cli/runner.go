package cli

// This file contains the external process runner used for every mutating
// command in the pipeline.

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"al.essio.dev/pkg/shellescape"
	"github.com/rs/zerolog"
)

// Runner executes external command lines through the platform shell. In
// dry-run mode commands are printed to out instead of being executed.
type Runner struct {
	logger zerolog.Logger
	dryRun bool
	out    io.Writer
}

func newRunner(logger zerolog.Logger, dryRun bool, out io.Writer) *Runner {
	return &Runner{
		logger: logger,
		dryRun: dryRun,
		out:    out,
	}
}

// Run executes argv joined into a single shell line. With check set, a
// non-zero exit aborts the run. Without it the exit code is logged and nil
// is returned; test harnesses legitimately exit non-zero when tests fail.
func (r *Runner) Run(check bool, argv ...string) error {
	line := shellescape.QuoteCommand(argv)

	if r.dryRun {
		fmt.Fprintln(r.out, line)
		return nil
	}

	r.logger.Debug().Str("command", line).Msg("Executing")

	cmd := exec.Command("sh", "-c", line)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && !check {
			r.logger.Info().
				Int("exit_code", exitErr.ExitCode()).
				Str("command", argv[0]).
				Msg("Command exited non-zero, continuing")
			return nil
		}
		return fmt.Errorf("command %q failed: %w", line, err)
	}

	return nil
}
