package cli

// This file contains the result reporter that prints ready-to-paste
// diff-tool invocations once all revisions have been tested. No diffing
// happens here; the operator picks a tool and runs it by hand.

import (
	"fmt"
	"io"

	"al.essio.dev/pkg/shellescape"
	"github.com/gdbcheck/gdbcheck/model"
)

func compareCommands(before, after string) []string {
	pair := shellescape.QuoteCommand([]string{before, after})
	return []string{
		"meld " + pair,
		"kdiff3 " + pair,
		"diff -u " + pair,
	}
}

// report prints comparison commands for each adjacent pair of summary
// files, and for the first/last pair when more than two revisions were
// tested.
func (a *App) report(out io.Writer, specs []model.Spec) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "You can run one of these commands to view differences in test results.")

	printPair := func(before, after model.Spec) {
		fmt.Fprintln(out)
		for _, cmd := range compareCommands(before.SumFile(), after.SumFile()) {
			fmt.Fprintf(out, "  %s\n", cmd)
		}
	}

	for i := 0; i+1 < len(specs); i++ {
		printPair(specs[i], specs[i+1])
	}

	if len(specs) > 2 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "First and last:")
		printPair(specs[0], specs[len(specs)-1])
	}
}
