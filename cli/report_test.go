package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportTwoRevisions(t *testing.T) {
	app := &App{logger: zerolog.Nop()}
	specs := testSpecs([]string{
		"0123456789abcdef0123456789abcdef01234567",
		"fedcba9876543210fedcba9876543210fedcba98",
	}, "/tmp/results")

	var out bytes.Buffer
	app.report(&out, specs)
	output := out.String()

	assert.Contains(t, output, "meld /tmp/results/gdb.sum.before /tmp/results/gdb.sum.after")
	assert.Contains(t, output, "kdiff3 /tmp/results/gdb.sum.before /tmp/results/gdb.sum.after")
	assert.Contains(t, output, "diff -u /tmp/results/gdb.sum.before /tmp/results/gdb.sum.after")
	assert.NotContains(t, output, "First and last")
	assert.NotContains(t, output, "gdb.log", "only summary files are compared")
}

func TestReportManyRevisions(t *testing.T) {
	revisions := []string{
		"0123456789abcdef0123456789abcdef01234567",
		"aaaabbbbccccddddeeeeffff0000111122223333",
		"fedcba9876543210fedcba9876543210fedcba98",
	}
	app := &App{logger: zerolog.Nop()}
	specs := testSpecs(revisions, "/tmp/results")

	var out bytes.Buffer
	app.report(&out, specs)
	output := out.String()

	// N-1 adjacent pairs plus the first/last pair, three tools each.
	require.Equal(t, 3, strings.Count(output, "meld "))
	assert.Contains(t, output, "First and last:")
	assert.Contains(t, output, "meld /tmp/results/gdb.sum.00-01234567 /tmp/results/gdb.sum.01-aaaabbbb")
	assert.Contains(t, output, "meld /tmp/results/gdb.sum.01-aaaabbbb /tmp/results/gdb.sum.02-fedcba98")
	assert.Contains(t, output, "meld /tmp/results/gdb.sum.00-01234567 /tmp/results/gdb.sum.02-fedcba98")
}

func TestCompareCommandsQuoting(t *testing.T) {
	cmds := compareCommands("/tmp/my results/gdb.sum.before", "/tmp/my results/gdb.sum.after")
	require.Len(t, cmds, 3)
	assert.Equal(t, "meld '/tmp/my results/gdb.sum.before' '/tmp/my results/gdb.sum.after'", cmds[0])
}
