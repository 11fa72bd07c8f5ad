package model

import (
	"path/filepath"
	"strings"
)

// Spec bundles every parameter needed to reproduce one build/test cycle
// for a single revision. A Spec is constructed once, before the pipeline
// starts, and is read-only from then on.
type Spec struct {
	// Source is the git worktree the revision is checked out into
	Source string
	// Build is the directory passed to make -C
	Build string
	// Results is the directory the collected result files are copied into
	Results string
	// Revision is the resolved canonical sha1
	Revision string
	// Jobs is the -j value passed to make
	Jobs int
	// RuntestFlags is the base RUNTESTFLAGS value for make check
	RuntestFlags string
	// Tests are explicit test names appended to RUNTESTFLAGS
	Tests []string
	// Suffix distinguishes this spec's result files within Results
	Suffix string
}

// ShortRevision returns the fixed-length revision prefix used for display
// and filenames.
func (s Spec) ShortRevision() string {
	if len(s.Revision) > 8 {
		return s.Revision[:8]
	}
	return s.Revision
}

// Runtest assembles the RUNTESTFLAGS value from the base flags and the
// explicit test names.
func (s Spec) Runtest() string {
	parts := make([]string, 0, len(s.Tests)+1)
	if s.RuntestFlags != "" {
		parts = append(parts, s.RuntestFlags)
	}
	parts = append(parts, s.Tests...)
	return strings.Join(parts, " ")
}

// SumFile returns the destination path for this spec's test summary.
func (s Spec) SumFile() string {
	return filepath.Join(s.Results, "gdb.sum."+s.Suffix)
}

// LogFile returns the destination path for this spec's test log.
func (s Spec) LogFile() string {
	return filepath.Join(s.Results, "gdb.log."+s.Suffix)
}
