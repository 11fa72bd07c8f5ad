package model

import "time"

// Run records one complete comparison run. It is written as run.json into
// the results directory next to the collected files, so an operator coming
// back to a directory of result files can see how they were produced.
type Run struct {
	// Timestamp when the run started
	Timestamp time.Time `json:"timestamp"`
	// Duration of the whole run
	Duration time.Duration `json:"duration"`
	// Command-line arguments (including command name)
	Args []string `json:"args"`
	// Source is the git worktree revisions were checked out in
	Source string `json:"source"`
	// Build is the directory make was run in
	Build string `json:"build"`
	// Revisions lists the tested revisions in execution order
	Revisions []Revision `json:"revisions"`
}

// Revision is one tested revision within a run.
type Revision struct {
	// Sha1 is the resolved canonical id
	Sha1 string `json:"sha1"`
	// Summary is the author and subject line
	Summary string `json:"summary,omitempty"`
	// Suffix identifies the collected gdb.sum/gdb.log pair
	Suffix string `json:"suffix"`
	// SumFile and LogFile are the collected files
	SumFile string `json:"sum_file"`
	LogFile string `json:"log_file"`
}
