package cli

// This file contains Git integration utilities for resolving references
// and retrieving commit metadata.

import (
	"fmt"
	"os/exec"
	"strings"
)

// resolveRevision turns a user-supplied reference (branch, tag, short
// hash) into a canonical sha1.
func (a *App) resolveRevision(source, ref string) (string, error) {
	cmd := exec.Command("git", "-C", source, "rev-parse", ref)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", ref, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// commitSummary returns the one-line author and subject text for a commit.
func (a *App) commitSummary(source, sha1 string) (string, error) {
	cmd := exec.Command("git", "-C", source, "log", "--format=%aN  %s", "-n", "1", sha1)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get summary of %s: %w", shortRevision(sha1), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// revList returns every commit in before..after, oldest first. The before
// endpoint itself is not included.
func (a *App) revList(source, before, after string) ([]string, error) {
	cmd := exec.Command("git", "-C", source, "rev-list", "--reverse", before+".."+after)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list commits in %s..%s: %w",
			shortRevision(before), shortRevision(after), err)
	}
	return strings.Fields(string(output)), nil
}
