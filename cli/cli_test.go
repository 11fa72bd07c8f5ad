package cli

import (
	"reflect"
	"testing"
)

func TestResultSuffixes(t *testing.T) {
	tests := []struct {
		name      string
		revisions []string
		want      []string
	}{
		{
			name: "two revisions use before/after",
			revisions: []string{
				"0123456789abcdef0123456789abcdef01234567",
				"fedcba9876543210fedcba9876543210fedcba98",
			},
			want: []string{"before", "after"},
		},
		{
			name: "more than two use index and short id",
			revisions: []string{
				"0123456789abcdef0123456789abcdef01234567",
				"aaaabbbbccccddddeeeeffff0000111122223333",
				"fedcba9876543210fedcba9876543210fedcba98",
			},
			want: []string{"00-01234567", "01-aaaabbbb", "02-fedcba98"},
		},
		{
			name: "duplicate commits still get distinct suffixes",
			revisions: []string{
				"0123456789abcdef0123456789abcdef01234567",
				"0123456789abcdef0123456789abcdef01234567",
				"0123456789abcdef0123456789abcdef01234567",
			},
			want: []string{"00-01234567", "01-01234567", "02-01234567"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultSuffixes(tt.revisions)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("resultSuffixes() = %v, want %v", got, tt.want)
			}

			seen := map[string]bool{}
			for _, suffix := range got {
				if seen[suffix] {
					t.Errorf("suffix %q collides within run", suffix)
				}
				seen[suffix] = true
			}
		})
	}
}

func TestRevisionLabels(t *testing.T) {
	two := revisionLabels([]string{"aaaa", "bbbb"})
	if !reflect.DeepEqual(two, []string{"A", "B"}) {
		t.Errorf("revisionLabels() = %v, want [A B]", two)
	}

	four := revisionLabels([]string{"a", "b", "c", "d"})
	if !reflect.DeepEqual(four, []string{"00", "01", "02", "03"}) {
		t.Errorf("revisionLabels() = %v, want [00 01 02 03]", four)
	}
}

func TestRuntestFlagValues(t *testing.T) {
	tests := []struct {
		name                  string
		n                     int
		global, before, after string
		want                  []string
	}{
		{
			name:   "global only",
			n:      2,
			global: "--directory=gdb.python",
			want:   []string{"--directory=gdb.python", "--directory=gdb.python"},
		},
		{
			name:   "per-side overrides",
			n:      2,
			global: "--directory=gdb.python",
			before: "--directory=gdb.base",
			after:  "--directory=gdb.threads",
			want:   []string{"--directory=gdb.base", "--directory=gdb.threads"},
		},
		{
			name:   "overrides apply to endpoints of a range",
			n:      4,
			global: "g",
			before: "b",
			after:  "a",
			want:   []string{"b", "g", "g", "a"},
		},
		{
			name: "empty",
			n:    0,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runtestFlagValues(tt.n, tt.global, tt.before, tt.after)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("runtestFlagValues() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShortRevision(t *testing.T) {
	if got := shortRevision("0123456789abcdef0123456789abcdef01234567"); got != "01234567" {
		t.Errorf("shortRevision() = %q, want %q", got, "01234567")
	}
	if got := shortRevision("v1"); got != "v1" {
		t.Errorf("shortRevision() = %q, want %q", got, "v1")
	}
}
