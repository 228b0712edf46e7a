package main

import (
	"strings"
	"testing"

	"willcall/internal"
)

func TestRenderSummary(t *testing.T) {
	out := renderSummary([]internal.SourceSummary{
		{Label: "BPT", Path: "bpt.csv", Lines: 4, Accepted: 3, Rejected: 1},
		{Label: "BPT Season", Skipped: true},
	})
	for _, want := range []string{"BPT", "bpt.csv", "not provided"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
