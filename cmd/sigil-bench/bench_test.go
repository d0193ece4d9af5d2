package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func runBench(t *testing.T, cmd *cobra.Command, args ...string) result {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.json")
	cmd.SetArgs(append(args, "--json", path))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading results: %v", err)
	}
	var results []result
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("parsing results: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	return results[0]
}

func TestChainCountsOnlyCycleRecomputes(t *testing.T) {
	r := runBench(t, chainCmd(), "--ops", "10", "--depth", "3")

	if r.Ops != 10 {
		t.Errorf("ops=%d, want 10", r.Ops)
	}
	// Each cycle invalidates the whole chain, so every level recomputes
	// once per cycle. The seeds at construction are not counted.
	if r.Recomputes != 30 {
		t.Errorf("recomputes=%d, want 30", r.Recomputes)
	}
}

func TestFanoutCountsOnlyCycleRecomputes(t *testing.T) {
	r := runBench(t, fanoutCmd(), "--ops", "5", "--count", "4")

	if r.Recomputes != 20 {
		t.Errorf("recomputes=%d, want 20", r.Recomputes)
	}
}

func TestPairCountsOnlyCycleRecomputes(t *testing.T) {
	r := runBench(t, pairCmd(), "--ops", "7")

	// Mutating either member invalidates the view, one recompute per cycle.
	if r.Recomputes != 7 {
		t.Errorf("recomputes=%d, want 7", r.Recomputes)
	}
}
