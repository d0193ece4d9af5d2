package sigtest

import "testing"

func TestCounterCounts(t *testing.T) {
	c := NewCounter(func(n int) int { return n * 2 })
	fn := c.Fn()

	if c.Calls() != 0 {
		t.Errorf("expected 0 calls before use, got %d", c.Calls())
	}

	if got := fn(3); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
	fn(4)

	if c.Calls() != 2 {
		t.Errorf("expected 2 calls, got %d", c.Calls())
	}

	c.Reset()
	if c.Calls() != 0 {
		t.Errorf("expected 0 calls after reset, got %d", c.Calls())
	}
}

func TestRecorderRecords(t *testing.T) {
	r := NewRecorder(func(s string) int { return len(s) })
	fn := r.Fn()

	fn("a")
	fn("bb")

	if r.Calls() != 2 {
		t.Errorf("expected 2 calls, got %d", r.Calls())
	}

	args := r.Args()
	if len(args) != 2 || args[0] != "a" || args[1] != "bb" {
		t.Errorf("unexpected args: %v", args)
	}
}
