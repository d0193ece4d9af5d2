package sigil

import "testing"

// Integration tests for the generation-tracking protocol.
// These tests verify that Signal, Derived and Combine work together
// correctly across multi-level graphs.

func TestIntegrationPricingChain(t *testing.T) {
	// price -> taxedPrice -> discountedPrice

	price := NewSignal(100.0)
	taxRate := NewSignal(0.08)
	discount := NewSignal(0.1)

	taxedPrice := Derive2(price, taxRate, func(p, r float64) float64 {
		return p * (1 + r)
	})

	discountedPrice := Derive2(taxedPrice, discount, func(p, d float64) float64 {
		return p * (1 - d)
	})

	// Initial: 100 * 1.08 = 108, then 108 * 0.9 = 97.2
	if got := discountedPrice.Get(); got < 97.19 || got > 97.21 {
		t.Errorf("expected 97.2, got %f", got)
	}

	// Change base price. The intermediate view must be read for the
	// change to reach the second level.
	price.Set(200.0)
	_ = taxedPrice.Get()
	if got := discountedPrice.Get(); got < 194.39 || got > 194.41 {
		t.Errorf("expected 194.4, got %f", got)
	}

	// Change tax rate
	taxRate.Set(0.1)
	_ = taxedPrice.Get()
	if got := discountedPrice.Get(); got < 197.99 || got > 198.01 {
		t.Errorf("expected ~198, got %f", got)
	}

	// Change discount only: the second level is directly stale, no
	// intermediate read needed.
	discount.Set(0.5)
	if got := discountedPrice.Get(); got < 109.99 || got > 110.01 {
		t.Errorf("expected ~110, got %f", got)
	}
}

func TestIntegrationDiamond(t *testing.T) {
	// Diamond pattern:
	//         A
	//        / \
	//       B   C
	//        \ /
	//         D

	a := NewSignal(1)

	bComputations := 0
	b := Derive(a, func(n int) int {
		bComputations++
		return n * 2
	})

	cComputations := 0
	c := Derive(a, func(n int) int {
		cComputations++
		return n * 3
	})

	d := Derive2(b, c, func(x, y int) int { return x + y })

	// Initial: b=2, c=3, d=5; one computation each at construction.
	if d.Get() != 5 {
		t.Errorf("expected 5, got %d", d.Get())
	}
	if bComputations != 1 || cComputations != 1 {
		t.Errorf("expected 1 computation each, got b=%d c=%d", bComputations, cComputations)
	}

	// Mutate the root. D observes the output cells of B and C, which
	// only advance when B and C are read.
	a.Set(2)
	if d.Get() != 5 {
		t.Errorf("expected stale 5 before arms are read, got %d", d.Get())
	}

	// Reading one arm refreshes half the diamond.
	if b.Get() != 4 {
		t.Errorf("expected 4, got %d", b.Get())
	}
	if d.Get() != 7 { // fresh b=4 + stale c=3
		t.Errorf("expected 7 with one fresh arm, got %d", d.Get())
	}

	if c.Get() != 6 {
		t.Errorf("expected 6, got %d", c.Get())
	}
	if d.Get() != 10 {
		t.Errorf("expected 10, got %d", d.Get())
	}

	if bComputations != 2 || cComputations != 2 {
		t.Errorf("expected 2 computations each, got b=%d c=%d", bComputations, cComputations)
	}
}

func TestIntegrationGenerationsAreIndependent(t *testing.T) {
	// Each signal and each derived output cell counts its own mutations;
	// there is no global clock.
	a := NewSignal(0)
	b := NewSignal(0)

	for i := 0; i < 3; i++ {
		a.Set(i)
	}
	b.Set(9)

	if a.Generation() != 4 {
		t.Errorf("expected a at generation 4, got %d", a.Generation())
	}
	if b.Generation() != 2 {
		t.Errorf("expected b at generation 2, got %d", b.Generation())
	}
}

func TestIntegrationClosureState(t *testing.T) {
	// The derive function may capture state; it stays fixed for the
	// view's lifetime.
	factor := 10
	s := NewSignal(1)
	d := Derive(s, func(n int) int { return n * factor })

	if d.Get() != 10 {
		t.Errorf("expected 10, got %d", d.Get())
	}

	// Rebinding the captured variable is visible on the next recompute
	// (the function itself is immutable, not its captured environment).
	factor = 100
	s.Set(2)
	if d.Get() != 200 {
		t.Errorf("expected 200, got %d", d.Get())
	}
}
