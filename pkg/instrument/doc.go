// Package instrument adds Prometheus metrics and OpenTelemetry tracing to
// sigil signal graphs.
//
// The core library is pull-based and hook-free, so instrumentation wraps
// at the boundary: a wrapped signal or derived view counts and times the
// operations it forwards, and still satisfies the Source capability so it
// composes into graphs like the value it wraps.
//
//	m := instrument.NewMetrics(instrument.WithNamespace("myapp"))
//	temp := instrument.NewSignal(m, "temp", sigil.NewSignal(21.5))
//	mean := instrument.NewDerived(m, "mean", sigil.Derive(temp, average))
//
//	td := instrument.TraceDerived("mean", derived)
//	value := td.Get(ctx) // opens a span when the read recomputes
package instrument
