package sigtest

// Counter wraps a derive function and counts how many times it runs.
// It is not safe for concurrent use, matching the thread-confined model
// of the code it tests.
type Counter[V, O any] struct {
	fn    func(V) O
	calls int
}

// NewCounter creates a counter around fn.
func NewCounter[V, O any](fn func(V) O) *Counter[V, O] {
	return &Counter[V, O]{fn: fn}
}

// Fn returns the counting wrapper to pass to Derive.
func (c *Counter[V, O]) Fn() func(V) O {
	return func(v V) O {
		c.calls++
		return c.fn(v)
	}
}

// Calls returns how many times the wrapped function has run.
func (c *Counter[V, O]) Calls() int {
	return c.calls
}

// Reset zeroes the call count.
func (c *Counter[V, O]) Reset() {
	c.calls = 0
}

// Recorder wraps a derive function and records the input of every run.
type Recorder[V, O any] struct {
	fn   func(V) O
	args []V
}

// NewRecorder creates a recorder around fn.
func NewRecorder[V, O any](fn func(V) O) *Recorder[V, O] {
	return &Recorder[V, O]{fn: fn}
}

// Fn returns the recording wrapper to pass to Derive.
func (r *Recorder[V, O]) Fn() func(V) O {
	return func(v V) O {
		r.args = append(r.args, v)
		return r.fn(v)
	}
}

// Calls returns how many times the wrapped function has run.
func (r *Recorder[V, O]) Calls() int {
	return len(r.args)
}

// Args returns every input the function was computed against, in order.
func (r *Recorder[V, O]) Args() []V {
	return r.args
}
