package harness

import (
	"io"
	"os"
)

// Func is a candidate implementation under comparison. It receives one input
// value and returns its result. A candidate may return a deferred result
// (a channel, an Awaiter, or a zero-argument thunk); the harness waits for
// completion before attributing elapsed time.
type Func func(input any) any

// Candidate pairs a display name with the function being measured.
type Candidate struct {
	Name string
	Fn   Func
}

// Benchmark is the fixed configuration for one comparison: a name, the input
// set replayed on every pass, and the two candidates. It is built once and
// never mutated by the harness.
type Benchmark struct {
	Name   string
	Inputs []any
	A, B   Candidate

	// Equal overrides the default equivalence check (canonical JSON forms
	// compared for exact equality) during verification.
	Equal func(x, y any) bool
}

// New builds a Benchmark with the default display names.
func New(name string, inputs []any, original, optimized Func) *Benchmark {
	return &Benchmark{
		Name:   name,
		Inputs: inputs,
		A:      Candidate{Name: "Original", Fn: original},
		B:      Candidate{Name: "Optimized", Fn: optimized},
	}
}

// Options controls a single Run. The zero value selects the defaults.
type Options struct {
	Warmup     int   // warmup iterations, default 100
	Trials     int   // measured trials, default 100
	Seed       int64 // warmup input selection seed, default 42
	SkipVerify bool  // skip the equivalence check before measuring
	Out        io.Writer
}

const (
	defaultWarmup = 100
	defaultTrials = 100
	defaultSeed   = 42
)

func (o Options) withDefaults() Options {
	if o.Warmup <= 0 {
		o.Warmup = defaultWarmup
	}
	if o.Trials <= 0 {
		o.Trials = defaultTrials
	}
	if o.Seed == 0 {
		o.Seed = defaultSeed
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	return o
}

// Result holds the raw timing samples of a completed run. SamplesA and
// SamplesB are per-trial pass durations in milliseconds, in trial order, and
// always have the same length (one entry per candidate per trial).
type Result struct {
	Benchmark *Benchmark
	Trials    int
	SamplesA  []float64
	SamplesB  []float64
	Verified  bool // verification phase ran and found no mismatch
}

// Ops returns the number of candidate invocations a full run represents,
// per candidate: trials times inputs.
func (r *Result) Ops() int {
	return r.Trials * len(r.Benchmark.Inputs)
}
