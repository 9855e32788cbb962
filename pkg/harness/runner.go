package harness

import (
	"fmt"
	"math/rand"
	"time"
)

// Run executes the full protocol: verification (unless skipped), warmup, the
// alternating benchmark trials, and the printed report. Candidate panics are
// not recovered; a broken candidate aborts the run.
func (b *Benchmark) Run(opts Options) *Result {
	o := opts.withDefaults()

	fmt.Fprintf(o.Out, "\n=== Benchmark: %s ===\n", b.Name)

	verified := false
	if !o.SkipVerify {
		verified = b.Verify(o.Out)
	}

	b.warmup(o.Warmup, rand.New(rand.NewSource(o.Seed)))

	res := b.measure(o.Trials)
	res.Verified = verified

	res.Report(o.Out)
	return res
}

// warmup stabilizes adaptive runtime behavior before measurement by invoking
// both candidates on pseudo-randomly selected inputs, discarding results.
// The generator is owned, not process-global, so runs are reproducible.
func (b *Benchmark) warmup(iterations int, rng *rand.Rand) {
	if len(b.Inputs) == 0 {
		return
	}
	for i := 0; i < iterations; i++ {
		input := b.Inputs[rng.Intn(len(b.Inputs))]
		invoke(b.A.Fn, input)
		invoke(b.B.Fn, input)
	}
}

// measure runs the timed trials. Which candidate goes first alternates on
// even and odd trial indices to cancel ordering bias (cache warmth, thermal
// drift, scheduling); the two elapsed durations are attributed back to their
// candidate by identity, never by slot.
func (b *Benchmark) measure(trials int) *Result {
	res := &Result{
		Benchmark: b,
		Trials:    trials,
		SamplesA:  make([]float64, 0, trials),
		SamplesB:  make([]float64, 0, trials),
	}

	for trial := 0; trial < trials; trial++ {
		var elapsedA, elapsedB float64
		if trial%2 == 0 {
			elapsedA = b.timePass(b.A.Fn)
			elapsedB = b.timePass(b.B.Fn)
		} else {
			elapsedB = b.timePass(b.B.Fn)
			elapsedA = b.timePass(b.A.Fn)
		}
		res.SamplesA = append(res.SamplesA, elapsedA)
		res.SamplesB = append(res.SamplesB, elapsedB)
	}

	return res
}

// timePass runs one candidate over the whole input sequence and returns the
// elapsed wall time in milliseconds.
func (b *Benchmark) timePass(fn Func) float64 {
	start := time.Now()
	for _, input := range b.Inputs {
		invoke(fn, input)
	}
	return float64(time.Since(start).Nanoseconds()) / 1e6
}
