package harness

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_TableContents(t *testing.T) {
	fn := func(input any) any { return input }
	b := New("table", ints(1, 2), fn, fn)
	b.A.Name = "Baseline"
	b.B.Name = "Tuned"

	res := &Result{
		Benchmark: b,
		Trials:    2,
		SamplesA:  []float64{10, 10},
		SamplesB:  []float64{5, 5},
	}

	var buf bytes.Buffer
	res.Report(&buf)
	out := buf.String()

	assert.Contains(t, out, "2 trials × 2 inputs per pass")
	assert.Contains(t, out, "METRIC")
	assert.Contains(t, out, "Baseline")
	assert.Contains(t, out, "Tuned")
	for _, label := range []string{"Total Time", "Ops/Second", "Min", "Max", "Median", "Mean", "Std Dev"} {
		assert.Contains(t, out, label)
	}

	// Total: 20ms vs 10ms → 50% faster, 2x.
	assert.Contains(t, out, "50.0% faster (2.00x)")
}

func TestReport_NoDifference(t *testing.T) {
	fn := func(input any) any { return input }
	b := New("same", ints(1), fn, fn)

	res := &Result{
		Benchmark: b,
		Trials:    2,
		SamplesA:  []float64{3, 3},
		SamplesB:  []float64{3, 3},
	}

	var buf bytes.Buffer
	res.Report(&buf)
	assert.Contains(t, buf.String(), "no difference")
}

func TestReport_ColumnsAlignForLongNames(t *testing.T) {
	fn := func(input any) any { return input }
	b := New("align", ints(1), fn, fn)
	b.A.Name = "AVeryLongImplementationName"

	res := &Result{
		Benchmark: b,
		Trials:    1,
		SamplesA:  []float64{1},
		SamplesB:  []float64{2},
	}

	var buf bytes.Buffer
	res.Report(&buf)

	// The header row must be at least as wide as the long name plus its
	// following column.
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "METRIC") {
			assert.Greater(t, len(line), len("AVeryLongImplementationName"))
		}
	}
}
