package harness

import (
	"fmt"
	"io"
	"math"
	"sort"
)

const histBins = 30

// Nine density levels, blank through full block. Bin level is sqrt-scaled so
// the modal bin does not visually drown secondary modes.
var histRamp = []rune(" ▁▂▃▄▅▆▇█")

type histogram struct {
	counts   []int
	outliers int
	min, max float64 // of the sequence itself, not the shared range
}

// buildHistogram bins a sample sequence over the shared [lo, hi] range. A
// value equal to hi lands in the last bin; values beyond hi are outliers and
// stay out of the bins.
func buildHistogram(samples []float64, lo, hi float64) histogram {
	h := histogram{counts: make([]int, histBins)}
	if len(samples) == 0 {
		return h
	}
	h.min, h.max = samples[0], samples[0]

	span := hi - lo
	for _, v := range samples {
		if v < h.min {
			h.min = v
		}
		if v > h.max {
			h.max = v
		}
		if v > hi {
			h.outliers++
			continue
		}
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * histBins)
			if idx >= histBins {
				idx = histBins - 1
			}
		}
		h.counts[idx]++
	}
	return h
}

// histRange picks the shared visualization bounds for both sequences: the
// global minimum up to min(1.2 × the larger p99, global maximum), clipping
// extreme outliers while keeping real tail behavior visible.
func histRange(s1, s2 []float64) (lo, hi float64) {
	a := append([]float64(nil), s1...)
	b := append([]float64(nil), s2...)
	sort.Float64s(a)
	sort.Float64s(b)

	lo = a[0]
	if b[0] < lo {
		lo = b[0]
	}
	gmax := a[len(a)-1]
	if b[len(b)-1] > gmax {
		gmax = b[len(b)-1]
	}

	p99 := quantile(a, 0.99)
	if q := quantile(b, 0.99); q > p99 {
		p99 = q
	}

	hi = 1.2 * p99
	if gmax < hi {
		hi = gmax
	}
	return lo, hi
}

// glyphs renders one character per bin, scaled against the largest bin count
// across both histograms. Any nonempty bin shows at least the lowest
// nonblank glyph.
func (h histogram) glyphs(maxCount int) string {
	out := make([]rune, len(h.counts))
	for i := range out {
		out[i] = histRamp[0]
	}
	if maxCount == 0 {
		return string(out)
	}
	for i, c := range h.counts {
		if c == 0 {
			continue
		}
		level := int(math.Sqrt(float64(c)/float64(maxCount)) * float64(len(histRamp)-1))
		if level == 0 {
			level = 1
		}
		out[i] = histRamp[level]
	}
	return string(out)
}

// reportDistribution prints the side-by-side sample distributions.
func (r *Result) reportDistribution(out io.Writer) {
	if len(r.SamplesA) == 0 || len(r.SamplesB) == 0 {
		return
	}

	lo, hi := histRange(r.SamplesA, r.SamplesB)
	ha := buildHistogram(r.SamplesA, lo, hi)
	hb := buildHistogram(r.SamplesB, lo, hi)

	maxCount := 0
	for _, c := range ha.counts {
		if c > maxCount {
			maxCount = c
		}
	}
	for _, c := range hb.counts {
		if c > maxCount {
			maxCount = c
		}
	}

	fmt.Fprintf(out, "\nDistribution (%d bins, %s – %s):\n", histBins, formatMillis(lo), formatMillis(hi))

	width := len(r.Benchmark.A.Name)
	if len(r.Benchmark.B.Name) > width {
		width = len(r.Benchmark.B.Name)
	}
	writeHistLine(out, r.Benchmark.A.Name, width, ha, maxCount, len(r.SamplesA))
	writeHistLine(out, r.Benchmark.B.Name, width, hb, maxCount, len(r.SamplesB))
}

func writeHistLine(out io.Writer, name string, width int, h histogram, maxCount, n int) {
	fmt.Fprintf(out, "  %-*s %s %d samples", width, name, h.glyphs(maxCount), n)
	if h.outliers > 0 {
		fmt.Fprintf(out, " (%d outliers)", h.outliers)
	}
	fmt.Fprintf(out, " [%s–%s]\n", formatMillis(h.min), formatMillis(h.max))
}
