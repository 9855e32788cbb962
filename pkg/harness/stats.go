package harness

import (
	"math"
	"sort"
)

// Stats holds the descriptive statistics of one candidate's timing samples.
// All durations are milliseconds; Ops is operations per second.
type Stats struct {
	Total  float64
	Min    float64
	Max    float64
	Median float64
	Mean   float64
	StdDev float64
	Ops    float64
}

// Summarize computes the statistics of a sample sequence. opCount is the
// total number of candidate invocations the sequence represents (trials
// times inputs); a zero total elapsed time yields infinite throughput.
func Summarize(samples []float64, opCount int) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	var total float64
	for _, v := range sorted {
		total += v
	}

	s := Stats{
		Total:  total,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: median(sorted),
		Mean:   total / float64(len(sorted)),
	}
	s.StdDev = stdDev(sorted, s.Mean)
	s.Ops = float64(opCount) / total * 1000 // total is ms

	return s
}

// median of a sorted sequence; the mean of the two middle elements when the
// length is even.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// stdDev is the sample standard deviation (n−1 denominator). Zero for fewer
// than two samples.
func stdDev(samples []float64, mean float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}

// quantile returns the q-th quantile (0..1) of a sorted sequence, with
// linear interpolation between the two nearest ranks.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := q * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// delta expresses how the second candidate compares to the first on one
// metric: percent difference and multiplicative speedup. For latency metrics
// lower is better; for throughput higherIsBetter inverts the convention.
// Division by a zero baseline yields infinities, rendered as an explicit
// Infinity token by the reporter.
func delta(a, b float64, higherIsBetter bool) (pct, factor float64) {
	if a == b {
		return 0, 1
	}
	if higherIsBetter {
		return (b - a) / a * 100, b / a
	}
	return (a - b) / a * 100, a / b
}
