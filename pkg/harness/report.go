package harness

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Report prints the comparison table and the timing distribution for a
// completed run. Columns size themselves to the longest value via tabwriter.
func (r *Result) Report(out io.Writer) {
	sa := Summarize(r.SamplesA, r.Ops())
	sb := Summarize(r.SamplesB, r.Ops())

	fmt.Fprintf(out, "\n%d trials × %d inputs per pass\n\n", r.Trials, len(r.Benchmark.Inputs))

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "METRIC\t%s\t%s\tCOMPARISON\n", r.Benchmark.A.Name, r.Benchmark.B.Name)

	type row struct {
		label          string
		a, b           float64
		format         func(float64) string
		higherIsBetter bool
	}
	rows := []row{
		{"Total Time", sa.Total, sb.Total, formatMillis, false},
		{"Ops/Second", sa.Ops, sb.Ops, formatOps, true},
		{"Min", sa.Min, sb.Min, formatMillis, false},
		{"Max", sa.Max, sb.Max, formatMillis, false},
		{"Median", sa.Median, sb.Median, formatMillis, false},
		{"Mean", sa.Mean, sb.Mean, formatMillis, false},
		{"Std Dev", sa.StdDev, sb.StdDev, formatMillis, false},
	}

	for _, rw := range rows {
		pct, factor := delta(rw.a, rw.b, rw.higherIsBetter)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			rw.label, rw.format(rw.a), rw.format(rw.b), formatComparison(pct, factor))
	}
	w.Flush()

	r.reportDistribution(out)
}
