package harness

import (
	"encoding/json"
	"fmt"
	"io"
)

// Verify invokes both candidates on every input and checks the outputs for
// equivalence. Mismatches are reported to out but do not stop the remaining
// inputs from being checked; the benchmark phase runs regardless. Returns
// true when every input matched.
func (b *Benchmark) Verify(out io.Writer) bool {
	fmt.Fprintf(out, "Verifying %s vs %s over %d inputs...\n", b.A.Name, b.B.Name, len(b.Inputs))

	failed := 0
	for i, input := range b.Inputs {
		ra := invoke(b.A.Fn, input)
		rb := invoke(b.B.Fn, input)

		var ok bool
		if b.Equal != nil {
			ok = b.Equal(ra, rb)
		} else {
			ok = canonical(ra) == canonical(rb)
		}
		if ok {
			continue
		}

		failed++
		fmt.Fprintf(out, "  ✗ input %d: results differ\n", i)
		sa, sb := canonical(ra), canonical(rb)
		if len(sa) <= diffThreshold && len(sb) <= diffThreshold {
			fmt.Fprintf(out, "    %s: %s\n", b.A.Name, sa)
			fmt.Fprintf(out, "    %s: %s\n", b.B.Name, sb)
		} else {
			fmt.Fprint(out, compactDiff(sa, sb).render(b.A.Name, b.B.Name))
		}
	}

	if failed > 0 {
		fmt.Fprintf(out, "Verification: %d/%d inputs match\n", len(b.Inputs)-failed, len(b.Inputs))
		return false
	}
	fmt.Fprintf(out, "Verification: all %d inputs match\n", len(b.Inputs))
	return true
}

// canonical serializes a value to its comparison form. Values that cannot be
// serialized degrade to their fmt representation rather than failing.
func canonical(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
