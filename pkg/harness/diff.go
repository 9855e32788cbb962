package harness

import (
	"fmt"
	"strings"
)

// Mismatched values above this serialized size get a compact diff instead of
// being printed whole.
const diffThreshold = 1000

// Differing middle segments are capped at this many characters per side.
const diffSegmentMax = 120

// textDiff describes where two strings diverge: the length of their common
// prefix and suffix, and the differing middle of each.
type textDiff struct {
	Prefix int
	Suffix int
	MidA   string
	MidB   string
}

// compactDiff locates the longest common prefix and suffix of a and b. The
// suffix is searched only past the prefix so the two regions never overlap.
func compactDiff(a, b string) textDiff {
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	return textDiff{
		Prefix: prefix,
		Suffix: suffix,
		MidA:   a[prefix : len(a)-suffix],
		MidB:   b[prefix : len(b)-suffix],
	}
}

func (d textDiff) render(nameA, nameB string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "    common prefix: %d chars, common suffix: %d chars\n", d.Prefix, d.Suffix)
	fmt.Fprintf(&sb, "    %s: %s\n", nameA, clipSegment(d.MidA))
	fmt.Fprintf(&sb, "    %s: %s\n", nameB, clipSegment(d.MidB))
	return sb.String()
}

// clipSegment caps a differing segment for display and escapes embedded
// newlines so the diff stays one line per side.
func clipSegment(s string) string {
	clipped := false
	if len(s) > diffSegmentMax {
		s = s[:diffSegmentMax]
		clipped = true
	}
	s = strings.ReplaceAll(s, "\n", `\n`)
	if clipped {
		s += "…"
	}
	return s
}
