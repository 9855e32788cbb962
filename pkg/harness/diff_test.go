package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactDiff_MiddleChange(t *testing.T) {
	prefix := strings.Repeat("a", 50)
	suffix := strings.Repeat("z", 30)
	a := prefix + "ONE" + suffix
	b := prefix + "TWO" + suffix

	d := compactDiff(a, b)

	assert.Equal(t, 50, d.Prefix)
	assert.Equal(t, 30, d.Suffix)
	assert.Equal(t, "ONE", d.MidA)
	assert.Equal(t, "TWO", d.MidB)
}

func TestCompactDiff_NoOverlap(t *testing.T) {
	// "aaa" vs "aa": the suffix may not re-count bytes claimed by the prefix.
	d := compactDiff("aaa", "aa")
	assert.Equal(t, 2, d.Prefix)
	assert.Equal(t, 0, d.Suffix)
	assert.Equal(t, "a", d.MidA)
	assert.Equal(t, "", d.MidB)
}

func TestCompactDiff_Identical(t *testing.T) {
	d := compactDiff("same", "same")
	assert.Equal(t, 4, d.Prefix)
	assert.Empty(t, d.MidA)
	assert.Empty(t, d.MidB)
}

func TestCompactDiff_CompletelyDifferent(t *testing.T) {
	d := compactDiff("abc", "xyz")
	assert.Equal(t, 0, d.Prefix)
	assert.Equal(t, 0, d.Suffix)
	assert.Equal(t, "abc", d.MidA)
	assert.Equal(t, "xyz", d.MidB)
}

func TestClipSegment_CapsAndEscapes(t *testing.T) {
	long := strings.Repeat("x", diffSegmentMax+50)
	clipped := clipSegment(long)
	assert.Equal(t, diffSegmentMax+len("…"), len(clipped))
	assert.True(t, strings.HasSuffix(clipped, "…"))

	assert.Equal(t, `line1\nline2`, clipSegment("line1\nline2"))
}

func TestTextDiff_Render(t *testing.T) {
	d := compactDiff("prefix-A-suffix", "prefix-B-suffix")
	out := d.render("Original", "Optimized")

	assert.Contains(t, out, "common prefix: 7 chars")
	assert.Contains(t, out, "common suffix: 7 chars")
	assert.Contains(t, out, "Original: A")
	assert.Contains(t, out, "Optimized: B")
}
