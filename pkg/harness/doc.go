// Package harness compares two implementations of the same function: it
// verifies they produce equivalent outputs over a fixed input set, measures
// them across repeated interleaved trials, and prints a statistical and
// visual comparison.
//
// A trial times one full pass over the inputs per candidate. Which candidate
// runs first alternates between trials so ordering effects (cache warmth,
// thermal throttling, scheduling) cancel out instead of always favoring one
// side. All phases run strictly sequentially on one goroutine; concurrent
// trials would corrupt wall-clock attribution.
//
// Candidates may complete asynchronously by returning a channel, an Awaiter,
// or a zero-argument thunk; the harness waits for completion inside the
// timed region.
package harness
