package main

import (
	"encoding/json"
	"sort"
	"strings"

	"benchduel/pkg/harness"
)

// builtinSuites returns the demo comparisons shipped with the binary. Each
// pits a naive implementation against a tuned one over a fixed input set.
func builtinSuites() map[string]func() *harness.Benchmark {
	return map[string]func() *harness.Benchmark{
		"concat":   concatSuite,
		"sort":     sortSuite,
		"json":     jsonSuite,
		"deferred": deferredSuite,
	}
}

func suiteNames() []string {
	names := make([]string, 0, len(builtinSuites()))
	for name := range builtinSuites() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// concatSuite: naive string concatenation vs strings.Builder.
func concatSuite() *harness.Benchmark {
	inputs := []any{
		wordList(10),
		wordList(50),
		wordList(200),
	}

	original := func(input any) any {
		s := ""
		for _, w := range input.([]string) {
			s += w
		}
		return s
	}
	optimized := func(input any) any {
		var b strings.Builder
		for _, w := range input.([]string) {
			b.WriteString(w)
		}
		return b.String()
	}

	return harness.New("concat", inputs, original, optimized)
}

func wordList(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word" + strings.Repeat("x", i%7)
	}
	return words
}

// sortSuite: insertion sort vs the standard library.
func sortSuite() *harness.Benchmark {
	inputs := []any{
		descending(50),
		descending(200),
		descending(500),
	}

	original := func(input any) any {
		vals := append([]int(nil), input.([]int)...)
		for i := 1; i < len(vals); i++ {
			for j := i; j > 0 && vals[j-1] > vals[j]; j-- {
				vals[j-1], vals[j] = vals[j], vals[j-1]
			}
		}
		return vals
	}
	optimized := func(input any) any {
		vals := append([]int(nil), input.([]int)...)
		sort.Ints(vals)
		return vals
	}

	return harness.New("sort", inputs, original, optimized)
}

func descending(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = n - i
	}
	return vals
}

// jsonSuite: per-call json.Marshal vs an encoder writing into a reused
// strings.Builder. Both produce identical encodings.
func jsonSuite() *harness.Benchmark {
	type record struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}
	inputs := []any{
		record{Name: "small", Count: 1, Tags: []string{"a"}},
		record{Name: "medium", Count: 42, Tags: wordList(20)},
		record{Name: "large", Count: 9000, Tags: wordList(100)},
	}

	original := func(input any) any {
		data, err := json.Marshal(input)
		if err != nil {
			panic(err)
		}
		return string(data)
	}
	optimized := func(input any) any {
		var b strings.Builder
		enc := json.NewEncoder(&b)
		if err := enc.Encode(input); err != nil {
			panic(err)
		}
		return strings.TrimSuffix(b.String(), "\n")
	}

	return harness.New("json", inputs, original, optimized)
}

// deferredSuite: the same computation returned immediately vs through a
// channel, exercising the deferred-result path of the harness.
func deferredSuite() *harness.Benchmark {
	inputs := []any{15, 18, 20}

	fib := func(n int) int {
		a, b := 0, 1
		for i := 0; i < n; i++ {
			a, b = b, a+b
		}
		return a
	}

	original := func(input any) any {
		return fib(input.(int))
	}
	optimized := func(input any) any {
		ch := make(chan any, 1)
		go func() { ch <- fib(input.(int)) }()
		return ch
	}

	b := harness.New("deferred", inputs, original, optimized)
	b.B.Name = "Deferred"
	b.A.Name = "Synchronous"
	return b
}
