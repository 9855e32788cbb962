package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinSuites_AllVerify(t *testing.T) {
	for name, ctor := range builtinSuites() {
		t.Run(name, func(t *testing.T) {
			b := ctor()
			require.NotEmpty(t, b.Inputs)
			assert.True(t, b.Verify(io.Discard), "candidates disagree")
		})
	}
}

func TestSuiteNames_Sorted(t *testing.T) {
	names := suiteNames()
	assert.Equal(t, []string{"concat", "deferred", "json", "sort"}, names)
}

func TestWordList(t *testing.T) {
	words := wordList(5)
	assert.Len(t, words, 5)
	assert.Equal(t, "word", words[0])
}

func TestDescending(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, descending(3))
}
