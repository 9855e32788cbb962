package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SaveAndHistory(t *testing.T) {
	store := newTestStore(t)

	// Empty history
	runs, err := store.History("concat", 10)
	assert.NoError(t, err)
	assert.Empty(t, runs)

	run1 := Run{
		Name:       "concat",
		CreatedAt:  time.Now().Add(-1 * time.Hour),
		CandidateA: "Original",
		CandidateB: "Optimized",
		Trials:     100,
		MeanA:      2.5,
		MeanB:      1.1,
		MedianA:    2.4,
		MedianB:    1.0,
		OpsA:       4000,
		OpsB:       9000,
	}
	require.NoError(t, store.SaveRun(run1))

	run2 := run1
	run2.CreatedAt = time.Now()
	run2.MeanB = 1.3
	require.NoError(t, store.SaveRun(run2))

	// Newest first
	runs, err = store.History("concat", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.InDelta(t, 1.3, runs[0].MeanB, 0.0001)
	assert.InDelta(t, 1.1, runs[1].MeanB, 0.0001)
	assert.Equal(t, "Optimized", runs[0].CandidateB)
}

func TestSQLiteStore_HistoryIsPerBenchmark(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRun(Run{Name: "sort", CandidateA: "a", CandidateB: "b", Trials: 1}))
	require.NoError(t, store.SaveRun(Run{Name: "concat", CandidateA: "a", CandidateB: "b", Trials: 1}))

	runs, err := store.History("sort", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.Equal(t, "sort", runs[0].Name)
}

func TestSQLiteStore_Latest(t *testing.T) {
	store := newTestStore(t)

	latest, err := store.Latest("missing")
	assert.NoError(t, err)
	assert.Nil(t, latest)

	require.NoError(t, store.SaveRun(Run{
		Name: "json", CreatedAt: time.Now().Add(-time.Minute),
		CandidateA: "a", CandidateB: "b", Trials: 50, MeanA: 9,
	}))
	require.NoError(t, store.SaveRun(Run{
		Name: "json", CreatedAt: time.Now(),
		CandidateA: "a", CandidateB: "b", Trials: 50, MeanA: 7,
	}))

	latest, err = store.Latest("json")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.InDelta(t, 7.0, latest.MeanA, 0.0001)
}

func TestSQLiteStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.SaveRun(Run{Name: "x", CandidateA: "a", CandidateB: "b"}))
}
