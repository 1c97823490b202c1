package valves

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleSolver(t *testing.T, cfg Config) *Solver {
	t.Helper()
	g, err := Parse(sampleInput)
	require.NoError(t, err)
	s, err := NewSolver(g, cfg)
	require.NoError(t, err)
	return s
}

func TestSolverSample(t *testing.T) {
	ctx := context.Background()
	for _, workers := range []int{1, 2, 7, 64} {
		for _, memo := range []bool{true, false} {
			cfg := DefaultConfig()
			cfg.Workers = workers
			cfg.Memoize = memo
			s := newSampleSolver(t, cfg)

			one, err := s.OneAgent(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint(1651), one)

			two, err := s.TwoAgents(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint(1707), two, "workers %d memoize %v", workers, memo)
		}
	}
}

func TestSolverParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()
	g, pt := mustGraph(t, sampleInput)
	aa := mustID(t, g, "AA")
	for budget := uint(0); budget <= 26; budget++ {
		cfg := DefaultConfig()
		cfg.TeamBudget = budget
		cfg.Workers = 3
		got, err := newSampleSolver(t, cfg).TwoAgents(ctx)
		require.NoError(t, err)
		assert.Equal(t, BestTotalYieldTwoAgents(g, pt, aa, budget), got, "budget %d", budget)
	}
}

func TestSolverProgress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 4
	s := newSampleSolver(t, cfg)

	var (
		mu    sync.Mutex
		calls int
		last  uint
	)
	s.OnProgress = func(done, total int, best uint) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		assert.Equal(t, calls, done)
		assert.Equal(t, 30, total)
		assert.GreaterOrEqual(t, best, last)
		last = best
	}
	got, err := s.TwoAgents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, calls)
	assert.Equal(t, got, last)
}

func TestSolverCachesAnswers(t *testing.T) {
	s := newSampleSolver(t, DefaultConfig())
	calls := 0
	s.OnProgress = func(int, int, uint) { calls++ }

	first, err := s.TwoAgents(context.Background())
	require.NoError(t, err)
	n := calls
	require.Positive(t, n)

	second, err := s.TwoAgents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, n, calls, "second call should not search")
}

func TestSolverCanceled(t *testing.T) {
	s := newSampleSolver(t, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.OneAgent(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.TwoAgents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSolverErrors(t *testing.T) {
	g, err := Parse(sampleInput)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Start = "ZZ"
	_, err = NewSolver(g, cfg)
	assert.ErrorIs(t, err, ErrUnknownValve)

	cfg = DefaultConfig()
	cfg.Workers = 0
	_, err = NewSolver(g, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	island, err := Parse(islandInput)
	require.NoError(t, err)
	_, err = NewSolver(island, DefaultConfig())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestSolverPaths(t *testing.T) {
	s := newSampleSolver(t, DefaultConfig())
	assert.Len(t, s.Paths().Targets(), 6)
}
