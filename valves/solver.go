package valves

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Solver answers both puzzle parts for one Graph. The PathTable is built
// once and shared by every search. Answers are cached, so asking the same
// question twice returns the first answer without searching again.
//
// A Solver is safe for concurrent use.
type Solver struct {
	g     *Graph
	pt    *PathTable
	cfg   Config
	start ID

	// OnProgress, if set, is called each time one of the two-agent search's
	// opening moves has been fully explored. Calls are serialized.
	OnProgress func(done, total int, best uint)

	mu    sync.Mutex
	cache map[query]uint
}

// query is the cache key of a Solver answer. The table limit and worker
// count only change how fast an answer is found, so they are not part of
// it.
type query struct {
	agents int
	start  ID
	budget uint
}

// NewSolver validates cfg, resolves its start valve and builds the path
// table for g.
func NewSolver(g *Graph, cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, err := g.Lookup(cfg.Start)
	if err != nil {
		return nil, fmt.Errorf("start valve: %w", err)
	}
	pt, err := BuildPathTable(g)
	if err != nil {
		return nil, err
	}
	return &Solver{
		g:     g,
		pt:    pt,
		cfg:   cfg,
		start: start,
		cache: make(map[query]uint),
	}, nil
}

// Paths returns the solver's path table.
func (s *Solver) Paths() *PathTable { return s.pt }

// OneAgent returns the most pressure one agent can release in cfg.Budget
// minutes.
func (s *Solver) OneAgent(ctx context.Context) (uint, error) {
	q := query{agents: 1, start: s.start, budget: s.cfg.Budget}
	return s.cached(ctx, q, func(context.Context) (uint, error) {
		return BestTotalYield(s.g, s.pt, s.start, s.cfg.Budget), nil
	})
}

// TwoAgents returns the most pressure two agents can release with
// cfg.TeamBudget minutes each. The opening moves are split across
// cfg.Workers goroutines that share the best total found so far, each
// remembering at most its share of cfg.MemoLimit states; ctx is checked
// between them.
func (s *Solver) TwoAgents(ctx context.Context) (uint, error) {
	q := query{agents: 2, start: s.start, budget: s.cfg.TeamBudget}
	return s.cached(ctx, q, s.team)
}

func (s *Solver) cached(ctx context.Context, q query, compute func(context.Context) (uint, error)) (uint, error) {
	s.mu.Lock()
	v, ok := s.cache[q]
	s.mu.Unlock()
	if ok {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	v, err := compute(ctx)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	s.cache[q] = v
	s.mu.Unlock()
	return v, nil
}

func (s *Solver) team(ctx context.Context) (uint, error) {
	a := agent{at: s.start, minutes: int(s.cfg.TeamBudget)}
	root := newTeamSearch(s.g, s.pt, 0)
	closed, a, b, released, moves := root.expand(s.pt.All(), a, a)
	if len(moves) == 0 {
		return released, nil
	}
	best := root.best
	root.raise(released)

	var (
		mu   sync.Mutex
		done int
	)
	record := func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		if s.OnProgress != nil {
			s.OnProgress(done, len(moves), uint(best.Load()))
		}
	}

	workers := min(s.cfg.Workers, len(moves))
	limit := s.cfg.workerMemoLimit()
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			// Each worker owns its table; the best total is shared so a
			// good answer found by one worker prunes the others.
			ts := newTeamSearch(s.g, s.pt, limit)
			ts.best = best
			for i := w; i < len(moves); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				m := moves[i]
				ts.gain(closed, ts.step(a, m.a), ts.step(b, m.b), released)
				record()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return uint(best.Load()), nil
}
