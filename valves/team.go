package valves

import (
	"cmp"
	"slices"
	"sync/atomic"
)

// DefaultMemoLimit is the number of solved states the two-agent search
// remembers when no Config says otherwise.
const DefaultMemoLimit = 1 << 18

// agent is one walker in the two-agent search.
type agent struct {
	at      ID
	minutes int
}

// teamKey identifies a search state. The agents are interchangeable, so the
// one at the lower valve always comes first.
type teamKey struct {
	closed TargetSet
	a, b   agent
}

func makeTeamKey(closed TargetSet, a, b agent) teamKey {
	if b.at < a.at {
		a, b = b, a
	}
	return teamKey{closed: closed, a: a, b: b}
}

// move is a pair of next valves, one per agent.
type move struct {
	a, b  ID
	score uint
}

// teamSearch is a depth-first branch and bound over the two agents' moves.
//
// best is the highest total found so far and may be shared by several
// searches running in parallel. memo holds, for up to limit states, the
// exact pressure still to be released from that state. States whose
// subtree was cut by the bound are never stored.
type teamSearch struct {
	g     *Graph
	pt    *PathTable
	best  *atomic.Uint64
	memo  map[teamKey]uint
	limit int

	byRate []int // target slots, highest rate first
	hop    int   // fewest minutes between two openings by one agent
}

// newTeamSearch returns a search remembering at most limit states. A limit
// of 0 disables the table.
func newTeamSearch(g *Graph, pt *PathTable, limit int) *teamSearch {
	ts := &teamSearch{g: g, pt: pt, best: new(atomic.Uint64), limit: limit}
	if limit > 0 {
		ts.memo = make(map[teamKey]uint)
	}
	targets := pt.Targets()
	ts.byRate = make([]int, len(targets))
	for i := range ts.byRate {
		ts.byRate[i] = i
	}
	slices.SortStableFunc(ts.byRate, func(x, y int) int {
		return cmp.Compare(g.Rate(targets[y]), g.Rate(targets[x]))
	})
	for _, from := range targets {
		for _, to := range targets {
			if c := pt.Cost(from, to) + 1; from != to && (ts.hop == 0 || c < ts.hop) {
				ts.hop = c
			}
		}
	}
	if ts.hop == 0 {
		ts.hop = 2
	}
	return ts
}

// BestTotalYieldTwoAgents returns the most pressure two agents starting
// together at start can release, each with budget minutes, sharing one pool
// of closed valves.
//
// Unlike BestTotalYield, an agent is still sent towards a valve it cannot
// reach in time; its clock just stops at zero and the other agent carries
// on. Every move sends the agents to two different valves, so the last
// closed valve is never opened by the team.
func BestTotalYieldTwoAgents(g *Graph, pt *PathTable, start ID, budget uint) uint {
	a := agent{at: start, minutes: int(budget)}
	ts := newTeamSearch(g, pt, DefaultMemoLimit)
	ts.gain(pt.All(), a, a, 0)
	return ts.total()
}

// total returns the best total found so far.
func (ts *teamSearch) total() uint { return uint(ts.best.Load()) }

// raise records v as a reachable total.
func (ts *teamSearch) raise(v uint) {
	for {
		cur := ts.best.Load()
		if uint64(v) <= cur || ts.best.CompareAndSwap(cur, uint64(v)) {
			return
		}
	}
}

// open opens the valve a stands at if it is still closed and a has time.
func (ts *teamSearch) open(closed TargetSet, a agent) (TargetSet, agent, uint) {
	slot := ts.pt.Slot(a.at)
	if a.minutes <= 0 || !closed.Has(slot) {
		return closed, a, 0
	}
	a.minutes--
	return closed.Without(slot), a, uint(a.minutes) * ts.g.Rate(a.at)
}

// reward is the most an agent can gain by walking straight to v and
// opening it.
func (ts *teamSearch) reward(a agent, v ID) uint {
	left := a.minutes - ts.pt.Cost(a.at, v) - 1
	if left <= 0 {
		return 0
	}
	return uint(left) * ts.g.Rate(v)
}

// expand opens both agents' valves and lists the moves worth exploring
// from the resulting state, most promising first. No moves means the
// search ends here.
func (ts *teamSearch) expand(closed TargetSet, a, b agent) (TargetSet, agent, agent, uint, []move) {
	closed, a, ga := ts.open(closed, a)
	closed, b, gb := ts.open(closed, b)
	released := ga + gb
	// Going anywhere and opening it takes at least two minutes.
	if (a.minutes < 2 && b.minutes < 2) || closed.Empty() {
		return closed, a, b, released, nil
	}
	slots := closed.Slots()
	moves := make([]move, 0, len(slots)*(len(slots)-1))
	for _, sa := range slots {
		va := ts.pt.Targets()[sa]
		ra := ts.reward(a, va)
		for _, sb := range slots {
			if sa == sb {
				continue
			}
			vb := ts.pt.Targets()[sb]
			moves = append(moves, move{a: va, b: vb, score: ra + ts.reward(b, vb)})
		}
	}
	slices.SortStableFunc(moves, func(x, y move) int {
		return cmp.Compare(y.score, x.score)
	})
	return closed, a, b, released, moves
}

// bound is an upper limit on what the closed valves can still add. It is
// the smaller of two limits: every valve opened by whichever agent could
// reach it soonest, and the rates, highest first, credited at the latest
// times the agents could open anything, hop minutes apart.
func (ts *teamSearch) bound(closed TargetSet, a, b agent) uint {
	var (
		near   uint
		ca, cb = a.minutes, b.minutes
	)
	for _, slot := range closed.Slots() {
		v := ts.pt.Targets()[slot]
		near += max(ts.reward(a, v), ts.reward(b, v))
		ca = min(ca, ts.pt.Cost(a.at, v))
		cb = min(cb, ts.pt.Cost(b.at, v))
	}

	var slots uint
	ta, tb := a.minutes-ca-1, b.minutes-cb-1
	for _, slot := range ts.byRate {
		if !closed.Has(slot) {
			continue
		}
		t := max(ta, tb)
		if t <= 0 {
			break
		}
		slots += uint(t) * ts.g.Rate(ts.pt.Targets()[slot])
		if ta >= tb {
			ta -= ts.hop
		} else {
			tb -= ts.hop
		}
	}
	return min(near, slots)
}

// step walks an agent towards next. An agent that runs out of time stops at
// zero minutes rather than being left behind.
func (ts *teamSearch) step(a agent, next ID) agent {
	return agent{at: next, minutes: max(a.minutes-ts.pt.Cost(a.at, next), 0)}
}

// gain returns the pressure still to be released from the state where the
// agents stand at a and b, closed are the valves left and acc has already
// been released. exact is false if part of the subtree was cut because it
// could not beat the best total; the result is then only a lower bound.
func (ts *teamSearch) gain(closed TargetSet, a, b agent, acc uint) (v uint, exact bool) {
	var key teamKey
	if ts.memo != nil {
		key = makeTeamKey(closed, a, b)
		if v, ok := ts.memo[key]; ok {
			ts.raise(acc + v)
			return v, true
		}
	}
	closed, a, b, released, moves := ts.expand(closed, a, b)
	here := acc + released
	ts.raise(here)

	best, exact := released, true
	if len(moves) > 0 {
		if bound := ts.bound(closed, a, b); bound > 0 && here+bound <= ts.total() {
			exact = false
		} else if bound > 0 {
			for _, m := range moves {
				v, ok := ts.gain(closed, ts.step(a, m.a), ts.step(b, m.b), here)
				exact = exact && ok
				best = max(best, released+v)
			}
		}
	}
	if exact && ts.memo != nil && len(ts.memo) < ts.limit {
		ts.memo[key] = best
	}
	ts.raise(acc + best)
	return best, exact
}
