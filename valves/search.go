package valves

import "github.com/maisem/aoc22"

// soloSearch is the state shared by one run of BestTotalYield.
type soloSearch struct {
	g    *Graph
	pt   *PathTable
	best uint
}

// BestTotalYield returns the most pressure a single agent starting at start
// can release within budget minutes.
//
// Arriving at a valve that is still closed opens it; the start valve is
// treated the same way. From there the agent walks to any closed valve it
// can still reach with at least one minute to spare.
func BestTotalYield(g *Graph, pt *PathTable, start ID, budget uint) uint {
	if budget == 0 {
		return 0
	}
	s := &soloSearch{g: g, pt: pt}
	s.visit(start, pt.All(), int(budget), 0)
	return s.best
}

// visit opens cur and explores every onward route. Branches whose optimistic
// bound cannot beat the best total found so far are cut.
func (s *soloSearch) visit(cur ID, closed TargetSet, minutes int, released uint) {
	released += uint(minutes) * s.g.Rate(cur)
	minutes--
	closed = closed.Without(s.pt.Slot(cur))
	if released > s.best {
		s.best = released
	}
	if minutes == 0 || closed.Empty() {
		return
	}
	if released+s.bound(closed, minutes) <= s.best {
		return
	}
	for _, slot := range closed.Slots() {
		next := s.pt.Targets()[slot]
		left := minutes - s.pt.Cost(cur, next)
		if left < 1 {
			// Not enough time to get there and open it.
			continue
		}
		s.visit(next, closed, left, released)
	}
}

// bound is an upper limit on what the closed valves can still add: each
// could at best be opened right away, with minutes-1 minutes left.
func (s *soloSearch) bound(closed TargetSet, minutes int) uint {
	rates := make([]uint, 0, closed.Len())
	for _, slot := range closed.Slots() {
		rates = append(rates, s.g.Rate(s.pt.Targets()[slot]))
	}
	return uint(minutes-1) * aoc.Sum(rates...)
}
