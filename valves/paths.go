package valves

import (
	"fmt"

	"github.com/maisem/aoc22"
)

// bfs walks g outward from origin and returns each valve's predecessor on a
// shortest route, or -1 for origin and valves that cannot be reached.
// Tunnels are explored in input order, so ties between equally short routes
// always resolve the same way.
func bfs(g *Graph, origin ID) []ID {
	parent := make([]ID, g.Len())
	for i := range parent {
		parent[i] = -1
	}
	seen := make([]bool, g.Len())
	seen[origin] = true
	q := aoc.NewQueue(origin)
	q.While(func(v ID) bool {
		for _, n := range g.Neighbors(v) {
			if seen[n] {
				continue
			}
			seen[n] = true
			parent[n] = v
			q.Push(n)
		}
		return true
	})
	return parent
}

// route rebuilds the path origin..to from BFS parent links.
func route(parent []ID, origin, to ID) []ID {
	if origin == to {
		return []ID{origin}
	}
	if parent[to] < 0 {
		return nil
	}
	n := 1
	for v := to; v != origin; v = parent[v] {
		n++
	}
	path := make([]ID, n)
	for v, i := to, n-1; i >= 0; v, i = parent[v], i-1 {
		path[i] = v
	}
	return path
}

// ShortestPath returns a route with the fewest tunnels from one valve to
// another, both ends included. It returns an *UnreachableError if there is
// none.
func ShortestPath(g *Graph, from, to ID) ([]ID, error) {
	p := route(bfs(g, from), from, to)
	if p == nil {
		return nil, &UnreachableError{From: g.Label(from), To: g.Label(to)}
	}
	return p, nil
}

// PathTable holds the shortest path from every valve to every valve with a
// positive flow rate. It is read-only once built.
type PathTable struct {
	targets []ID
	slot    []int  // valve ID -> index in targets, or -1
	paths   [][]ID // [origin*len(targets)+slot]
	cost    []int  // same layout as paths
}

// BuildPathTable runs one breadth-first search per valve. Every valve with
// a positive flow rate must be reachable from every valve, otherwise an
// *UnreachableError is returned. At most 64 such valves are supported.
func BuildPathTable(g *Graph) (*PathTable, error) {
	targets := g.Openable()
	if len(targets) > maxTargets {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTargets, len(targets), maxTargets)
	}
	pt := &PathTable{
		targets: targets,
		slot:    make([]int, g.Len()),
		paths:   make([][]ID, g.Len()*len(targets)),
		cost:    make([]int, g.Len()*len(targets)),
	}
	for i := range pt.slot {
		pt.slot[i] = -1
	}
	for i, t := range targets {
		pt.slot[t] = i
	}
	for _, origin := range g.Nodes() {
		parent := bfs(g, origin)
		for i, t := range targets {
			p := route(parent, origin, t)
			if p == nil {
				return nil, &UnreachableError{From: g.Label(origin), To: g.Label(t)}
			}
			k := int(origin)*len(targets) + i
			pt.paths[k] = p
			pt.cost[k] = len(p) - 1
		}
	}
	return pt, nil
}

// Targets returns the valves with a positive flow rate. Index i of the
// result is slot i of a TargetSet.
func (pt *PathTable) Targets() []ID { return pt.targets }

// Slot returns the TargetSet slot of id, or -1 if id is not a target.
func (pt *PathTable) Slot(id ID) int { return pt.slot[id] }

// Path returns the stored route from one valve to a target. It returns nil
// if to is not a target.
func (pt *PathTable) Path(from, to ID) []ID {
	s := pt.slot[to]
	if s < 0 {
		return nil
	}
	return pt.paths[int(from)*len(pt.targets)+s]
}

// Cost returns the minutes needed to walk from one valve to a target. It
// returns -1 if to is not a target.
func (pt *PathTable) Cost(from, to ID) int {
	s := pt.slot[to]
	if s < 0 {
		return -1
	}
	return pt.cost[int(from)*len(pt.targets)+s]
}

// All returns a fresh set holding every target.
func (pt *PathTable) All() TargetSet {
	return fullSet(len(pt.targets))
}
