package valves

import (
	"fmt"

	"tailscale.com/util/deephash"
)

// ID is the index of a valve in its Graph. IDs are assigned in input order
// starting at 0.
type ID int

// Valve is a single parsed input line.
type Valve struct {
	Label   string
	Rate    uint
	Tunnels []string
}

// Graph is an immutable valve network. Valves are addressed by ID so the
// searches never hash labels.
type Graph struct {
	labels  []string
	index   map[string]ID
	rates   []uint
	tunnels [][]ID
}

// NewGraph interns the valves' labels and resolves their tunnels. It
// returns ErrUnknownValve if a tunnel leads to a valve not in vs.
func NewGraph(vs []Valve) (*Graph, error) {
	g := &Graph{
		labels:  make([]string, len(vs)),
		index:   make(map[string]ID, len(vs)),
		rates:   make([]uint, len(vs)),
		tunnels: make([][]ID, len(vs)),
	}
	for i, v := range vs {
		if _, dup := g.index[v.Label]; dup {
			return nil, fmt.Errorf("duplicate valve %s", v.Label)
		}
		g.index[v.Label] = ID(i)
		g.labels[i] = v.Label
		g.rates[i] = v.Rate
	}
	for i, v := range vs {
		ts := make([]ID, 0, len(v.Tunnels))
		for _, t := range v.Tunnels {
			id, ok := g.index[t]
			if !ok {
				return nil, fmt.Errorf("%w %s (tunnel from %s)", ErrUnknownValve, t, v.Label)
			}
			ts = append(ts, id)
		}
		g.tunnels[i] = ts
	}
	return g, nil
}

// Len returns the number of valves.
func (g *Graph) Len() int { return len(g.labels) }

// Nodes returns every valve ID in ascending order.
func (g *Graph) Nodes() []ID {
	ids := make([]ID, len(g.labels))
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Openable returns the valves with a positive flow rate in ascending order.
func (g *Graph) Openable() []ID {
	var ids []ID
	for i, r := range g.rates {
		if r > 0 {
			ids = append(ids, ID(i))
		}
	}
	return ids
}

// Neighbors returns the valves id has tunnels to, in input order. The
// slice must not be modified.
func (g *Graph) Neighbors(id ID) []ID { return g.tunnels[id] }

// Rate returns the flow rate of id.
func (g *Graph) Rate(id ID) uint { return g.rates[id] }

// Label returns the name of id.
func (g *Graph) Label(id ID) string { return g.labels[id] }

// Lookup returns the ID of the valve called label.
func (g *Graph) Lookup(label string) (ID, error) {
	id, ok := g.index[label]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownValve, label)
	}
	return id, nil
}

// Labels maps ids to their labels.
func (g *Graph) Labels(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.labels[id]
	}
	return out
}

// Fingerprint returns a hash of the whole network. Two graphs parsed from
// the same valves, in the same order, have the same fingerprint.
func (g *Graph) Fingerprint() deephash.Sum {
	return deephash.Hash(g)
}
