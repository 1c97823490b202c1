package valves

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// flat has no valve worth opening.
const flatInput = `Valve AA has flow rate=0; tunnels lead to valves BB
Valve BB has flow rate=0; tunnels lead to valves AA, CC
Valve CC has flow rate=0; tunnel leads to valve BB
`

// mustGraph parses input and builds its path table.
func mustGraph(t testing.TB, input string) (*Graph, *PathTable) {
	t.Helper()
	g, err := Parse(input)
	require.NoError(t, err)
	pt, err := BuildPathTable(g)
	require.NoError(t, err)
	return g, pt
}

func mustID(t testing.TB, g *Graph, label string) ID {
	t.Helper()
	id, err := g.Lookup(label)
	require.NoError(t, err)
	return id
}
