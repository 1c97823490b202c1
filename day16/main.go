// Command day16 solves Advent of Code 2022 day 16, "Proboscidea Volcanium".
//
// Usage:
//
//	go run ./day16 [-sample] [-debug] [-valves-config valves.yaml]
package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/maisem/aoc22"
	"github.com/maisem/aoc22/valves"
	"tailscale.com/util/deephash"
)

func main() {
	aoc.Run(2022, source, &solver{
		parser: valves.NewParser(),
		config: sync.OnceValues(func() (valves.Config, error) {
			return valves.LoadConfig(*flagConfig)
		}),
		solvers: make(map[deephash.Sum]*valves.Solver),
	})
}

//go:embed main.go
var source []byte

var flagConfig = flag.String("valves-config", "", "optional YAML file overriding the start valve, budgets and workers")

type solver struct {
	*aoc.Puzzle
	parser *valves.Parser
	config func() (valves.Config, error)

	// solvers holds one Solver per distinct input, so the sample and the
	// real input each build their path table once for both parts.
	solvers map[deephash.Sum]*valves.Solver
}

func (s solver) forInput() (*valves.Solver, error) {
	g, err := s.parser.Parse(bytes.NewReader(s.Input()))
	if err != nil {
		return nil, err
	}
	fp := g.Fingerprint()
	if vs, ok := s.solvers[fp]; ok {
		return vs, nil
	}
	cfg, err := s.config()
	if err != nil {
		return nil, err
	}
	s.Debugf("%d valves, %d worth opening", g.Len(), len(g.Openable()))
	vs, err := valves.NewSolver(g, cfg)
	if err != nil {
		return nil, err
	}
	s.solvers[fp] = vs
	if s.Debugging() {
		vs.OnProgress = func(done, total int, best uint) {
			fmt.Fprintf(os.Stderr, "\r%d of %d => %d%% - %d        ", done, total, done*100/total, best)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}
	return vs, nil
}

/*
want=1651

Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
*/
func (s solver) D16p1() (any, error) {
	vs, err := s.forInput()
	if err != nil {
		return nil, err
	}
	return vs.OneAgent(context.Background())
}

// want=1707
func (s solver) D16p2() (any, error) {
	vs, err := s.forInput()
	if err != nil {
		return nil, err
	}
	return vs.TwoAgents(context.Background())
}
