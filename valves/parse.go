package valves

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/maisem/aoc22"
)

// Parser reads valve descriptions such as
//
//	Valve BB has flow rate=13; tunnels lead to valves CC, AA
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// A Parser is safe for concurrent use.
type Parser struct {
	line  *regexp.Regexp
	label *regexp.Regexp
}

// NewParser compiles the line grammar.
func NewParser() *Parser {
	return &Parser{
		line:  regexp.MustCompile(`^Valve (\S+) has flow rate=(\S+); tunnels? leads? to valves? (.+)$`),
		label: regexp.MustCompile(`^\w+$`),
	}
}

// ParseLine parses a single line. Errors are not wrapped in a ParseError;
// Parse adds the line number.
func (p *Parser) ParseLine(line string) (Valve, error) {
	m := p.line.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Valve{}, errors.New(`want "Valve <id> has flow rate=<n>; tunnels lead to valves <id>, ..."`)
	}
	if !p.label.MatchString(m[1]) {
		return Valve{}, fmt.Errorf("bad valve label %q", m[1])
	}
	rate, err := strconv.ParseUint(m[2], 10, 0)
	if err != nil {
		return Valve{}, fmt.Errorf("bad flow rate %q", m[2])
	}
	v := Valve{Label: m[1], Rate: uint(rate)}
	seen := aoc.Set[string]{}
	for _, t := range strings.Split(m[3], ",") {
		t = strings.TrimSpace(t)
		if !p.label.MatchString(t) {
			return Valve{}, fmt.Errorf("bad tunnel label %q", t)
		}
		if seen.Has(t) {
			return Valve{}, fmt.Errorf("tunnel to %s listed twice", t)
		}
		seen.Add(t)
		v.Tunnels = append(v.Tunnels, t)
	}
	return v, nil
}

// Parse reads one valve per line from r and builds the Graph. Blank lines
// are skipped. Malformed lines, duplicate valves and tunnels to undeclared
// valves are reported as *ParseError.
func (p *Parser) Parse(r io.Reader) (*Graph, error) {
	var (
		vs     []Valve
		lines  []int
		labels = aoc.Set[string]{}
	)
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		text := s.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		v, err := p.ParseLine(text)
		if err != nil {
			return nil, &ParseError{Line: n, Text: text, Err: err}
		}
		if labels.Has(v.Label) {
			return nil, &ParseError{Line: n, Text: text, Err: fmt.Errorf("duplicate valve %s", v.Label)}
		}
		labels.Add(v.Label)
		vs = append(vs, v)
		lines = append(lines, n)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("valves: reading input: %w", err)
	}
	for i, v := range vs {
		for _, t := range v.Tunnels {
			if !labels.Has(t) {
				return nil, &ParseError{
					Line: lines[i],
					Text: fmt.Sprintf("Valve %s", v.Label),
					Err:  fmt.Errorf("%w %s", ErrUnknownValve, t),
				}
			}
		}
	}
	return NewGraph(vs)
}

// Parse parses the puzzle text with a fresh Parser.
func Parse(text string) (*Graph, error) {
	return NewParser().Parse(strings.NewReader(text))
}
