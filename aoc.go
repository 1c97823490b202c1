// Package aoc are quick & dirty utilities for helping solve Advent of Code
// problems. (forked from bradfitz/aoc)
//
// A solver is a struct embedding *Puzzle with methods named D{day}p{part}.
// Each method returns either any or (any, error). The doc comment of a part
// may carry a sample:
//
//	/*
//	want=1651
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	...
//	*/
//
// Samples are checked before the real input is run. A part without its own
// sample input reuses the input of the previous sample in the file.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}, true
	}
	return sample{}, false
}

func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

// Day reports the day number being solved.
func (p *Puzzle) Day() int { return p.day.day }

// Input returns the sample input in sample mode and the real input
// otherwise. Failing to get the real input is fatal.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	b, err := readInput(p.year, p.day.day)
	if err != nil {
		log.Fatalf("day %d input: %v", p.day.day, err)
	}
	return b
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugging reports whether -debug was passed.
func (p *Puzzle) Debugging() bool { return flagDebug }

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var partRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// partFunc adapts the supported part method signatures.
func partFunc(m reflect.Value) (func() (any, error), bool) {
	switch f := m.Interface().(type) {
	case func() any:
		return func() (any, error) { return f(), nil }, true
	case func() (any, error):
		return f, true
	}
	return nil, false
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := partRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := partFunc(v.Method(i))
		if !ok {
			return nil, fmt.Errorf("register: %s has signature %v; want func() any or func() (any, error)", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagInput      string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "read the real input from this file instead of the cache")
}

var initFlags = sync.OnceFunc(flag.Parse)

// result is the outcome of running a single part against one input.
type result struct {
	got  string
	took time.Duration
}

func runPart(ps partSolver) (result, error) {
	t0 := time.Now()
	got, err := ps.fn()
	if err != nil {
		return result{}, fmt.Errorf("part %s: %w", ps.Part, err)
	}
	return result{got: fmt.Sprint(got), took: time.Since(t0).Round(time.Microsecond)}, nil
}

func runDay(slvr any, year int, day day, samples map[string]sample) error {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			res, err := runPart(ps)
			if err != nil {
				return err
			}
			if sm {
				sample := p.Sample()
				if res.got != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, res.got, sample.want)
					return nil
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, res.got, res.took)
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, res.got, res.took)
			}
		}
	}
	return nil
}

// Run solves every registered day of year, or only the one selected with
// -day. Any error returned by a part is fatal.
func Run(year int, src []byte, slvr any) {
	samples, err := extractSamples(src)
	if err != nil {
		log.Fatal(err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		log.Fatal(err)
	}
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		if err := runDay(slvr, year, day, samples); err != nil {
			log.Fatalf("day %d: %v", day.day, err)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		if err := runDay(slvr, year, days[d], samples); err != nil {
			log.Fatalf("day %d: %v", d, err)
		}
		fmt.Println()
	}
}
