package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=1707`,
			want:    sample{want: "1707"},
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		require.True(t, ok, "comment %q", tt.comment)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseSampleMissing(t *testing.T) {
	_, ok := parseSample("// D1p1 solves part one.")
	assert.False(t, ok)
}

const solverSrc = `package main

/*
want=3

a
b
c
*/
func (s solver) D1p1() any { return 3 }

// want=6
func (s solver) D1p2() any { return 6 }

// D2p1 has no sample.
func (s solver) D2p1() any { return 0 }
`

func TestExtractSamples(t *testing.T) {
	samples, err := extractSamples([]byte(solverSrc))
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, sample{want: "3", input: "a\nb\nc\n"}, samples["D1p1"])
	// The second part inherits the previous input.
	assert.Equal(t, sample{want: "6", input: "a\nb\nc\n"}, samples["D1p2"])
}

func TestExtractSamplesBadSource(t *testing.T) {
	_, err := extractSamples([]byte("package"))
	assert.Error(t, err)
}

type testSolver struct {
	*Puzzle
}

func (testSolver) D3p1() any { return 1 }

func (testSolver) D3p2() (any, error) { return 2, nil }

func (testSolver) D1p1() any { return "x" }

func (testSolver) Helper() int { return 0 }

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	require.NoError(t, err)
	require.Len(t, days, 2)

	d3 := days[3]
	require.Len(t, d3.parts, 2)
	assert.Equal(t, "1", d3.parts[0].Part)
	assert.Equal(t, "D3p2", d3.parts[1].Name)

	got, err := d3.parts[1].fn()
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	res, err := runPart(days[1].parts[0])
	require.NoError(t, err)
	assert.Equal(t, "x", res.got)
}

type badSolver struct {
	*Puzzle
}

func (badSolver) D1p1() int { return 1 }

func TestExtractMethodsBadSignature(t *testing.T) {
	_, err := extractMethods(&badSolver{})
	assert.ErrorContains(t, err, "D1p1")

	_, err = extractMethods(badSolver{})
	assert.Error(t, err)
}

func TestPtMDist(t *testing.T) {
	tests := []struct {
		a, b Pt
		want int64
	}{
		{Pt{0, 0}, Pt{0, 0}, 0},
		{Pt{1, 2}, Pt{4, 6}, 7},
		{Pt{-3, 5}, Pt{2, -1}, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.MDist(tt.b), "%v.MDist(%v)", tt.a, tt.b)
		assert.Equal(t, tt.want, tt.b.MDist(tt.a), "%v.MDist(%v)", tt.b, tt.a)
	}
}

func TestPtString(t *testing.T) {
	tests := []struct {
		p    Pt
		want string
	}{
		{Pt{}, "(0,0)"},
		{Pt{3, -4}, "(3,-4)"},
		{Pt{-12, 7}, "(-12,7)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.String())
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v == 1 {
			q.Push(4)
		}
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	_, ok := q.Pop()
	assert.False(t, ok)
	assert.Zero(t, q.Len())
}

func TestSet(t *testing.T) {
	s := SetOf("AA", "BB", "AA")
	assert.Len(t, s, 2)
	assert.True(t, s.Has("BB"))
	assert.False(t, s.Has("CC"))
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, 10, Sum(1, 2, 3, 4))
	assert.Equal(t, uint(7), Max[uint](3, 7, 5))
	assert.Equal(t, 0, Max[int]())
	assert.Equal(t, uint(4), AbsDiff[uint](3, 7))
	assert.Equal(t, "b", Or("", "b", "c"))
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	cached := filepath.Join(dir, "2022", "16.input")
	require.NoError(t, os.MkdirAll(filepath.Dir(cached), 0o700))
	require.NoError(t, os.WriteFile(cached, []byte("cached\n"), 0o644))

	got, err := fileOrFetch(cached, "http://invalid.test/never-fetched")
	require.NoError(t, err)
	assert.Equal(t, "cached\n", string(got))

	override := filepath.Join(dir, "mine.txt")
	require.NoError(t, os.WriteFile(override, []byte("override\n"), 0o644))
	flagInput = override
	t.Cleanup(func() { flagInput = "" })
	got, err = readInput(2022, 16)
	require.NoError(t, err)
	assert.Equal(t, "override\n", string(got))
}

func TestSessionCookieFromEnv(t *testing.T) {
	t.Setenv("AOC_SESSION", "abc123")
	s, err := sessionCookie()
	require.NoError(t, err)
	assert.Equal(t, "abc123", s)
}
