package aoc

import (
	"slices"
	"testing"
	"testing/fstest"
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
			comment: `/*
want=2,7

first

second
*/`,
			want: sample{
				want: "2,7",
				input: `first

second
`,
			},
		},
		{
			comment: "// want=31",
			want:    sample{want: "31"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, want %+v", tt.comment, got, tt.want)
		}
	}
	if _, ok := parseSample("// sums the lines"); ok {
		t.Errorf("parseSample matched a comment without want=")
	}
}

const testSource = `package main

/*
want=6

1 2 3
*/
func (s testSolver) D1p1() any { return nil }

// want=14
func (s testSolver) D1p2() any { return nil }

func (s testSolver) D2p1() any { return nil }
`

func TestExtractSamples(t *testing.T) {
	fsys := fstest.MapFS{
		"day01.go":  {Data: []byte(testSource)},
		"notes.txt": {Data: []byte("want=1")},
	}
	got := extractSamples(fsys)
	want := map[string]sample{
		"D1p1": {want: "6", input: "1 2 3\n"},
		"D1p2": {want: "14", input: "1 2 3\n"},
	}
	if len(got) != len(want) {
		t.Fatalf("extractSamples = %+v, want %+v", got, want)
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("extractSamples[%s] = %+v, want %+v", k, got[k], w)
		}
	}
}

type testSolver struct {
	*Puzzle
}

// D1p1 sums the numbers.
func (s testSolver) D1p1() any {
	return Sum(IntsIn(s.Text())...)
}

// D1p2 sums the squares.
func (s testSolver) D1p2() any {
	total := 0
	for _, n := range IntsIn(s.Text()) {
		total += n * n
	}
	return total
}

func (s testSolver) D2p1() any {
	return "unused"
}

func TestCheckSamples(t *testing.T) {
	fsys := fstest.MapFS{"day01.go": {Data: []byte(testSource)}}
	got := CheckSamples(fsys, &testSolver{})
	want := []SampleResult{
		{Name: "D1p1", Got: "6", Want: "6"},
		{Name: "D1p2", Got: "14", Want: "14"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("CheckSamples = %+v, want %+v", got, want)
	}
	for _, r := range got {
		if !r.OK() {
			t.Errorf("%s not OK", r.Name)
		}
	}
}

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("extractMethods found %d days, want 2", len(days))
	}
	var parts []string
	for _, p := range days[1].parts {
		parts = append(parts, p.Part)
	}
	if !slices.Equal(parts, []string{"1", "2"}) {
		t.Errorf("day 1 parts = %v, want [1 2]", parts)
	}
	var order []int
	for _, d := range sortedDays(days) {
		order = append(order, d.day)
	}
	if !slices.Equal(order, []int{1, 2}) {
		t.Errorf("sortedDays = %v, want [1 2]", order)
	}
}

func TestTrimPrefix(t *testing.T) {
	if got := TrimPrefix("Program: 0,3,5", "Program: "); got != "0,3,5" {
		t.Errorf("TrimPrefix = %q, want %q", got, "0,3,5")
	}
}

func TestDebugging(t *testing.T) {
	defer func(v bool) { flagDebug = v }(flagDebug)
	tests := []struct {
		debug, sample, want bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for _, tt := range tests {
		flagDebug = tt.debug
		p := &Puzzle{SampleMode: tt.sample}
		if got := p.Debugging(); got != tt.want {
			t.Errorf("Debugging(debug=%v, sample=%v) = %v, want %v", tt.debug, tt.sample, got, tt.want)
		}
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf("Or = %q, want %q", got, "b")
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %d, want 0", got)
	}
}

func TestParallelMapFold(t *testing.T) {
	in := []int{1, 2, 3, 4}
	got := ParallelMapFold(in, func(v int) int { return v * v }, func(acc, v int) int { return acc + v }, 0)
	if got != 30 {
		t.Errorf("ParallelMapFold = %d, want 30", got)
	}
}
