// Package aoc is a small runner for Advent of Code solutions, plus the
// grid, graph and container helpers they lean on. (forked from
// maisem/aoc, which was forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
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
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples reads the want= comments of every .go file in sources.
// A sample without an input reuses the input of the previous sample in the
// same file, so part 2 can share the part 1 input.
func extractSamples(sources fs.FS) map[string]sample {
	names, err := fs.Glob(sources, "*.go")
	if err != nil {
		log.Fatal().Err(err).Msg("listing solution sources")
	}
	samples := make(map[string]sample)
	for _, name := range names {
		src := MustGet(fs.ReadFile(sources, name))
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("parsing source to extract samples")
		}
		var lastInput string
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
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

// Text returns the input with trailing newlines removed.
func (p *Puzzle) Text() string {
	return strings.TrimRight(string(p.Input()), "\n")
}

// Lines returns the input split into lines.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// Sections returns the blank-line separated blocks of the input.
func (p *Puzzle) Sections() []string {
	return strings.Split(p.Text(), "\n\n")
}

// Grid returns the input as a grid of bytes.
func (p *Puzzle) Grid() Grid[byte] {
	return ParseGrid(p.Lines())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		log.Debug().Str("part", p.solver.Name).Msg(fmt.Sprint(v...))
	}
}

// Debugging reports whether Debugf output is shown: -debug is set and the
// part is running on its sample.
func (p *Puzzle) Debugging() bool {
	return flagDebug && p.SampleMode
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.Debugging() {
		log.Debug().Str("part", p.solver.Name).Msgf(format, args...)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatal().Msgf("no sample found for %v", p.solver.Name)
	}
	return sample
}

func (p *Puzzle) hasSample() bool {
	_, ok := p.samples[p.solver.Name]
	return ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatal().Msgf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i).Interface().(func() any)
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
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
	return days
}

func sortedDays(days map[int]day) []day {
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	out := make([]day, 0, len(dayNums))
	for _, d := range dayNums {
		out = append(out, days[d])
	}
	return out
}

var (
	flagCurDay     int
	flagPart       string
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
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
})

// setPuzzle points the solver's embedded *Puzzle at p.
func setPuzzle(slvr any, p *Puzzle) {
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	setPuzzle(slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && (flagSkipSample || !p.hasSample()) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					log.Warn().Str("part", ps.Name).Msg("sample mismatch; skipping real input")
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run runs the solutions registered on slvr for the given year. sources
// holds the solution files; their want= comments supply the samples.
func Run(year int, sources fs.FS, slvr any) {
	samples := extractSamples(sources)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatal().Msgf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	for _, day := range sortedDays(days) {
		runDay(slvr, year, day, samples)
		fmt.Println()
	}
}

// SampleResult is the outcome of running one part against its sample.
type SampleResult struct {
	Name string
	Got  string
	Want string
}

func (r SampleResult) OK() bool {
	return r.Got == r.Want
}

// CheckSamples runs every part that has a want= sample, without touching
// the network, and reports what each returned.
func CheckSamples(sources fs.FS, slvr any) []SampleResult {
	samples := extractSamples(sources)
	var out []SampleResult
	for _, d := range sortedDays(extractMethods(slvr)) {
		p := &Puzzle{
			day:        d,
			samples:    samples,
			SampleMode: true,
		}
		setPuzzle(slvr, p)
		for _, ps := range d.parts {
			p.solver = ps
			if !p.hasSample() {
				continue
			}
			out = append(out, SampleResult{
				Name: ps.Name,
				Got:  fmt.Sprint(ps.fn()),
				Want: p.Sample().want,
			})
		}
	}
	return out
}

// session returns the adventofcode.com session cookie. AOC_SESSION (from
// the environment or a .env file) wins over ~/keys/aoc.session.
var session = sync.OnceValue(func() string {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("loading .env")
	}
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != 200 {
		log.Fatal().Str("url", req.URL.String()).Msgf("bad status: %v", res.Status)
	}
	return res
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	log.Info().Str("url", url).Str("file", filename).Msg("fetching")
	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	res := doRequest(request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatal().Msgf("bad prefix: %q", s)
	}
	return s1
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
