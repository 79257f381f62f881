package series

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/tsplot"
	"github.com/gogpu/tsplot/geom"
)

// stepDirective introduces a line that changes the x increment.
const stepDirective = "step"

// DefaultStep is the x increment before any step directive.
const DefaultStep = 1.0

// Stdin is the path that ReadFile maps to standard input.
const Stdin = "-"

// lineParser turns source lines into samples.
type lineParser struct {
	source string
	b      *Builder
	step   float64
	x      float64
}

func newLineParser(source string, window int) *lineParser {
	return &lineParser{
		source: source,
		b:      NewBuilder(window).SetName(source),
		step:   DefaultStep,
	}
}

// line handles one input line. n is its 1-based number.
func (p *lineParser) line(n int, text string) error {
	trimmed := strings.TrimSpace(text)

	if rest, ok := strings.CutPrefix(trimmed, stepDirective); ok {
		step, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return &ParseError{Source: p.source, Line: n, Text: text, Err: err}
		}
		p.step = step
		return nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return &ParseError{Source: p.source, Line: n, Text: text, Err: err}
	}

	p.x += p.step
	p.b.Push(geom.Point{X: p.x, Y: v})
	return nil
}

func (p *lineParser) complete() *Series {
	s := p.b.Complete()
	tsplot.Logger().Debug("series loaded", "source", p.source, "samples", s.Len())
	return s
}

// Parse reads a series from r. window configures the running average; zero
// or less disables it. Any line that is not a float or a step directive
// aborts parsing with a *ParseError.
func Parse(r io.Reader, window int) (*Series, error) {
	return parseNamed(r, "", window)
}

func parseNamed(r io.Reader, source string, window int) (*Series, error) {
	p := newLineParser(source, window)

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if err := p.line(n, sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return p.complete(), nil
}

// ReadFile loads a series from path. The path "-" reads standard input and
// .xlsx or .xlsm paths are read as workbooks.
func ReadFile(path string, window int) (s *Series, err error) {
	if path == Stdin {
		return parseNamed(os.Stdin, "stdin", window)
	}

	if IsWorkbook(path) {
		return ReadWorkbook(path, window)
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return parseNamed(f, path, window)
}

// ReadFiles loads every path in order and stops at the first error.
func ReadFiles(paths []string, window int) ([]*Series, error) {
	out := make([]*Series, 0, len(paths))
	for _, path := range paths {
		s, err := ReadFile(path, window)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// IsWorkbook reports whether path names a spreadsheet source.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}
