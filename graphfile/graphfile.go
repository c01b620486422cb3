// Package graphfile loads a core.Graph from the wayfind text description
// format: one edge per line, shaped
//
//	('A', 'B', 3, [0, 0], [4, 5])
//
// meaning an undirected edge A—B of weight 3 with A at (0, 0) and B at
// (4, 5). Weight and coordinates are integers.
//
// Lines are validated by a strict tokenizer — input is never evaluated as
// code. A malformed line is skipped with a structured-log diagnostic and
// loading continues; WithStrict turns any malformed line into a fatal
// ErrMalformedLine instead.
package graphfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/wayfind/core"
)

// ErrMalformedLine indicates a description line that does not match the
// edge format. In the default lenient mode it is only ever seen inside
// diagnostics; with WithStrict it aborts the load.
var ErrMalformedLine = errors.New("graphfile: malformed line")

// lineRE captures nodeA, nodeB, weight, [xA, yA], [xB, yB].
// Coordinates may be negative; weights may not.
var lineRE = regexp.MustCompile(
	`^\(\s*'([^']+)'\s*,\s*'([^']+)'\s*,\s*(\d+)\s*,\s*\[\s*(-?\d+)\s*,\s*(-?\d+)\s*\]\s*,\s*\[\s*(-?\d+)\s*,\s*(-?\d+)\s*\]\s*\)$`)

// Option configures loading behavior.
type Option func(*options)

type options struct {
	logger *slog.Logger
	strict bool
}

// WithLogger routes skip diagnostics to the given logger instead of
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrict makes any malformed line fatal (ErrMalformedLine) rather than
// skipped.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Load reads the description file at path and builds its graph.
func Load(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads edge lines from r and builds a graph. Blank lines are
// ignored; malformed lines are handled per the lenient/strict option.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph()
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := parseLine(g, line); err != nil {
			if o.strict {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
			}
			o.logger.Warn("graphfile: skipping malformed line",
				slog.Int("line", lineNo),
				slog.String("text", line),
				slog.String("reason", err.Error()))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphfile: read: %w", err)
	}

	return g, nil
}

// parseLine tokenizes one edge line and inserts it into g.
func parseLine(g *core.Graph, line string) error {
	m := lineRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return ErrMalformedLine
	}

	weight, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: weight %q", ErrMalformedLine, m[3])
	}
	xA, _ := strconv.Atoi(m[4])
	yA, _ := strconv.Atoi(m[5])
	xB, _ := strconv.Atoi(m[6])
	yB, _ := strconv.Atoi(m[7])

	u := core.Node{ID: m[1], X: xA, Y: yA}
	v := core.Node{ID: m[2], X: xB, Y: yB}
	if err := g.AddEdge(u, v, weight); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return nil
}

