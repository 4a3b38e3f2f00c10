package envdoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// LineSource yields raw lines in order. *bufio.Scanner satisfies it.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// Stats summarizes one generator run.
type Stats struct {
	Lines         int
	Rows          int
	Skipped       int
	SplitFailures int
	// Discarded counts annotation lines left pending at end of input.
	Discarded int
}

type Option func(*Generator)

// WithLogger routes diagnostics (split failures, discarded annotations)
// to l. Without it the generator is silent.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSource labels diagnostics with the name of the input being read.
func WithSource(name string) Option {
	return func(g *Generator) {
		g.source = name
	}
}

// Generator turns annotated .env lines into table rows. A Generator owns its
// accumulator and must not be shared between goroutines.
type Generator struct {
	logger  *log.Logger
	source  string
	acc     Accumulator
	stats   Stats
	pending int
}

func New(opts ...Option) *Generator {
	g := &Generator{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset drops any pending annotations and statistics.
func (g *Generator) Reset() {
	g.acc.Clear()
	g.stats = Stats{}
	g.pending = 0
}

// Stats returns the counters accumulated since the last Reset.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Process consumes one raw line. It returns the completed row and true when
// the line was a variable declaration; annotation and blank lines return false.
func (g *Generator) Process(raw string) (Row, bool) {
	g.stats.Lines++
	if IsBlank(raw) {
		g.stats.Skipped++
		return Row{}, false
	}

	kind, content := Classify(raw)
	if slot, ok := kind.Slot(); ok {
		g.acc.Add(slot, content)
		g.pending++
		return Row{}, false
	}

	if key, value, ok := strings.Cut(content, "="); ok {
		g.acc.Add(SlotEnvVariable, key)
		g.acc.Add(SlotDefaultValue, value)
	} else {
		g.stats.SplitFailures++
		g.logger.Debug("variable line has no '=', emitting row without key",
			"source", g.source, "line", g.stats.Lines, "content", content)
	}

	row := g.acc.Row()
	g.acc.Clear()
	g.pending = 0
	g.stats.Rows++
	return row, true
}

// Finish closes the current input. Annotations with no variable line after
// them are dropped.
func (g *Generator) Finish() Stats {
	if g.pending > 0 {
		g.stats.Discarded += g.pending
		g.logger.Debug("discarding trailing annotations",
			"source", g.source, "count", g.pending)
	}
	g.acc.Clear()
	g.pending = 0
	return g.stats
}

// Run writes the table header and one row per variable line of src to w.
// Each row is written as soon as it is complete. Read and write failures
// abort the run.
func (g *Generator) Run(src LineSource, w io.Writer) (Stats, error) {
	g.Reset()

	if err := WriteHeader(w); err != nil {
		return g.stats, fmt.Errorf("write header: %w", err)
	}

	for src.Scan() {
		row, ok := g.Process(src.Text())
		if !ok {
			continue
		}
		if _, err := io.WriteString(w, FormatRow(row)); err != nil {
			return g.stats, fmt.Errorf("write row %d: %w", g.stats.Rows, err)
		}
	}
	if err := src.Err(); err != nil {
		return g.stats, fmt.Errorf("read lines: %w", err)
	}

	return g.Finish(), nil
}

// Generate runs a fresh Generator over src.
func Generate(src LineSource, w io.Writer, opts ...Option) (Stats, error) {
	return New(opts...).Run(src, w)
}
