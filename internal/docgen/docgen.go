package docgen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xmazu/envdoc/internal/envdoc"
	"github.com/xmazu/envdoc/internal/envfile"
	"github.com/xmazu/envdoc/internal/render"
)

// Source is one env file to document. Title is the section heading used
// when several sources go into the same document.
type Source struct {
	Path  string
	Title string
}

type Result struct {
	Files []FileResult
	Total envdoc.Stats
}

type FileResult struct {
	Source Source
	Stats  envdoc.Stats
}

// File writes the table for a single env file.
func File(w io.Writer, path string, opts ...envdoc.Option) (envdoc.Stats, error) {
	r, err := envfile.Open(path)
	if err != nil {
		return envdoc.Stats{}, err
	}
	defer r.Close()

	opts = append([]envdoc.Option{envdoc.WithSource(r.Path())}, opts...)
	stats, err := envdoc.Generate(r, w, opts...)
	if err != nil {
		return stats, fmt.Errorf("generate %s: %w", path, err)
	}
	return stats, nil
}

// Document writes the tables for sources in order. A single source produces
// a bare table; several sources each get a "## Title" section. Processing
// stops at the first error.
func Document(w io.Writer, sources []Source, opts ...envdoc.Option) (*Result, error) {
	res := &Result{}
	sections := len(sources) > 1

	for i, src := range sources {
		if sections {
			sep := ""
			if i > 0 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%s## %s\n\n", sep, src.Heading()); err != nil {
				return res, fmt.Errorf("write heading: %w", err)
			}
		}

		stats, err := File(w, src.Path, opts...)
		res.add(src, stats)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

// Write renders sources in the requested format. Markdown is streamed row by
// row; HTML is built from the complete markdown document.
func Write(w io.Writer, format render.Format, title string, sources []Source, opts ...envdoc.Option) (*Result, error) {
	if format != render.FormatHTML {
		return Document(w, sources, opts...)
	}

	var md bytes.Buffer
	res, err := Document(&md, sources, opts...)
	if err != nil {
		return res, err
	}
	if err := render.HTML(w, title, md.Bytes()); err != nil {
		return res, fmt.Errorf("render html: %w", err)
	}
	return res, nil
}

// Heading is the section title for s, falling back to its path.
func (s Source) Heading() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Path
}

func (r *Result) add(src Source, stats envdoc.Stats) {
	r.Files = append(r.Files, FileResult{Source: src, Stats: stats})
	r.Total.Lines += stats.Lines
	r.Total.Rows += stats.Rows
	r.Total.Skipped += stats.Skipped
	r.Total.SplitFailures += stats.SplitFailures
	r.Total.Discarded += stats.Discarded
}
