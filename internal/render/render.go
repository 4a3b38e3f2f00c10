package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want markdown or html)", s)
	}
}

// newEngine renders GFM tables and linkifies bare URLs in the Docs column.
// Raw HTML in cells stays escaped.
func newEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Linkify),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// HTML converts a markdown document to a standalone HTML page.
func HTML(w io.Writer, title string, markdown []byte) error {
	var body bytes.Buffer
	if err := newEngine().Convert(markdown, &body); err != nil {
		return fmt.Errorf("markdown convert: %w", err)
	}

	_, err := fmt.Fprintf(w, pageTemplate, html.EscapeString(title), body.String())
	return err
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`
