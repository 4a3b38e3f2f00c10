package envdoc

import (
	"io"
	"strings"
)

const separatorCell = "---------"

// HeaderLine is the column-name line of the table.
func HeaderLine() string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, s := range Slots() {
		sb.WriteString(" ")
		sb.WriteString(s.Title())
		sb.WriteString(" |")
	}
	return sb.String()
}

// SeparatorLine is the dashed line that follows the header.
func SeparatorLine() string {
	return "|" + strings.Repeat(" "+separatorCell+" |", slotCount)
}

// FormatRow renders a row as a single table line with a trailing newline.
// Cells are written as-is, without padding around the pipes.
func FormatRow(r Row) string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, slot := range Slots() {
		sb.WriteString(r.Get(slot))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	return sb.String()
}

// WriteHeader writes the header and separator lines.
func WriteHeader(w io.Writer) error {
	_, err := io.WriteString(w, HeaderLine()+"\n"+SeparatorLine()+"\n")
	return err
}
