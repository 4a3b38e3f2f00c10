package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
)

func Success(text string) string {
	return SuccessStyle.Render(text)
}

func Warning(text string) string {
	return WarningStyle.Render(text)
}

func Error(text string) string {
	return ErrorStyle.Render(text)
}

func Muted(text string) string {
	return MutedStyle.Render(text)
}

func Label(text string) string {
	return LabelStyle.Render(text)
}

// NewLogger returns the diagnostics logger: warnings by default, debug
// output when verbose.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "envdoc",
	})
}
