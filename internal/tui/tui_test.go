package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutputPath(t *testing.T) {
	for in, wantErr := range map[string]bool{
		"":                         false,
		"docs/env.md":              false,
		"environment-variables.md": false,
		"docs/":                    true,
	} {
		err := validateOutputPath(in)
		assert.Equal(t, wantErr, err != nil, "validateOutputPath(%q) = %v", in, err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewLogger(&buf, false)
	quiet.Debug("hidden")
	quiet.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	NewLogger(&buf, true).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestStylesKeepText(t *testing.T) {
	for _, s := range []string{Success("ok"), Warning("ok"), Error("ok"), Muted("ok"), Label("ok")} {
		assert.Contains(t, s, "ok")
	}
}
