package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptOutputPath asks where generated documentation should be written.
// An empty answer keeps def.
func PromptOutputPath(def string) (string, error) {
	var result string
	err := huh.NewInput().
		Title("Where should the documentation be written?").
		Placeholder(def).
		Value(&result).
		Validate(validateOutputPath).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	if strings.TrimSpace(result) == "" {
		return def, nil
	}
	return strings.TrimSpace(result), nil
}

func validateOutputPath(s string) error {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "/") {
		return errors.New("enter a file path, not a directory")
	}
	return nil
}
