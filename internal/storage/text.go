package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// TextFile is a buffered output file. Writes go through a bufio.Writer and
// Close flushes before closing; both report failures.
type TextFile struct {
	path string
	file *os.File
	buf  *bufio.Writer
}

func CreateTextFile(path string) (*TextFile, error) {
	return CreateTextFileWithPerm(path, 0644)
}

func CreateTextFileWithPerm(path string, perm os.FileMode) (*TextFile, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	return &TextFile{
		path: path,
		file: file,
		buf:  bufio.NewWriter(file),
	}, nil
}

func (t *TextFile) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

func (t *TextFile) Close() error {
	flushErr := t.buf.Flush()
	closeErr := t.file.Close()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return fmt.Errorf("write file %s: %w", t.path, err)
	}
	return nil
}
