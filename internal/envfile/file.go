package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrNotFound = errors.New("env file not found")

// Reader yields the raw lines of an env file in order, without their line
// terminators. Lines have no length limit. It satisfies envdoc.LineSource.
type Reader struct {
	path   string
	closer io.Closer
	buf    *bufio.Reader
	line   string
	num    int
	err    error
	done   bool
}

func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}

	r := NewReader(file)
	r.path = path
	r.closer = file
	return r, nil
}

func NewReader(src io.Reader) *Reader {
	return &Reader{buf: bufio.NewReader(src)}
}

func (r *Reader) Scan() bool {
	if r.done {
		return false
	}

	line, err := r.buf.ReadString('\n')
	if err != nil {
		r.done = true
		if !errors.Is(err, io.EOF) {
			r.err = err
			return false
		}
		// a final line without a terminator still counts
		if line == "" {
			return false
		}
	}

	line = strings.TrimSuffix(line, "\n")
	r.line = strings.TrimSuffix(line, "\r")
	r.num++
	return true
}

func (r *Reader) Text() string {
	return r.line
}

func (r *Reader) Err() error {
	if r.err == nil {
		return nil
	}
	if r.path != "" {
		return fmt.Errorf("failed to read %s at line %d: %w", r.path, r.num+1, r.err)
	}
	return fmt.Errorf("failed to read line %d: %w", r.num+1, r.err)
}

// Path is the file the reader was opened on, empty for NewReader.
func (r *Reader) Path() string {
	return r.path
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
