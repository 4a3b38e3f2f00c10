package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAMLFile is a yaml document on disk. Decoding is strict: keys that do not
// map to a field of the destination are reported, so a typo in a config
// key fails loudly instead of being ignored.
type YAMLFile struct {
	path string
}

func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

func (y *YAMLFile) Exists() bool {
	info, err := os.Stat(y.path)
	return err == nil && !info.IsDir()
}

// LoadOrCreate decodes the file into dest, leaving dest untouched when the
// file does not exist or is empty.
func (y *YAMLFile) LoadOrCreate(dest any) error {
	data, err := os.ReadFile(y.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read file: %w", err)
	}
	return decodeStrict(data, dest)
}

func (y *YAMLFile) SaveWithPerm(data any, perm os.FileMode) error {
	if dir := filepath.Dir(y.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if err := os.WriteFile(y.path, buf.Bytes(), perm); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func decodeStrict(data []byte, dest any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}
