package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xmazu/envdoc/internal/render"
	"github.com/xmazu/envdoc/internal/storage"
)

const (
	FileName = ".envdoc.yaml"

	OutputEnv = "ENVDOC_OUTPUT"
	FormatEnv = "ENVDOC_FORMAT"

	DefaultInput  = ".env"
	DefaultOutput = "environment-variables.md"
)

var ErrInvalidFormat = errors.New("invalid output format")

// Config is the workspace configuration stored in .envdoc.yaml.
type Config struct {
	Input   string   `yaml:"input,omitempty"`
	Output  string   `yaml:"output,omitempty"`
	Format  string   `yaml:"format,omitempty"`
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

func Default() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Format: string(render.FormatMarkdown),
	}
}

func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

func Exists(dir string) bool {
	return storage.NewYAMLFile(Path(dir)).Exists()
}

// Load reads .envdoc.yaml from dir on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()
	if err := storage.NewYAMLFile(Path(dir)).LoadOrCreate(cfg); err != nil {
		return nil, fmt.Errorf("load %s: %w", FileName, err)
	}
	cfg.applyEnv()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(dir string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return storage.NewYAMLFile(Path(dir)).SaveWithPerm(cfg, 0644)
}

func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(OutputEnv); v != "" {
		c.Output = v
	}
	if v := os.Getenv(FormatEnv); v != "" {
		c.Format = v
	}
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Format == "" {
		c.Format = d.Format
	}
}
