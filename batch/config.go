package batch

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures a batch run.
type Config struct {
	// InputDir is the directory scanned for PDF files. Default: "input"
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives one JSON file per processed PDF. Default: "output"
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Workers is the number of documents processed concurrently. Default: 4
	Workers int `json:"workers" yaml:"workers"`

	// Recursive walks subdirectories of InputDir as well.
	Recursive bool `json:"recursive" yaml:"recursive"`

	// SkipPreflight disables the pdfcpu structural check that normally runs
	// before extraction. Preflight failures name the actual problem with a
	// file (encryption, corrupt xref) where the text readers just report a
	// parse error.
	SkipPreflight bool `json:"skip_preflight" yaml:"skip_preflight"`

	// Logger for per-document progress and errors.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.InputDir == "" {
		c.InputDir = "input"
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// LoadConfig reads a Config from a YAML file. Fields absent from the file
// keep their zero values and are filled in by defaults when the Processor
// is created.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
