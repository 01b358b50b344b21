package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pdfcomposer/go-pdfcomposer/internal/yamlutil"
)

// fileConfig mirrors the command-line flags in YAML form. Explicit flags
// take precedence over config file values.
type fileConfig struct {
	Out         string   `yaml:"out"`
	Paper       string   `yaml:"paper"`
	Orientation string   `yaml:"orientation"`
	Margins     string   `yaml:"margins"`
	Font        string   `yaml:"font"`
	PDFVersion  string   `yaml:"pdf_version"`
	Meta        []string `yaml:"meta"`
	Workers     int      `yaml:"workers"`
	Timeout     string   `yaml:"timeout"`
}

// loadConfig reads and strictly decodes a YAML config file. Unknown keys
// are an error so typos surface instead of being ignored.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfig fills in flag values the user did not set explicitly.
// changed reports whether a flag was given on the command line.
func applyConfig(f *cliFlags, cfg *fileConfig, changed func(name string) bool) error {
	if cfg.Out != "" && !changed("out") {
		f.output = cfg.Out
	}
	if cfg.Paper != "" && !changed("paper") {
		f.paper = cfg.Paper
	}
	if cfg.Orientation != "" && !changed("orientation") {
		f.orientation = cfg.Orientation
	}
	if cfg.Margins != "" && !changed("margins") {
		f.margins = cfg.Margins
	}
	if cfg.Font != "" && !changed("font") {
		f.font = cfg.Font
	}
	if cfg.PDFVersion != "" && !changed("pdf-version") {
		f.pdfVersion = cfg.PDFVersion
	}
	if len(cfg.Meta) > 0 && !changed("meta") {
		f.meta = cfg.Meta
	}
	if cfg.Workers > 0 && !changed("workers") {
		f.workers = cfg.Workers
	}
	if cfg.Timeout != "" && !changed("timeout") {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("config timeout: %w", err)
		}
		f.timeout = d
	}
	return nil
}
