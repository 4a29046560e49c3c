// Package xtab derives crosstab query bindings and lays out crosstab headers.
package xtab

import (
	"os"

	"github.com/perNyfelt/birt/pkg/xtab/logger"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Options configures a Service.
type Options struct {
	// Locale selects the language of user-facing error messages (e.g. "en", "de").
	Locale string `yaml:"locale"`
	// LogLevel is one of err, warn, info, debug, off.
	LogLevel string `yaml:"logLevel"`
	// LogFormat is one of auto, terminal, text.
	LogFormat logger.Format `yaml:"logFormat"`
	// Pretty indents JSON output.
	Pretty bool `yaml:"pretty"`
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Locale:    "en",
		LogLevel:  "info",
		LogFormat: logger.FormatAuto,
	}
}

// LoadOptions reads a YAML options file. Keys missing from the file keep their defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "failed to parse options %s", path)
	}
	switch opts.LogFormat {
	case logger.FormatAuto, logger.FormatTerminal, logger.FormatText:
	default:
		return opts, errors.Errorf("invalid log format: %s (must be auto, terminal, or text)", opts.LogFormat)
	}
	return opts, nil
}
