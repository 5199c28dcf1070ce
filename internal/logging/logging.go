// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Options configures the logger
type Options struct {
	Level  string    // trace, debug, info, warn, error, off
	Debug  bool      // forces debug level
	File   string    // log file, used when Output is nil
	Output io.Writer // explicit destination, e.g. os.Stderr
}

// New creates the root logger. The returned closer releases the log file,
// if one was opened.
func New(opts Options) (hclog.Logger, io.Closer, error) {
	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	if opts.Debug {
		level = hclog.Debug
	}

	out := opts.Output
	var closer io.Closer = nopCloser{}
	if out == nil {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: out,
		Level:  level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
