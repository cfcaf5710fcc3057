package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds a timestamped logger at the named level. An empty level
// uses Debug.LogLevel.
func NewLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	if level == "" {
		level = Debug.LogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, nil
}
