package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the shared logger at the given level name.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakegl",
		Level:           lvl,
	}), nil
}
