package app

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/conveyor/internal/config"
)

// newLogger builds the process logger from the log settings of cfg. Routes go
// to the output writer; everything logged here goes to w, so the two streams
// never interleave. Settings that config.Validate would reject are an error.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "app: logger")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, errors.Wrapf(err, "app: log level %q", cfg.LogLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
