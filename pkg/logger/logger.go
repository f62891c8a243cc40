// Package logger builds the zerolog logger used by the API process.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	Level   string
	Pretty  bool
	Service string
	Output  io.Writer
}

// New returns a logger writing JSON lines to opts.Output, or to stdout when
// it is nil. Pretty switches to console output for local runs.
func New(opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	return ctx.Logger(), nil
}

// ParseLevel accepts zerolog level names plus "warning". Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logger: unknown level %q", s)
	}
	return level, nil
}
