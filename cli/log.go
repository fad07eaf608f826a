package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/kelm/log"
)

// logLevel reconfigures the package logger as soon as kong decodes it, so
// the level applies to messages logged while parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	var level log.Level
	if err := level.UnmarshalText(text); err != nil {
		return err
	}

	*l = logLevel(level.String())
	log.Config(log.WithLevel(level))

	return nil
}

// logFormat reconfigures the package logger as soon as kong decodes it.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	format := log.ParseFormat(string(text))

	*f = logFormat(format.String())
	log.Config(log.WithFormat(format))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"${logLevel}"  enum:"${logLevels}"  help:"Set log level (${enum})."`
	Format     logFormat `default:"${logFormat}" enum:"${logFormats}" help:"Set log format (${enum})."`
	TimeLayout string    `default:"RFC3339"                          help:"Set timestamp layout, or none."`
	Caller     bool      `default:"false"                            help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                             help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevel":   log.DefaultLevel.String(),
		"logLevels":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormat":  log.DefaultFormat.String(),
		"logFormats": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// options returns the logger configuration described by f.
func (f *logConfig) options() []log.Option {
	return []log.Option{
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	}
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(f.options()...)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags found in args before kong parses them. Kong
// decodes flags in command-line order and reports errors as it goes, so
// without the scan a --log-format given after a bad argument would not
// apply to the resulting error. Scanning stops at "--".
func (f *logConfig) scan(args []string) {
	var opts []log.Option

	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			break
		}

		name, value, assigned := strings.Cut(args[i], "=")

		// Flags taking a value consume the next argument unless assigned
		// with "=".
		next := func() (string, bool) {
			if assigned {
				return value, true
			}

			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++

				return args[i], true
			}

			return "", false
		}

		// Boolean flags are set unless assigned an explicit false value.
		enabled := func() (bool, bool) {
			if !assigned {
				return true, true
			}

			b, err := strconv.ParseBool(value)

			return b, err == nil
		}

		switch name {
		case "--log-level":
			if v, ok := next(); ok {
				_ = f.Level.UnmarshalText([]byte(v))
			}

		case "--log-format":
			if v, ok := next(); ok {
				_ = f.Format.UnmarshalText([]byte(v))
			}

		case "--log-time-layout":
			if v, ok := next(); ok {
				f.TimeLayout = v
				opts = append(opts, log.WithTimeLayout(v))
			}

		case "--log-caller", "--no-log-caller":
			if b, ok := enabled(); ok {
				f.Caller = b == (name == "--log-caller")
				opts = append(opts, log.WithCaller(f.Caller))
			}

		case "--log-pretty", "--no-log-pretty":
			if b, ok := enabled(); ok {
				f.Pretty = b == (name == "--log-pretty")
				opts = append(opts, log.WithPretty(f.Pretty))
			}
		}
	}

	if len(opts) > 0 {
		log.Config(opts...)
	}
}
