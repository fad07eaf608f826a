package log

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// Level is the severity of a log record.
type Level slog.Level

const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// DefaultLevel is the level of a logger made without [WithLevel].
const DefaultLevel = LevelInfo

var levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// Levels yields the name of every level, lowest first.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range levels {
			if !yield(l.String()) {
				return
			}
		}
	}
}

// String returns the lowercase level name. Levels between the named ones
// are rendered as an offset from the nearest lower name, e.g. "info+2".
func (l Level) String() string {
	if l < LevelDebug {
		return offset("trace", l-LevelTrace)
	}

	return strings.ToLower(slog.Level(l).String())
}

func offset(name string, n Level) string {
	if n == 0 {
		return name
	}

	return fmt.Sprintf("%s%+d", name, n)
}

// ParseLevel returns the level named by s, ignoring case. Anything
// [slog.Level.UnmarshalText] accepts is valid, plus "trace". Unrecognized
// names yield [DefaultLevel].
func ParseLevel(s string) Level {
	var l Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return l
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if strings.EqualFold(s, "trace") {
		*l = LevelTrace

		return nil
	}

	var sl slog.Level
	if err := sl.UnmarshalText([]byte(s)); err != nil {
		return err
	}

	*l = Level(sl)

	return nil
}

// Format is the encoding of a log record.
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

// DefaultFormat is the format of a logger made without [WithFormat].
const DefaultFormat = FormatJSON

var formatNames = []string{FormatJSON: "json", FormatText: "text"}

// Formats yields the name of every format.
func Formats() iter.Seq[string] {
	return slices.Values(formatNames)
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat returns the format named by s, ignoring case and surrounding
// space. Unrecognized names yield [DefaultFormat].
func ParseFormat(s string) Format {
	i := slices.Index(formatNames, strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return DefaultFormat
	}

	return Format(i)
}
