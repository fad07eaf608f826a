// Package log is the structured logger used by kelm.
//
// It wraps [log/slog] with a small set of functional options applied when a
// [Logger] is made. A [Logger] is an immutable value: [Logger.Wrap] and
// [Logger.With] return new loggers and never modify the receiver, so a
// logger may be shared freely between goroutines.
//
// # Levels
//
// Besides the four slog levels, the package adds [LevelTrace] below
// [LevelDebug]. Generated code is never logged at a level above trace.
//
// # Output
//
// Records are written as JSON ([FormatJSON], the default) or logfmt-style
// text ([FormatText]). With [WithPretty] both formats are colorized for a
// terminal and JSON records are indented.
//
// # Package logger
//
// The package-level functions ([Debug], [Info], and the rest) write through
// a default logger on standard error, reconfigured with [Config]:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatText))
//	log.Debug("registered language", slog.String("language", "elm"))
package log
