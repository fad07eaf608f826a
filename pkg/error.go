package pkg

import (
	"errors"
	"log/slog"
	"strings"
)

// Error is an immutable error value carrying a message, an optional wrapped
// cause, and attributes for structured logging.
//
// Sentinel values are declared with [NewError] and specialized at the call
// site with [Error.Wrap] and [Error.With]. Because both return a new value
// that shares the sentinel's message, callers compare with [errors.Is]
// through [Error.Is].
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
	base  *Error
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.base = e

	return e
}

// WrapError converts err into an *Error, returning err itself if it already
// is one.
func WrapError(err error) *Error {
	var ee *Error
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

func (e *Error) Error() string {
	// Build error message using the first available format:
	//
	//   1. "<msg>: <err>"
	//   2. "<msg>"
	//   3. "<err>"
	//   4. ""
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}

	return e.base != nil && e.base == t.base
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attrs returns a copy of the attributes attached with [Error.With].
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// Wrap returns a new Error wrapping err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
		base:  e.base,
	}
}

// With returns a new Error with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		base:  e.base,
	}
}

// Sentinel errors shared across packages.
var (
	ErrUnknownLanguage = NewError("unknown language")
	ErrParseWorkbook   = NewError("parse workbook")
	ErrFrontMatter     = NewError("invalid front matter")
	ErrCompileSelector = NewError("compile block selector")
	ErrEvalSelector    = NewError("evaluate block selector")
	ErrShapeMismatch   = NewError("initial value does not conform to shape")
	ErrReadInput       = NewError("failed to read input")
	ErrWriteArtifact   = NewError("write artifact")
	ErrWriteConfig     = NewError("write configuration file")
	ErrFileExists      = NewError("file exists (use --force to overwrite)")
	ErrInvalidFormat   = NewError("invalid format")
)
