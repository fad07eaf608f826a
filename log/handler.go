package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// handler builds the slog handler for c.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.caller,
		Level:       slog.Level(c.level),
		ReplaceAttr: c.replace,
	}

	switch {
	case c.format != FormatJSON && c.format != FormatText:
		return slog.DiscardHandler
	case c.pretty:
		return &prettyHandler{
			json:   c.format == FormatJSON,
			level:  opts.Level,
			caller: c.caller,
			layout: c.layout,
			mu:     &sync.Mutex{},
			w:      c.output,
		}
	case c.format == FormatText:
		return slog.NewTextHandler(c.output, opts)
	default:
		return slog.NewJSONHandler(c.output, opts)
	}
}

// replace applies the configured time layout and renders levels by name so
// that trace records read "TRACE" instead of "DEBUG-4".
func (c config) replace(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		if c.layout == "" {
			return slog.Attr{}
		}

		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(c.layout))
		}

	case slog.LevelKey:
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToUpper(Level(l).String()))
		}
	}

	return a
}

// Terminal colors used by the pretty handler.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

type field struct {
	key string
	val slog.Value
}

// prettyHandler writes colorized records, either as key=value text or as
// indented JSON. Groups are flattened into dotted keys.
type prettyHandler struct {
	json   bool
	level  slog.Leveler
	caller bool
	layout string
	mu     *sync.Mutex
	w      io.Writer
	prefix string
	attrs  []field
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = slices.Clip(h.attrs)

	for _, a := range attrs {
		c.attrs = flatten(c.attrs, h.prefix, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]field, 0, 4+len(h.attrs)+r.NumAttrs())

	if h.layout != "" && !r.Time.IsZero() {
		fields = append(fields,
			field{slog.TimeKey, slog.StringValue(r.Time.Format(h.layout))})
	}

	fields = append(fields, field{slog.LevelKey, slog.AnyValue(r.Level)})

	if h.caller {
		if src := r.Source(); src != nil && src.File != "" {
			loc := fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line)
			fields = append(fields, field{slog.SourceKey, slog.StringValue(loc)})
		}
	}

	fields = append(fields, field{slog.MessageKey, slog.StringValue(r.Message)})
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = flatten(fields, h.prefix, a)

		return true
	})

	var buf bytes.Buffer

	if h.json {
		writeJSON(&buf, fields)
	} else {
		writeText(&buf, fields)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func flatten(dst []field, prefix string, a slog.Attr) []field {
	v := a.Value.Resolve()

	if v.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range v.Group() {
			dst = flatten(dst, prefix, g)
		}

		return dst
	}

	if a.Key == "" {
		return dst
	}

	return append(dst, field{prefix + a.Key, v})
}

func writeText(buf *bytes.Buffer, fields []field) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}

		color, text := paint(f.val, false)

		buf.WriteString(colorGray + f.key + colorReset + "=")
		buf.WriteString(color + text + colorReset)
	}

	buf.WriteByte('\n')
}

func writeJSON(buf *bytes.Buffer, fields []field) {
	buf.WriteString("{")

	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		color, text := paint(f.val, true)

		buf.WriteString("\n  " + colorGray + strconv.Quote(f.key) + colorReset + ": ")
		buf.WriteString(color + text + colorReset)
	}

	buf.WriteString("\n}\n")
}

// paint returns the color and text of v. With quote set, the text is a
// valid JSON value.
func paint(v slog.Value, quote bool) (color, text string) {
	str := func(s string) string {
		if quote {
			return strconv.Quote(s)
		}

		return s
	}

	switch v.Kind() {
	case slog.KindString:
		return colorCyan, str(v.String())

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return colorYellow, v.String()

	case slog.KindBool:
		if v.Bool() {
			return colorGreen, "true"
		}

		return colorRed, "false"

	case slog.KindDuration:
		return colorMagenta, str(v.Duration().String())

	case slog.KindTime:
		return colorBlue, str(v.Time().Format(time.RFC3339Nano))
	}

	switch x := v.Any().(type) {
	case nil:
		return colorGray, "null"

	case slog.Level:
		return levelColor(x), str(strings.ToUpper(Level(x).String()))

	case error:
		return colorRed, str(x.Error())

	case fmt.Stringer:
		return colorCyan, str(x.String())
	}

	if quote {
		if b, err := json.Marshal(v.Any()); err == nil {
			return colorCyan, string(b)
		}
	}

	return colorCyan, str(fmt.Sprint(v.Any()))
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return colorRed
	case l >= slog.LevelWarn:
		return colorYellow
	case l >= slog.LevelInfo:
		return colorGreen
	default:
		return colorBlue
	}
}
