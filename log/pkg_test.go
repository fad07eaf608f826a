package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackageFunctions(t *testing.T) {
	saved := Default()
	t.Cleanup(func() { SetDefault(saved) })

	var buf bytes.Buffer

	SetDefault(Make(&buf))

	l := Config(WithLevel(LevelTrace), WithPretty(false), WithCaller(true))
	if l.Level() != LevelTrace || Default().Level() != LevelTrace {
		t.Fatalf("Config() did not replace the package logger")
	}

	tests := []struct {
		fn    func(string, ...slog.Attr)
		level string
	}{
		{Trace, "TRACE"},
		{Debug, "DEBUG"},
		{Info, "INFO"},
		{Warn, "WARN"},
		{Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			out := buf.String()
			for _, want := range []string{
				`"level":"` + tt.level + `"`,
				`"key":"value"`,
				"pkg_test.go",
			} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %s: %s", want, out)
				}
			}
		})
	}

	buf.Reset()
	With(slog.String("lang", "elm")).Info("scoped")

	if !strings.Contains(buf.String(), `"lang":"elm"`) {
		t.Errorf("With() attrs missing: %s", buf.String())
	}
}
