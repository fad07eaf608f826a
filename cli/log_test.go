package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/kelm/log"
)

func TestLogConfig_Scan(t *testing.T) {
	saved := log.Default()
	t.Cleanup(func() { log.SetDefault(saved) })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate values",
			args: []string{"collate", "--log-level", "debug", "--log-format", "text", "x.md"},
			want: logConfig{Level: "debug", Format: "text"},
		},
		{
			name: "assigned values",
			args: []string{"--log-level=WARN", "--log-time-layout=kitchen"},
			want: logConfig{Level: "warn", TimeLayout: "kitchen"},
		},
		{
			name: "booleans",
			args: []string{"--log-caller", "--no-log-pretty"},
			want: logConfig{Caller: true, Pretty: false},
		},
		{
			name: "assigned booleans",
			args: []string{"--log-caller=false", "--no-log-pretty=false"},
			want: logConfig{Caller: false, Pretty: true},
		},
		{
			name: "value missing",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Caller: true},
		},
		{
			name: "stops at terminator",
			args: []string{"--", "--log-level=error"},
			want: logConfig{},
		},
		{
			name: "invalid level ignored",
			args: []string{"--log-level=loud"},
			want: logConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got logConfig

			got.scan(tt.args)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogConfig_ScanConfiguresLogger(t *testing.T) {
	saved := log.Default()
	t.Cleanup(func() { log.SetDefault(saved) })

	var f logConfig

	f.scan([]string{"--log-level=trace", "--log-format=text"})

	assert.Equal(t, log.LevelTrace, log.Default().Level())
	assert.Equal(t, log.FormatText, log.Default().Format())
}

func TestLogConfig_Vars(t *testing.T) {
	vars := (&logConfig{}).vars()

	assert.Equal(t, "info", vars["logLevel"])
	assert.Equal(t, "trace,debug,info,warn,error", vars["logLevels"])
	assert.Equal(t, "json", vars["logFormat"])
	assert.Equal(t, "json,text", vars["logFormats"])
}
