package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flag(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestResolveYAML(t *testing.T) {
	doc := `
log-level: debug
log_format: text
log:
  caller: true
  time_layout: kitchen
retries: 3
ratio: 0.5
langs: [elm, css]
empty:
`

	r, err := resolveYAML(strings.NewReader(doc))
	require.NoError(t, err)

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "text"},
		{"log-caller", true},
		{"log-time-layout", "kitchen"},
		{"retries", "3"},
		{"ratio", "0.5"},
		{"langs", []any{"elm", "css"}},
		{"empty", nil},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := r.Resolve(nil, nil, flag(tt.flag))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.NoError(t, r.Validate(nil))
}

func TestResolveYAML_Empty(t *testing.T) {
	r, err := resolveYAML(strings.NewReader(""))
	require.NoError(t, err)

	got, err := r.Resolve(nil, nil, flag("log-level"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveYAML_Invalid(t *testing.T) {
	_, err := resolveYAML(strings.NewReader("log: [unterminated"))
	assert.Error(t, err)
}
