package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/kelm/log"
	"github.com/ardnew/kelm/pkg"
	"github.com/ardnew/kelm/profile"
)

// configMode is the permission mode of the configuration file.
const configMode os.FileMode = 0o600

// ignoredFlags are never written to the configuration file.
var ignoredFlags = []string{"help", "version", profile.Tag}

// Init writes the current global flag values as the YAML configuration
// file.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return pkg.ErrWriteConfig.Wrap(errors.New("no command-line context"))
	}

	path, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok || path == "" {
		return pkg.ErrWriteConfig.Wrap(errors.New("configuration path undefined"))
	}

	fail := pkg.ErrWriteConfig.With(slog.String("file", path))

	_, err = os.Stat(path)

	switch {
	case err == nil && !i.Force:
		return fail.Wrap(pkg.ErrFileExists)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fail.Wrap(err)
	}

	data, err := yaml.Marshal(settings(ktx))
	if err != nil {
		return fail.Wrap(err)
	}

	if err := os.WriteFile(path, data, configMode); err != nil {
		return fail.Wrap(err)
	}

	log.InfoContext(ctx, "initialized configuration file",
		slog.String("path", path))

	return nil
}

// settings returns the global flags and their current values in
// declaration order. Unset and empty values are omitted.
func settings(ktx *kong.Context) yaml.MapSlice {
	var out yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignoredFlags, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v := settingValue(ktx.FlagValue(flag)); v != nil {
			out = append(out, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return out
}

func settingValue(val any) any {
	switch v := val.(type) {
	case nil:
		return nil

	case bool, int, int64, uint, uint64, float64:
		return v

	case string:
		if v == "" {
			return nil
		}

		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	case fmt.Stringer:
		return v.String()

	default:
		s := fmt.Sprint(v)
		if s == "" {
			return nil
		}

		return s
	}
}
