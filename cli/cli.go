package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/kelm/cli/cmd"
	"github.com/ardnew/kelm/pkg"
	"github.com/ardnew/kelm/plugin"
	"github.com/ardnew/kelm/workbook"
)

// Configuration file names under [pkg.ConfigDir].
const (
	configJSON = "config.json"
	configYAML = "config.yaml"
)

// CLI is the top-level command-line interface for kelm.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Collate   cmd.Collate   `cmd:"" default:"withargs" help:"Generate artifacts from a workbook"`
	Classify  cmd.Classify  `cmd:""                    help:"Show how workbook blocks are classified"`
	Bind      cmd.Bind      `cmd:""                    help:"Print the snippet that mounts an artifact"`
	Languages cmd.Languages `cmd:""                    help:"List registered languages"`
	Init      cmd.Init      `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the kelm CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := pkg.MkdirAllRequired(); err != nil {
		return err
	}

	reg := plugin.NewRegistry(plugin.Elm)

	vars := kong.Vars{
		"version":               pkg.Semver(),
		cmd.ConfigIdentifier:    pkg.ConfigPath(configYAML),
		cmd.CacheIdentifier:     pkg.CacheDir(),
		cmd.LanguagesIdentifier: strings.Join(reg.Names(), ","),
		cmd.ModuleIdentifier:    workbook.DefaultModuleName,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before kong parses anything, so that errors
	// reported during parsing already use the requested format.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.Bind(reg),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, pkg.ConfigPath(configJSON)),
		kong.Configuration(resolveYAML, pkg.ConfigPath(configYAML)),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}
