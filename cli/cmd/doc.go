// Package cmd implements the kelm subcommands.
//
// Each command is a kong command struct whose Run method receives the
// parent [context.Context] and the [plugin.Registry] bound by package cli.
// Commands read workbooks from the input stored in the context (standard
// input unless replaced with [WithInput]) and write results to the context's
// output (standard output unless replaced with [WithOutput]).
package cmd

var (
	// CacheIdentifier is the kong variable holding the cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable holding the path of the YAML
	// configuration file written by [Init].
	ConfigIdentifier = "config"

	// LanguagesIdentifier is the kong variable holding the comma-separated
	// names of every registered language, for use in help text.
	LanguagesIdentifier = "languages"

	// ModuleIdentifier is the kong variable holding the default module name.
	ModuleIdentifier = "module"
)
