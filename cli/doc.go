// Package cli assembles the kelm command line.
//
// [Run] builds a [plugin.Registry] holding the Elm plugin, parses the
// arguments with kong, and runs the selected command from package cmd:
//
//	kelm collate notebook.md            # Main.elm and styles.css to stdout
//	kelm collate -l elm -o build/ nb.md # write build/Main.elm
//	kelm classify --code 'x = 1'        # define/name x
//	kelm bind -l css styles             # stylesheet mount snippet
//	kelm languages
//	kelm init                           # write ~/.config/kelm/config.yaml
//
// # Configuration
//
// Global flags take their defaults from, in increasing precedence,
// the flag declarations, ~/.config/kelm/config.json, and
// ~/.config/kelm/config.yaml. Command-line flags override both files.
// Keys are flag names, with either hyphens or underscores:
//
//	log-level: debug
//	log_format: text
//	log:
//	  pretty: false
//
// # Logging
//
//   - --log-level: trace, debug, info, warn, error
//   - --log-format: json, text
//   - --log-time-layout: a time package layout name or a custom layout
//   - --[no-]log-caller: include the source location
//   - --[no-]log-pretty: colorize output
//
// Logging flags are applied before parsing, wherever they appear.
//
// # Profiling
//
// Built with the pprof tag, --pprof-mode selects a profile written into
// --pprof-dir (default ~/.cache/kelm/pprof).
package cli
