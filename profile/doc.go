// Package profile starts optional runtime profiling through
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	kelm --pprof-mode=cpu collate workbook.md
//
// Without the tag [Modes] is empty and [Profiler.Start] never starts
// anything, so callers need no build constraints of their own.
//
// Profiles are written into [Profiler.Dir], one file per mode (cpu.pprof,
// mem.pprof, and so on).
package profile
