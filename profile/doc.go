// Package profile provides optional runtime profiling for gitver using
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof -o gitver .
//	gitver --pprof-mode=cpu --pprof-dir=/tmp/gitver-pprof write
//
// Without the tag, [Profiler.Start] returns a no-op and [Modes] is empty.
// Profiles are written as <mode>.pprof in the configured directory and can
// be inspected with "go tool pprof".
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
