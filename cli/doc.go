// Package cli contains the command line interface for gitver.
//
// # Usage
//
// Run with no command, gitver writes the version file:
//
//	OUT_DIR=internal/buildinfo GOPACKAGE=buildinfo gitver
//	gitver --out-dir=. --lang=rust write
//
// Other commands inspect the same inputs without writing:
//
//	gitver describe   # print the git description
//	gitver render     # print the file that would be written
//	gitver check      # fail if the file on disk is stale
//
// # Configuration
//
// Flag defaults may be set in <config dir>/gitver/config.json or
// <config dir>/gitver/config.yaml; "gitver init" writes the latter from the
// current flag values. YAML keys may be flat ("log-level", "log_level") or
// nested:
//
//	log:
//	  level: debug
//	lang: rust
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Only available when built with the pprof build tag:
//
//	go build -tags pprof -o gitver .
//
//   - --pprof-mode: Enable profiling (see "gitver --help" for modes)
//   - --pprof-dir: Set profile output directory
package cli
