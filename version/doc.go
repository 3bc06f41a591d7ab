// Package version generates a source file holding the git description of the
// working tree, for inclusion in the program being built.
//
// A [Writer] asks a [Describer] for the current [Descriptor] (by default
// the output of "git describe --tags --always"), renders it with a
// [Renderer] into a constant declaration for the target [Lang], and
// synchronizes <out-dir>/version.<ext> with the result. The file is only
// rewritten when its content changes, so build tools keyed on modification
// time do not rebuild needlessly.
//
// Failure to describe the repository is not an error: the generated
// constant simply reports that no version is available. Only a missing
// output directory ([ErrMissingEnvVar]) or a file-system failure ([ErrIO])
// is returned to the caller.
//
// The typical use is a go:generate directive in the consuming package:
//
//	//go:generate go run github.com/ardnew/gitver --out-dir .
//
// or, from Go code run as a build step with OUT_DIR set:
//
//	if err := version.WriteVersionFile(ctx); err != nil {
//		log.Fatal(err)
//	}
package version
