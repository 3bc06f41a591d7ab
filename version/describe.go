package version

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/gitver/log"
)

// Descriptor is the optional, human-readable description of a point in
// version-control history, such as "v1.2.3", "v1.2.3-4-gabcde12" or a bare
// abbreviated commit hash.
type Descriptor struct {
	Value string
	OK    bool
}

// Some returns a present Descriptor holding v.
func Some(v string) Descriptor { return Descriptor{Value: v, OK: true} }

// None returns the absent Descriptor.
func None() Descriptor { return Descriptor{} }

// Get returns the value and whether it is present.
func (d Descriptor) Get() (string, bool) { return d.Value, d.OK }

// LogValue implements [slog.LogValuer].
func (d Descriptor) LogValue() slog.Value {
	if !d.OK {
		return slog.StringValue("<none>")
	}

	return slog.StringValue(d.Value)
}

// Describer reports the Descriptor of the current checkout.
// It never fails; anything that prevents a description yields [None].
type Describer func(ctx context.Context) Descriptor

// Fixed returns a Describer that always reports d.
func Fixed(d Descriptor) Describer {
	return func(context.Context) Descriptor { return d }
}

// DescribeArgs are the arguments passed to git to describe the checkout.
var DescribeArgs = []string{"describe", "--tags", "--always"}

// Git describes a repository with the git command-line tool.
type Git struct {
	// Path is the git executable. Empty means "git" looked up in PATH.
	Path string
	// Dir is the directory to run git in. Empty means the current directory.
	Dir string
}

// Describe runs git with [DescribeArgs] and returns its trimmed standard
// output. It returns [None] if git cannot be started, exits unsuccessfully,
// or prints anything that is not valid UTF-8.
//
// No timeout is applied; the call blocks until git exits or ctx is done.
func (g Git) Describe(ctx context.Context) Descriptor {
	path := g.Path
	if path == "" {
		path = "git"
	}

	cmd := exec.CommandContext(ctx, path, DescribeArgs...)
	cmd.Dir = g.Dir

	out, err := cmd.Output()
	if err != nil {
		log.DebugContext(ctx, "git describe failed",
			slog.String("git", path),
			slog.String("dir", g.Dir),
			slog.Any("error", err),
		)

		return None()
	}

	if !utf8.Valid(out) {
		log.DebugContext(ctx, "git describe output is not valid UTF-8",
			slog.Int("bytes", len(out)),
		)

		return None()
	}

	return Some(strings.TrimSpace(string(out)))
}
