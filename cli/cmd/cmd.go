package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/gitver/version"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer commands print results to.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// Target holds the flags shared by every command that describes the
// repository or generates the version file.
type Target struct {
	OutDir  string `env:"OUT_DIR"   help:"Directory receiving the generated file."          placeholder:"DIR" short:"o"`
	Lang    string `default:"${langDefault}" enum:"${langEnum}" help:"Language of the generated file (${enum})." short:"l"`
	Package string `default:"${packageDefault}" env:"GOPACKAGE" help:"Package clause of generated Go source."`
	Git     string `default:"git"   help:"Git executable."`
	Dir     string `help:"Directory of the repository to describe (default: working directory)." placeholder:"DIR"`

	// describe overrides the git describer; tests use it to avoid running git.
	describe version.Describer
}

// Writer returns the version.Writer configured by t.
func (t *Target) Writer() (version.Writer, error) {
	lang, err := version.ParseLang(t.Lang)
	if err != nil {
		return version.Writer{}, err
	}

	return version.NewWriter(
		version.WithOutDir(t.OutDir),
		version.WithLang(lang),
		version.WithPackage(t.Package),
		version.WithDescriber(t.describer()),
	), nil
}

func (t *Target) describer() version.Describer {
	if t.describe != nil {
		return t.describe
	}

	return version.Git{Path: t.Git, Dir: t.Dir}.Describe
}
