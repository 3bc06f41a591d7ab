package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/gitver/pkg"
	"github.com/ardnew/gitver/version"
)

// newContext returns a context carrying a parsed kong.Context whose standard
// output is captured in the returned buffer.
func newContext(t *testing.T, vars kong.Vars) (context.Context, *bytes.Buffer) {
	t.Helper()

	var (
		cli struct{}
		out bytes.Buffer
	)

	parser, err := kong.New(&cli, kong.Writers(&out, &out), vars)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx), &out
}

func newTarget(dir, lang string, d version.Descriptor) *Target {
	return &Target{
		OutDir:   dir,
		Lang:     lang,
		Package:  "main",
		Git:      "git",
		describe: version.Fixed(d),
	}
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	if kongContextFrom(context.Background()) != nil {
		t.Error("kongContextFrom() on empty context should be nil")
	}

	ctx, _ := newContext(t, nil)
	if kongContextFrom(ctx) == nil {
		t.Error("kongContextFrom() lost kong.Context")
	}
}

func TestTargetWriter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	w, err := newTarget(dir, "rust", version.None()).Writer()
	if err != nil {
		t.Fatalf("Writer() error = %v", err)
	}

	if got, want := w.Path(), filepath.Join(dir, "version.rs"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}

	_, err = newTarget(dir, "cobol", version.None()).Writer()
	if !errors.Is(err, pkg.ErrInvalidFormat) {
		t.Errorf("Writer() error = %v, want %v", err, pkg.ErrInvalidFormat)
	}
}

func TestWriteRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, _ := newContext(t, nil)

	err := new(Write).Run(ctx, newTarget(dir, "rust", version.Some("v1.0.0")))
	if err != nil {
		t.Fatalf("Write.Run() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "version.rs"))
	if err != nil {
		t.Fatal(err)
	}

	want := "static GIT_BUILD_VERSION: Option<&'static str> = Some(\"v1.0.0\");\n"
	if string(got) != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestWriteRun_MissingOutDir(t *testing.T) {
	t.Parallel()

	ctx, _ := newContext(t, nil)

	err := new(Write).Run(ctx, newTarget("", "go", version.None()))
	if !errors.Is(err, version.ErrMissingEnvVar) {
		t.Errorf("Write.Run() error = %v, want %v", err, version.ErrMissingEnvVar)
	}
}

func TestRenderRun(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	ctx, out := newContext(t, nil)

	err := new(Render).Run(ctx, newTarget(dir, "yaml", version.Some("v2.0.0")))
	if err != nil {
		t.Fatalf("Render.Run() error = %v", err)
	}

	if got, want := out.String(), "git_build_version: v2.0.0\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Render.Run() touched output directory: %v", err)
	}
}

func TestCheckRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, _ := newContext(t, nil)
	target := newTarget(dir, "json", version.Some("v3.0.0"))

	err := new(Check).Run(ctx, target)
	if !errors.Is(err, ErrStale) {
		t.Fatalf("Check.Run() before write error = %v, want %v", err, ErrStale)
	}

	if err := new(Write).Run(ctx, target); err != nil {
		t.Fatal(err)
	}

	if err := new(Check).Run(ctx, target); err != nil {
		t.Errorf("Check.Run() after write error = %v", err)
	}

	target.describe = version.Fixed(version.Some("v3.0.1"))

	err = new(Check).Run(ctx, target)
	if !errors.Is(err, ErrStale) {
		t.Errorf("Check.Run() after change error = %v, want %v", err, ErrStale)
	}
}

func TestDescribeRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		desc version.Descriptor
		want string
	}{
		{name: "present", desc: version.Some("v1.2.3-4-gabcdef0"), want: "v1.2.3-4-gabcdef0\n"},
		{name: "absent", desc: version.None(), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, out := newContext(t, nil)

			err := new(Describe).Run(ctx, newTarget("", "go", tt.desc))
			if err != nil {
				t.Fatalf("Describe.Run() error = %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionRun(t *testing.T) {
	t.Parallel()

	ctx, out := newContext(t, nil)

	if err := new(Version).Run(ctx); err != nil {
		t.Fatalf("Version.Run() error = %v", err)
	}

	got := strings.TrimSpace(out.String())
	if want := pkg.Name + " " + pkg.Version; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestVersionRun_Authors(t *testing.T) {
	t.Parallel()

	ctx, out := newContext(t, nil)

	if err := (&Version{Authors: true}).Run(ctx); err != nil {
		t.Fatalf("Version.Run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), 1+len(pkg.Author); got != want {
		t.Fatalf("got %d lines, want %d: %q", got, want, out.String())
	}

	if !strings.Contains(lines[1], pkg.Author[0].Email) {
		t.Errorf("author line = %q, want email %q", lines[1], pkg.Author[0].Email)
	}
}
