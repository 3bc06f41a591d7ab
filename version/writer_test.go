package version

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ardnew/gitver/pkg"
)

const rustSome = "static GIT_BUILD_VERSION: Option<&'static str> = Some(\"v1.2.3-4-gabcde12\");\n"

func TestWriter_Scenario(t *testing.T) {
	out := t.TempDir()
	path := filepath.Join(out, "version.rs")

	w := NewWriter(
		WithOutDir(out),
		WithLang(LangRust),
		WithDescriber(Fixed(Some("v1.2.3-4-gabcde12"))),
	)

	if w.Path() != path {
		t.Fatalf("Path() = %q, want %q", w.Path(), path)
	}

	if err := w.Write(context.Background()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	assertContent(t, path, rustSome)

	// Unchanged descriptor: no write.
	past := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatal(err)
	}

	if err := w.Write(context.Background()); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}

	assertContent(t, path, rustSome)
	assertModTime(t, path, past, true)

	// Changed descriptor: rewritten.
	w = NewWriter(
		WithOutDir(out),
		WithLang(LangRust),
		WithDescriber(Fixed(Some("v1.2.4"))),
	)

	if err := w.Write(context.Background()); err != nil {
		t.Fatalf("third Write() error = %v", err)
	}

	assertContent(t, path,
		"static GIT_BUILD_VERSION: Option<&'static str> = Some(\"v1.2.4\");\n")
	assertModTime(t, path, past, false)
}

func TestWriter_CreatesOutputDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "a", "b", "c")

	w := NewWriter(WithOutDir(out), WithDescriber(Fixed(Some("v1"))))

	if err := w.Write(context.Background()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "version.go")); err != nil {
		t.Errorf("expected generated file: %v", err)
	}
}

func TestWriter_AbsentDescriptorStillWrites(t *testing.T) {
	out := t.TempDir()

	w := NewWriter(WithOutDir(out), WithLang(LangRust), WithDescriber(Fixed(None())))

	if err := w.Write(context.Background()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	assertContent(t, filepath.Join(out, "version.rs"),
		"static GIT_BUILD_VERSION: Option<&'static str> = None;\n")
}

func TestWriter_GitFailureStillWrites(t *testing.T) {
	out := t.TempDir()
	git := Git{Path: filepath.Join(t.TempDir(), "missing-git")}

	w := NewWriter(WithOutDir(out), WithLang(LangRust), WithDescriber(git.Describe))

	if err := w.Write(context.Background()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	assertContent(t, filepath.Join(out, "version.rs"),
		"static GIT_BUILD_VERSION: Option<&'static str> = None;\n")
}

func TestWriter_MissingOutDir(t *testing.T) {
	called := false
	describe := func(context.Context) Descriptor {
		called = true

		return Some("v1")
	}

	err := NewWriter(WithDescriber(describe)).Write(context.Background())
	if !errors.Is(err, ErrMissingEnvVar) {
		t.Fatalf("Write() error = %v, want ErrMissingEnvVar", err)
	}

	if called {
		t.Error("expected no describe without an output directory")
	}
}

func TestWriter_InvalidLang(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")

	err := NewWriter(WithOutDir(out), WithLang("GO")).Write(context.Background())
	if !errors.Is(err, pkg.ErrInvalidFormat) {
		t.Fatalf("Write() error = %v, want ErrInvalidFormat", err)
	}

	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no output directory, stat error = %v", err)
	}
}

func TestWriter_InvalidPackage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	called := false

	w := NewWriter(
		WithOutDir(out),
		WithPackage("not-valid"),
		WithDescriber(func(context.Context) Descriptor {
			called = true

			return Some("v1.0.0")
		}),
	)

	err := w.Write(context.Background())
	if !errors.Is(err, pkg.ErrInvalidFormat) {
		t.Fatalf("Write() error = %v, want ErrInvalidFormat", err)
	}

	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no output directory, stat error = %v", err)
	}

	if called {
		t.Error("expected no describe with an invalid package")
	}

	if _, err := w.Check(context.Background()); !errors.Is(err, pkg.ErrInvalidFormat) {
		t.Errorf("Check() error = %v, want ErrInvalidFormat", err)
	}
}

func TestWriter_OutDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := NewWriter(WithOutDir(file), WithDescriber(Fixed(None()))).Write(context.Background())
	if !errors.Is(err, ErrIO) {
		t.Fatalf("Write() error = %v, want ErrIO", err)
	}
}

func TestWriter_Check(t *testing.T) {
	out := t.TempDir()
	w := NewWriter(WithOutDir(out), WithDescriber(Fixed(Some("v1"))))

	fresh, err := w.Check(context.Background())
	if err != nil || fresh {
		t.Fatalf("Check() before write = %v, %v, want false, nil", fresh, err)
	}

	if err := w.Write(context.Background()); err != nil {
		t.Fatal(err)
	}

	fresh, err = w.Check(context.Background())
	if err != nil || !fresh {
		t.Fatalf("Check() after write = %v, %v, want true, nil", fresh, err)
	}

	stale := NewWriter(WithOutDir(out), WithDescriber(Fixed(Some("v2"))))

	fresh, err = stale.Check(context.Background())
	if err != nil || fresh {
		t.Fatalf("Check() with new version = %v, %v, want false, nil", fresh, err)
	}
}

func TestWriteVersionFile_Env(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen")

	t.Setenv(OutDirEnv, out)
	t.Setenv(PackageEnv, "buildinfo")

	if err := WriteVersionFile(context.Background()); err != nil {
		t.Fatalf("WriteVersionFile() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(out, "version.go"))
	if err != nil {
		t.Fatal(err)
	}

	if want := "package buildinfo\n"; !strings.Contains(string(content), want) {
		t.Errorf("expected %q in\n%s", want, content)
	}
}

func TestWriteVersionFile_MissingEnv(t *testing.T) {
	t.Setenv(OutDirEnv, "")
	os.Unsetenv(OutDirEnv)

	err := WriteVersionFile(context.Background())
	if !errors.Is(err, ErrMissingEnvVar) {
		t.Fatalf("WriteVersionFile() error = %v, want ErrMissingEnvVar", err)
	}

	if got := err.Error(); got != "missing environment variable: OUT_DIR" {
		t.Errorf("Error() = %q", got)
	}
}
