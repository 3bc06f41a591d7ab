package version

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/gitver/log"
)

const (
	// OutDirEnv is the environment variable naming the output directory.
	OutDirEnv = "OUT_DIR"
	// PackageEnv is the environment variable naming the Go package of the
	// generated file. The go generate command sets it.
	PackageEnv = "GOPACKAGE"
	// BaseName is the name of the generated file without its extension.
	BaseName = "version"
	// DirMode is the permission mode of created output directories.
	DirMode os.FileMode = 0o755
)

// Writer generates the version file.
//
// The zero value renders Go source for package main, describes the current
// directory with git, and fails with [ErrMissingEnvVar] because it has no
// output directory.
type Writer struct {
	Renderer

	// OutDir is the directory receiving the generated file.
	OutDir string
	// Describe reports the version to embed. Nil means [Git.Describe] in the
	// current directory.
	Describe Describer
}

// Option configures a Writer.
type Option func(Writer) Writer

// NewWriter returns a Writer configured by opts.
func NewWriter(opts ...Option) Writer {
	w := Writer{Renderer: Renderer{Lang: DefaultLang}}

	for _, opt := range opts {
		if opt != nil {
			w = opt(w)
		}
	}

	return w
}

// FromEnv reads the output directory from [OutDirEnv] and the Go package
// name from [PackageEnv]. Unset variables leave the Writer unchanged.
func FromEnv() Option {
	return func(w Writer) Writer {
		if dir, ok := os.LookupEnv(OutDirEnv); ok {
			w.OutDir = dir
		}

		if name, ok := os.LookupEnv(PackageEnv); ok && name != "" {
			w.Package = name
		}

		return w
	}
}

// WithOutDir sets the output directory.
func WithOutDir(dir string) Option {
	return func(w Writer) Writer {
		w.OutDir = dir

		return w
	}
}

// WithLang sets the language of the generated file.
func WithLang(lang Lang) Option {
	return func(w Writer) Writer {
		w.Lang = lang

		return w
	}
}

// WithPackage sets the package clause of generated Go source.
func WithPackage(name string) Option {
	return func(w Writer) Writer {
		w.Package = name

		return w
	}
}

// WithDescriber sets the source of the embedded version.
func WithDescriber(d Describer) Option {
	return func(w Writer) Writer {
		w.Describe = d

		return w
	}
}

// WriteVersionFile generates the version file in the directory named by
// [OutDirEnv], as Go source for the package named by [PackageEnv].
func WriteVersionFile(ctx context.Context) error {
	return NewWriter(FromEnv()).Write(ctx)
}

// Path returns the path of the generated file, or "" if w has no output
// directory.
func (w Writer) Path() string {
	if w.OutDir == "" {
		return ""
	}

	return filepath.Join(w.OutDir, BaseName+w.lang().Ext())
}

func (w Writer) lang() Lang {
	if w.Lang == "" {
		return DefaultLang
	}

	return w.Lang
}

// Content describes the checkout and returns the rendered file content.
// It does not touch the file system.
func (w Writer) Content(ctx context.Context) ([]byte, Descriptor, error) {
	describe := w.Describe
	if describe == nil {
		describe = Git{}.Describe
	}

	d := describe(ctx)

	log.DebugContext(ctx, "described version", slog.Any("describe", d))

	content, err := w.Render(d)

	return content, d, err
}

// Write ensures the output directory exists and that the generated file in
// it holds the current version. It succeeds whether or not a version could
// be described.
func (w Writer) Write(ctx context.Context) error {
	path, err := w.resolve()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.OutDir, DirMode); err != nil {
		return ErrIO.With(slog.String("path", w.OutDir)).Wrap(err)
	}

	content, d, err := w.Content(ctx)
	if err != nil {
		return err
	}

	wrote, err := Sync(path, content)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "synchronized version file",
		slog.String("path", path),
		slog.Any("describe", d),
		slog.Bool("wrote", wrote),
	)

	return nil
}

// Check reports whether the generated file is fresh, that is, whether
// [Writer.Write] would leave it untouched. It never writes.
func (w Writer) Check(ctx context.Context) (bool, error) {
	path, err := w.resolve()
	if err != nil {
		return false, err
	}

	content, _, err := w.Content(ctx)
	if err != nil {
		return false, err
	}

	existing, exists, err := readExisting(path)
	if err != nil {
		return false, ErrIO.With(slog.String("path", path)).Wrap(err)
	}

	return IsFresh(existing, exists, content), nil
}

// resolve returns the generated file path, or an error if w has no output
// directory or a Renderer that cannot render.
func (w Writer) resolve() (string, error) {
	if w.OutDir == "" {
		return "", ErrMissingEnvVar.With(slog.String("var", OutDirEnv)).
			Wrap(errors.New(OutDirEnv))
	}

	if err := w.Renderer.Validate(); err != nil {
		return "", err
	}

	return w.Path(), nil
}
