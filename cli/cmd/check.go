package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/gitver/log"
)

// Check verifies that the version file is up to date without writing it.
type Check struct{}

// Run executes the check command. It returns [ErrStale] if the write
// command would change the file.
func (*Check) Run(ctx context.Context, t *Target) error {
	w, err := t.Writer()
	if err != nil {
		return err
	}

	fresh, err := w.Check(ctx)
	if err != nil {
		return err
	}

	if !fresh {
		return ErrStale.With(slog.String("path", w.Path()))
	}

	log.InfoContext(ctx, "version file is up to date",
		slog.String("path", w.Path()))

	return nil
}
