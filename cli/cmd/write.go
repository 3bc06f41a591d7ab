package cmd

import (
	"context"
)

// Write generates the version file, rewriting it only if its content changed.
type Write struct{}

// Run executes the write command.
func (*Write) Run(ctx context.Context, t *Target) error {
	w, err := t.Writer()
	if err != nil {
		return err
	}

	return w.Write(ctx)
}
