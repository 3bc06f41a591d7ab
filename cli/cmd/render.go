package cmd

import (
	"context"
)

// Render prints the content the write command would produce.
type Render struct{}

// Run executes the render command.
func (*Render) Run(ctx context.Context, t *Target) error {
	w, err := t.Writer()
	if err != nil {
		return err
	}

	content, _, err := w.Content(ctx)
	if err != nil {
		return err
	}

	_, err = stdout(ctx).Write(content)

	return err
}
