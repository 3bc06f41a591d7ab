package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/gitver/log"
)

// Describe prints the git description of the repository.
type Describe struct{}

// Run executes the describe command. An absent description is not an
// error; nothing is printed and a warning is logged.
func (*Describe) Run(ctx context.Context, t *Target) error {
	d := t.describer()(ctx)

	v, ok := d.Get()
	if !ok {
		log.WarnContext(ctx, "no version available",
			slog.String("dir", t.Dir),
			slog.String("git", t.Git),
		)

		return nil
	}

	_, err := fmt.Fprintln(stdout(ctx), v)

	return err
}
