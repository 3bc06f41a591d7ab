package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/gitver/pkg"
)

// Version prints the version of gitver itself.
type Version struct {
	Authors bool `help:"Also list the authors." short:"a"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	out := stdout(ctx)

	_, err := fmt.Fprintln(out, pkg.Name, pkg.Version)
	if err != nil || !v.Authors {
		return err
	}

	for _, a := range pkg.Author {
		_, err = fmt.Fprintf(out, "%s <%s>\n", a.Name, a.Email)
		if err != nil {
			return err
		}
	}

	return nil
}
