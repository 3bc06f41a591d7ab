// Command gitver writes a version file describing the enclosing git
// checkout. It is meant to be run from go:generate directives or build
// scripts.
//
//	//go:generate go run github.com/ardnew/gitver -o .
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ardnew/gitver/cli"
	"github.com/ardnew/gitver/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
