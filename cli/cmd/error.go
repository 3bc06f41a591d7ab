package cmd

import "github.com/ardnew/gitver/version"

var (
	ErrWriteConfig = version.NewError("write configuration file")
	ErrFileExists  = version.NewError("file exists (use --force to overwrite)")
	ErrStale       = version.NewError("version file is stale")
)
