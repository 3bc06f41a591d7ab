// Package log provides a small structured logging layer over [log/slog].
//
// Loggers are configured once with functional options and are immutable
// afterwards; [Logger.Wrap] derives a reconfigured copy. A package-level
// default logger backs the [Debug], [Info], [Warn] and [Error] functions and
// their context-aware variants, and is replaced atomically by [Config].
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatText))
//	log.Debug("described version", slog.String("describe", "v1.2.3"))
//
// Two formats are supported, [FormatJSON] (default) and [FormatText]. With
// [WithPretty], text output is colorized for terminals. Level names are
// lowercase in configuration and uppercase in output, and include a TRACE
// level below DEBUG.
package log
