package cli

import (
	"path/filepath"

	"github.com/ardnew/gitver/pkg"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

// configDir returns the configuration directory path.
var configDir = pkg.ConfigDir

// cacheDir returns the cache directory path used for transient files.
var cacheDir = pkg.CacheDir

// configPath returns the path formed by joining the configuration directory
// with the given path elements.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}
