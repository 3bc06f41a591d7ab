package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// EnvPrefix prefixes the environment variables that relocate gitver's own
// directories.
var EnvPrefix = strings.ToUpper(Name) + "_"

// ConfigDir returns the configuration directory path.
//
// It is $GITVER_CONFIG_DIR if set, otherwise the gitver subdirectory of
// [os.UserConfigDir].
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		return userDir(EnvPrefix+"CONFIG_DIR", os.UserConfigDir, ".config")
	},
)

// CacheDir returns the cache directory path used for transient files such as
// profiles.
//
// It is $GITVER_CACHE_DIR if set, otherwise the gitver subdirectory of
// [os.UserCacheDir].
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		return userDir(EnvPrefix+"CACHE_DIR", os.UserCacheDir, ".cache")
	},
)

// userDir resolves a per-user directory for gitver. If base fails, the
// hidden directory under the home directory is used, then the working
// directory.
func userDir(env string, base func() (string, error), hidden string) string {
	if dir, ok := os.LookupEnv(env); ok && dir != "" {
		return dir
	}

	dir, err := base()
	if err == nil {
		return filepath.Join(dir, Name)
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, hidden, Name)
	}

	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "."+Name)
	}

	return "." + Name
}
