package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/gitver/log"
	"github.com/ardnew/gitver/pkg"
)

// loadYAML is a [kong.ConfigurationLoader] for YAML config files.
//
// Keys name flags either flat ("log-level", "log_level") or nested by flag
// prefix:
//
//	log:
//	  level: debug
//	out-dir: internal/buildinfo
//	lang: go
//
// An empty or unparsable file yields an empty configuration so that a
// broken config file never prevents a build; the parse error is logged.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	var doc map[string]any

	err = yaml.Unmarshal(b, &doc)
	if err != nil {
		log.Warn("ignoring configuration file",
			slog.Any("error", pkg.ErrParse.Wrap(err)))

		return config{}, nil
	}

	flat := config{}
	flat.flatten("", doc)

	return flat, nil
}

// config implements [kong.Resolver] for flattened configuration maps.
type config map[string]any

// flatten stores the leaves of m in c, joining nested keys with "-".
func (c config) flatten(prefix string, m map[string]any) {
	for key, val := range m {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "-" + name
		}

		if sub, ok := val.(map[string]any); ok {
			c.flatten(name, sub)

			continue
		}

		c[name] = scalar(val)
	}
}

// scalar converts decoded YAML values into forms Kong's mappers accept.
// Kong parses numbers from strings, and lists element-wise.
func scalar(val any) any {
	switch v := val.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(v)

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalar(e)
		}

		return out

	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// envFirst wraps a [kong.ConfigurationLoader] so that its resolver never
// overrides a flag whose environment variable is set. Kong applies
// configuration resolvers after env tags; without this a config file would
// beat OUT_DIR and GOPACKAGE supplied by the build.
func envFirst(load kong.ConfigurationLoader) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		res, err := load(r)
		if err != nil || res == nil {
			return res, err
		}

		return envResolver{res}, nil
	}
}

// envResolver defers to the environment for env-tagged flags.
type envResolver struct {
	kong.Resolver
}

// Resolve implements [kong.Resolver].
func (e envResolver) Resolve(
	ktx *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if envSet(flag) {
		return nil, nil
	}

	return e.Resolver.Resolve(ktx, parent, flag)
}

// envSet reports whether any environment variable bound to flag is set to a
// non-empty value.
func envSet(flag *kong.Flag) bool {
	for _, env := range flag.Envs {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			return true
		}
	}

	return false
}
