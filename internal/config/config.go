// Package config loads per-root analyzer settings from an arblint.yaml
// file in the analysis root. Configuration is advisory: a missing or
// malformed file never stops analysis, it falls back to defaults.
package config

import (
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// FileName is the settings file looked up in the analysis root, without
// its extension.
const FileName = "arblint"

// Config holds the tunable parts of an analysis pass.
type Config struct {
	// ExcludeGlobs skips whole units. A pattern matches either the
	// root-relative slash path of the unit or its bare file name.
	ExcludeGlobs []string `json:"excludeGlobs" mapstructure:"exclude_globs"`

	// Debug enables the explanatory no-op fix on diagnostics that have
	// no extraction target.
	Debug bool `json:"debug" mapstructure:"debug"`

	// Accessor is the receiver new localization lookups are rewritten
	// onto, as in "loc.helloWorld".
	Accessor string `json:"accessor" mapstructure:"accessor"`

	// IgnoreTypes extends the built-in set of types whose string
	// arguments and values are never flagged.
	IgnoreTypes []string `json:"ignoreTypes" mapstructure:"ignore_types"`
}

// DefaultConfig returns the settings used when no arblint.yaml exists.
func DefaultConfig() *Config {
	return &Config{Accessor: "loc"}
}

// Load reads arblint.yaml from root. It always returns a usable config:
// a missing file yields the defaults silently, an unreadable one yields
// the defaults with a warning.
func Load(root string, log zerolog.Logger) *Config {
	v := viper.New()
	v.SetDefault("accessor", "loc")
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Str("root", root).Msg("cannot read arblint.yaml; using defaults")
		}
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		log.Warn().Err(err).Str("root", root).Msg("invalid arblint.yaml; using defaults")
		return DefaultConfig()
	}
	if cfg.Accessor == "" {
		cfg.Accessor = "loc"
	}
	cfg.ExcludeGlobs = validGlobs(cfg.ExcludeGlobs, log)
	return cfg
}

// Excluded reports whether a root-relative unit path is matched by any
// exclusion glob.
func (c *Config) Excluded(rel string) bool {
	slashed := filepath.ToSlash(rel)
	base := path.Base(slashed)
	for _, g := range c.ExcludeGlobs {
		if ok, _ := path.Match(g, slashed); ok {
			return true
		}
		if ok, _ := path.Match(g, base); ok {
			return true
		}
	}
	return false
}

func validGlobs(globs []string, log zerolog.Logger) []string {
	kept := globs[:0]
	for _, g := range globs {
		if _, err := path.Match(g, ""); err != nil {
			log.Warn().Str("glob", g).Msg("dropping malformed exclusion glob")
			continue
		}
		kept = append(kept, g)
	}
	return kept
}
