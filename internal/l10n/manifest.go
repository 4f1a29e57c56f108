// Package l10n locates the localization resource target of an analysis
// root. Flutter projects declare their ARB layout in an l10n.yaml manifest
// at the project root; the resolver reads it, applies the tool defaults for
// missing keys and checks that the template ARB file actually exists.
//
// Resolution results, including negative ones, are cached per root until
// the host invalidates them, so a missing manifest is probed once and not
// on every analyzed unit.
package l10n

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestName is the file the resolver looks for in the root.
	ManifestName = "l10n.yaml"

	defaultArbDir      = "lib/l10n"
	defaultTemplateArb = "app_en.arb"
)

// Target is the template ARB file new messages are extracted into.
type Target struct {
	// Path is the template ARB file, joined onto the root.
	Path string
}

type manifest struct {
	ArbDir          string `yaml:"arb-dir"`
	TemplateArbFile string `yaml:"template-arb-file"`
}

// Resolver maps analysis roots to their extraction targets.
type Resolver struct {
	targets *cache.Cache
	log     zerolog.Logger
}

// NewResolver builds a resolver with an unbounded per-root cache.
func NewResolver(log zerolog.Logger) *Resolver {
	return &Resolver{
		targets: cache.New(cache.NoExpiration, 0),
		log:     log.With().Str("component", "l10n").Logger(),
	}
}

// Resolve returns the extraction target for root, or nil when the root has
// no usable localization setup. The result is cached either way; call
// Invalidate when the manifest or ARB layout changes on disk.
func (r *Resolver) Resolve(root string) *Target {
	key := filepath.Clean(root)
	if v, ok := r.targets.Get(key); ok {
		t, _ := v.(*Target)
		return t
	}
	t := r.resolve(key)
	r.targets.Set(key, t, cache.NoExpiration)
	return t
}

// Invalidate drops the cached result for root.
func (r *Resolver) Invalidate(root string) {
	r.targets.Delete(filepath.Clean(root))
}

func (r *Resolver) resolve(root string) *Target {
	path := filepath.Join(root, ManifestName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		r.log.Debug().Str("root", root).Msg("no l10n manifest; extraction disabled for root")
		return nil
	}
	if err != nil {
		r.log.Warn().Err(err).Str("path", path).Msg("cannot read l10n manifest")
		return nil
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		r.log.Warn().Err(err).Str("path", path).Msg("malformed l10n manifest")
		return nil
	}
	if m.ArbDir == "" {
		m.ArbDir = defaultArbDir
	}
	if m.TemplateArbFile == "" {
		m.TemplateArbFile = defaultTemplateArb
	}

	arb := filepath.Join(root, filepath.FromSlash(m.ArbDir), m.TemplateArbFile)
	info, err := os.Stat(arb)
	if err != nil {
		r.log.Warn().Str("path", arb).Msg("template ARB file not found; extraction disabled for root")
		return nil
	}
	if info.IsDir() {
		r.log.Warn().Str("path", arb).Msg("template ARB path is a directory")
		return nil
	}
	return &Target{Path: arb}
}
