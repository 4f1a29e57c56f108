// Package engine drives the analysis pass over source units: exclusion,
// literal scanning, fix synthesis and diagnostic assembly, with per-root
// configuration and extraction targets cached between passes.
package engine

import (
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"

	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"arblint/internal/analysis"
	"arblint/internal/config"
	"arblint/internal/dart"
	"arblint/internal/diag"
	"arblint/internal/fix"
	"arblint/internal/l10n"
)

// Code is the diagnostic code attached to every reported literal.
const Code = "localize_strings"

// Engine analyzes units against their root's configuration. One engine
// serves any number of roots; per-root state is cached until the host
// invalidates it.
type Engine struct {
	cat        analysis.Catalog
	correction string
	resolver   *l10n.Resolver
	roots      *cache.Cache
	log        zerolog.Logger
}

// New builds an engine with the built-in suppression catalog.
func New(log zerolog.Logger) *Engine {
	cat := analysis.DefaultCatalog()
	return &Engine{
		cat: cat,
		correction: "Externalize the value to the localization ARB file, " +
			"annotate the receiving parameter as non-localizable, " +
			"or mark the line with // " + cat.Marker + ".",
		resolver: l10n.NewResolver(log),
		roots:    cache.New(cache.NoExpiration, 0),
		log:      log.With().Str("component", "engine").Logger(),
	}
}

// rootState is the pipeline for one analysis root. It is immutable after
// construction and shared by concurrent passes over distinct units.
type rootState struct {
	cfg     *config.Config
	arbPath string
	scanner *analysis.Scanner
	synth   *fix.Synthesizer
}

func (e *Engine) state(root string) *rootState {
	key := filepath.Clean(root)
	if v, ok := e.roots.Get(key); ok {
		return v.(*rootState)
	}

	cfg := config.Load(key, e.log)
	matcher := analysis.NewMatcher(e.cat, cfg.IgnoreTypes, e.log)
	st := &rootState{
		cfg:     cfg,
		scanner: analysis.NewScanner(analysis.NewClassifier(matcher, e.cat, e.log)),
		synth:   fix.NewSynthesizer(cfg.Accessor, e.cat.Marker, cfg.Debug),
	}
	if target := e.resolver.Resolve(key); target != nil {
		st.arbPath = target.Path
	}
	e.roots.Set(key, st, cache.NoExpiration)
	return st
}

// InvalidateRoot drops the cached configuration and extraction target of
// root, forcing the next pass to re-read them from disk.
func (e *Engine) InvalidateRoot(root string) {
	key := filepath.Clean(root)
	e.roots.Delete(key)
	e.resolver.Invalidate(key)
}

// PassError reports an unexpected failure of a whole analysis pass,
// with the stack that produced it. The failure is non-fatal: the engine
// stays usable for further passes.
type PassError struct {
	File  string
	Cause string
	Stack string
}

func (e *PassError) Error() string {
	return fmt.Sprintf("analysis pass over %s: %s", e.File, e.Cause)
}

// Analyze runs one pass over unit and returns its replacement set of
// diagnostics. A non-nil error is a *PassError; the unit's diagnostics
// are then empty and the engine itself stays usable.
func (e *Engine) Analyze(root string, unit *dart.Unit) (diags []diag.Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Str("file", unit.Path).Interface("panic", r).Msg("analysis pass failed")
			diags = nil
			err = &PassError{File: unit.Path, Cause: fmt.Sprint(r), Stack: string(debug.Stack())}
		}
	}()

	st := e.state(root)
	if st.cfg.Excluded(relPath(root, unit.Path)) {
		e.log.Debug().Str("file", unit.Path).Msg("unit excluded by glob")
		return nil, nil
	}

	for lit := range st.scanner.Literals(unit) {
		if d, ok := e.assemble(st, unit, lit); ok {
			diags = append(diags, d)
		}
	}
	return diags, nil
}

// relPath maps a unit path onto its root for glob matching. Paths that
// do not live under the root pass through unchanged.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
