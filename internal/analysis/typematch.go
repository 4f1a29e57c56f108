package analysis

import (
	"github.com/rs/zerolog"

	"arblint/internal/dart"
)

// Supertype chains are walked at most this deep. Declared hierarchies are
// shallow in practice; the cap guards against cyclic type tables from a
// confused host.
const maxSupertypeDepth = 32

// Matcher decides ignore-set membership for nominal types. Membership is an
// exact match or a transitive supertype match over the unit's declared
// chains. A Matcher is immutable after construction and safe for concurrent
// use.
type Matcher struct {
	ignore     map[string]struct{}
	loggerType string
	log        zerolog.Logger
}

// NewMatcher builds a matcher from the catalog's ignore types plus any
// project-configured extras.
func NewMatcher(cat Catalog, extra []string, log zerolog.Logger) *Matcher {
	ignore := make(map[string]struct{}, len(cat.IgnoreTypes)+len(extra))
	for _, t := range cat.IgnoreTypes {
		ignore[t] = struct{}{}
	}
	for _, t := range extra {
		ignore[t] = struct{}{}
	}
	return &Matcher{
		ignore:     ignore,
		loggerType: cat.LoggerType,
		log:        log.With().Str("component", "typematch").Logger(),
	}
}

// Matches reports whether candidate equals an ignore-set member or is a
// transitive subtype of one. An unresolved (empty) candidate yields false
// and a warning, never an error.
func (m *Matcher) Matches(u *dart.Unit, candidate string) bool {
	if candidate == "" {
		m.log.Warn().Str("file", u.Path).Msg("unresolved type; not matched against ignore set")
		return false
	}
	return m.chainContains(u, candidate, func(t string) bool {
		_, ok := m.ignore[t]
		return ok
	})
}

// IsLoggingFacility reports whether candidate is the distinguished logger
// type or a subtype of it.
func (m *Matcher) IsLoggingFacility(u *dart.Unit, candidate string) bool {
	if candidate == "" {
		return false
	}
	return m.chainContains(u, candidate, func(t string) bool {
		return t == m.loggerType
	})
}

func (m *Matcher) chainContains(u *dart.Unit, candidate string, hit func(string) bool) bool {
	t := candidate
	for depth := 0; depth < maxSupertypeDepth && t != ""; depth++ {
		if hit(t) {
			return true
		}
		t = u.Supertype(t)
	}
	return false
}
