package analysis

import (
	"strings"

	"github.com/rs/zerolog"

	"arblint/internal/dart"
)

// Classifier decides whether a string literal is demonstrably not
// user-facing text. It applies the ordered ancestor rules (import context,
// annotated parameter, ignored construction, logger or ignored-type call)
// and, when no ancestor rule fires, the trailing same-line marker comment
// check. A Classifier is immutable after construction and safe for
// concurrent use across units.
type Classifier struct {
	matcher *Matcher
	cat     Catalog
	log     zerolog.Logger
}

// NewClassifier builds a classifier over the given matcher and catalog.
func NewClassifier(matcher *Matcher, cat Catalog, log zerolog.Logger) *Classifier {
	return &Classifier{
		matcher: matcher,
		cat:     cat,
		log:     log.With().Str("component", "suppress").Logger(),
	}
}

// ShouldSuppress walks upward from the literal through its ancestors,
// tracking the two most recently visited descendants so call rules can tell
// which argument slot the literal came through. A rule that panics is
// logged and treated as not matching; the walk continues at the next
// ancestor.
func (c *Classifier) ShouldSuppress(u *dart.Unit, lit *dart.Str) bool {
	var child dart.Node = lit
	var grand dart.Node
	for anc := lit.Parent(); anc != nil; anc = anc.Parent() {
		if c.ancestorSuppresses(u, lit, anc, child, grand) {
			return true
		}
		grand = child
		child = anc
	}
	return c.trailingMarker(u, lit)
}

// ancestorSuppresses applies the ancestor rules at one walk step. Recovery
// is scoped to the single ancestor: a failure here never aborts the
// classification of the literal.
func (c *Classifier) ancestorSuppresses(u *dart.Unit, lit *dart.Str, anc, child, grand dart.Node) (suppressed bool) {
	defer func() {
		if r := recover(); r != nil {
			pos := u.Position(lit.Pos())
			c.log.Warn().
				Str("file", u.Path).
				Int("line", pos.Line).
				Int("column", pos.Column).
				Str("ancestor", anc.Kind().String()).
				Interface("panic", r).
				Msg("suppression rule failed; treating as no match")
			suppressed = false
		}
	}()

	switch n := anc.(type) {
	case *dart.Import:
		return true

	case *dart.Construct:
		if c.annotatedParam(n.Ctor, n.Args, child, grand) {
			return true
		}
		return n.Type != "" && c.matcher.Matches(u, n.Type)

	case *dart.Call:
		if c.annotatedParam(n.Callee, n.Args, child, grand) {
			return true
		}
		if n.Target == nil {
			return false
		}
		recv := dart.StaticType(n.Target)
		if recv == "" {
			pos := u.Position(lit.Pos())
			c.log.Warn().
				Str("file", u.Path).
				Int("line", pos.Line).
				Int("column", pos.Column).
				Str("call", n.Name).
				Msg("receiver type unresolved; continuing walk")
			return false
		}
		return c.matcher.IsLoggingFacility(u, recv) || c.matcher.Matches(u, recv)

	default:
		return false
	}
}

// annotatedParam resolves the argument slot the walk came through (child
// must be the ancestor's argument list, grand the argument element) to the
// callable's formal parameter and checks it for a no-localization
// annotation.
func (c *Classifier) annotatedParam(callee *dart.Callable, args *dart.Args, child, grand dart.Node) bool {
	if callee == nil || args == nil || grand == nil {
		return false
	}
	viaArgs, ok := child.(*dart.Args)
	if !ok || viaArgs != args {
		return false
	}

	var param dart.Param
	if named, isNamed := grand.(*dart.Named); isNamed {
		param, ok = callee.ByName(named.Label)
	} else {
		idx := args.PositionalIndex(grand)
		if idx < 0 {
			return false
		}
		param, ok = callee.Positional(idx)
	}
	if !ok {
		return false
	}
	for _, name := range c.cat.ParamAnnotations {
		if param.HasAnnotation(name) {
			return true
		}
	}
	return false
}

// trailingMarker implements the fallback rule: after the statement's
// terminating delimiter on the literal's end line, a comment containing the
// marker suppresses the literal. The scan is lexical over that single line,
// skipping string contents so a quoted marker never counts.
func (c *Classifier) trailingMarker(u *dart.Unit, lit *dart.Str) bool {
	if lit.End() <= lit.Pos() {
		return false
	}
	line := u.LineOf(lit.End() - 1)
	_, lineEnd := u.LineSpan(line)

	semi := false
	i := lit.End()
	for i < lineEnd {
		switch ch := u.Text[i]; {
		case ch == ';':
			semi = true
			i++
		case ch == '\'' || ch == '"':
			i = skipQuoted(u.Text, i, lineEnd)
		case ch == '/' && i+1 < lineEnd && u.Text[i+1] == '/':
			return semi && strings.Contains(u.Text[i:lineEnd], c.cat.Marker)
		case ch == '/' && i+1 < lineEnd && u.Text[i+1] == '*':
			var comment string
			if term := strings.Index(u.Text[i+2:lineEnd], "*/"); term < 0 {
				comment = u.Text[i:lineEnd]
				i = lineEnd
			} else {
				end := i + 2 + term + 2
				comment = u.Text[i:end]
				i = end
			}
			if semi && strings.Contains(comment, c.cat.Marker) {
				return true
			}
		default:
			i++
		}
	}
	return false
}

// skipQuoted advances past a quoted string starting at i, honoring
// backslash escapes, stopping at bound for strings that run off the line.
func skipQuoted(text string, i, bound int) int {
	quote := text[i]
	i++
	for i < bound {
		switch text[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		default:
			i++
		}
	}
	return bound
}
