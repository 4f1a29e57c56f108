package analysis

import (
	"iter"

	"arblint/internal/dart"
)

// FoundLiteral is one string literal accepted for flagging: its location
// within the unit, the statically-known value when the literal is a single
// unconcatenated constant string, and the originating node.
type FoundLiteral struct {
	Path   string
	Offset int
	Length int
	Start  dart.Position
	End    dart.Position
	Value  *string
	Node   *dart.Str
}

// Static reports the literal's statically-known value, if any.
func (f FoundLiteral) Static() (string, bool) {
	if f.Value == nil {
		return "", false
	}
	return *f.Value, true
}

// Scanner visits every string literal of a unit in document order and
// yields the ones the classifier does not suppress.
type Scanner struct {
	classifier *Classifier
}

// NewScanner builds a scanner over the given classifier.
func NewScanner(classifier *Classifier) *Scanner {
	return &Scanner{classifier: classifier}
}

// Literals returns a lazy pre-order sequence over the unit's accepted
// literals. The sequence is finite and single-pass; every call re-walks
// the tree from scratch, so repeated calls on an unchanged unit yield
// identical sequences.
func (s *Scanner) Literals(u *dart.Unit) iter.Seq[FoundLiteral] {
	return func(yield func(FoundLiteral) bool) {
		s.walk(u, u.Root, yield)
	}
}

func (s *Scanner) walk(u *dart.Unit, n dart.Node, yield func(FoundLiteral) bool) bool {
	if n == nil {
		return true
	}
	if lit, ok := n.(*dart.Str); ok {
		if !s.classifier.ShouldSuppress(u, lit) {
			if !yield(s.found(u, lit)) {
				return false
			}
		}
	}
	for _, child := range n.Children() {
		if !s.walk(u, child, yield) {
			return false
		}
	}
	return true
}

func (s *Scanner) found(u *dart.Unit, lit *dart.Str) FoundLiteral {
	f := FoundLiteral{
		Path:   u.Path,
		Offset: lit.Pos(),
		Length: lit.End() - lit.Pos(),
		Start:  u.Position(lit.Pos()),
		End:    u.Position(lit.End()),
		Node:   lit,
	}
	if v, ok := lit.Static(); ok && !concatPart(lit) {
		f.Value = &v
	}
	return f
}

// concatPart reports whether the literal is one piece of a concatenation;
// such a piece never contributes a static value on its own.
func concatPart(lit *dart.Str) bool {
	_, ok := lit.Parent().(*dart.Concat)
	return ok
}
