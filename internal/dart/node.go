// Package dart models the resolved Dart syntax trees the engine analyzes.
//
// The engine never parses Dart itself. A host analyzer resolves names and
// types on its side and hands over units in the shape defined here, either
// by constructing them through the builder functions or by serializing them
// to the JSON form understood by DecodeUnit. The node set is deliberately
// closed: it covers only the ancestor kinds the suppression rules inspect
// (imports, constructions, invocations and their argument structure) plus a
// generic container for everything else.
package dart

// NodeKind discriminates the concrete node types.
type NodeKind uint8

const (
	KindFile NodeKind = iota
	KindImport
	KindConstruct
	KindCall
	KindArgs
	KindNamed
	KindString
	KindConcat
	KindIdent
	KindOther
)

var kindNames = [...]string{
	KindFile:      "unit",
	KindImport:    "import",
	KindConstruct: "new",
	KindCall:      "call",
	KindArgs:      "args",
	KindNamed:     "named",
	KindString:    "string",
	KindConcat:    "concat",
	KindIdent:     "ident",
	KindOther:     "other",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a resolved syntax tree node. The interface is sealed; only the
// types in this package implement it.
type Node interface {
	Kind() NodeKind
	// Pos and End are byte offsets into the unit text, half-open.
	Pos() int
	End() int
	// Parent is nil for the root. Links are established by NewUnit and
	// DecodeUnit.
	Parent() Node
	// Children returns the direct children in document order.
	Children() []Node

	setParent(Node)
}

type base struct {
	start, end int
	parent     Node
}

func (b *base) Pos() int { return b.start }

func (b *base) End() int { return b.end }

func (b *base) Parent() Node { return b.parent }

func (b *base) setParent(p Node) { b.parent = p }

// File is the root node of one compilation unit.
type File struct {
	base
	Decls []Node
}

func (*File) Kind() NodeKind { return KindFile }

func (f *File) Children() []Node { return f.Decls }

// Import is an import or part directive. URI is the directive's path
// literal, when present.
type Import struct {
	base
	URI *Str
}

func (*Import) Kind() NodeKind { return KindImport }

func (im *Import) Children() []Node {
	if im.URI == nil {
		return nil
	}
	return []Node{im.URI}
}

// Construct is an object-construction expression. Type is the name of the
// constructed (result) type; Ctor is the resolved constructor, nil when the
// host could not resolve it.
type Construct struct {
	base
	Type string
	Ctor *Callable
	Args *Args
}

func (*Construct) Kind() NodeKind { return KindConstruct }

func (c *Construct) Children() []Node {
	if c.Args == nil {
		return nil
	}
	return []Node{c.Args}
}

// Call is a method or function invocation. Target is the explicit receiver
// expression, nil for bare calls. Callee is the resolved callable, nil when
// the host could not resolve it. Type is the invocation's static result
// type, empty when unresolved.
type Call struct {
	base
	Name   string
	Type   string
	Target Node
	Callee *Callable
	Args   *Args
}

func (*Call) Kind() NodeKind { return KindCall }

func (c *Call) Children() []Node {
	var kids []Node
	if c.Target != nil {
		kids = append(kids, c.Target)
	}
	if c.Args != nil {
		kids = append(kids, c.Args)
	}
	return kids
}

// Args is an argument list. List holds positional expressions and Named
// wrappers in source order.
type Args struct {
	base
	List []Node
}

func (*Args) Kind() NodeKind { return KindArgs }

func (a *Args) Children() []Node { return a.List }

// PositionalIndex returns the index of n among the positional (unnamed)
// arguments, or -1 when n is not a direct element of the list.
func (a *Args) PositionalIndex(n Node) int {
	idx := 0
	for _, arg := range a.List {
		if arg == n {
			return idx
		}
		if _, named := arg.(*Named); !named {
			idx++
		}
	}
	return -1
}

// Named is a named argument: label plus the wrapped value expression.
type Named struct {
	base
	Label string
	Value Node
}

func (*Named) Kind() NodeKind { return KindNamed }

func (n *Named) Children() []Node {
	if n.Value == nil {
		return nil
	}
	return []Node{n.Value}
}

// Str is a string literal. Value is the statically-known value and is nil
// for interpolated strings; interpolations carry their embedded expressions
// in Parts.
type Str struct {
	base
	Value *string
	Parts []Node
}

func (*Str) Kind() NodeKind { return KindString }

func (s *Str) Children() []Node { return s.Parts }

// Static reports the statically-known value, if any.
func (s *Str) Static() (string, bool) {
	if s.Value == nil {
		return "", false
	}
	return *s.Value, true
}

// Concat groups adjacent or '+'-joined string parts. Each part keeps its own
// node; a part's value is not considered static in isolation.
type Concat struct {
	base
	Parts []Node
}

func (*Concat) Kind() NodeKind { return KindConcat }

func (c *Concat) Children() []Node { return c.Parts }

// Ident is a simple identifier expression. Type is the resolved static type
// name, empty when unresolved.
type Ident struct {
	base
	Name string
	Type string
}

func (*Ident) Kind() NodeKind { return KindIdent }

func (*Ident) Children() []Node { return nil }

// Other is any node the suppression rules never match on: blocks,
// statements, declarations, operators. The walk passes through it.
type Other struct {
	base
	Kids []Node
}

func (*Other) Kind() NodeKind { return KindOther }

func (o *Other) Children() []Node { return o.Kids }

// Callable is the resolved target of a call or construction: name plus the
// declared formal parameters in declaration order.
type Callable struct {
	Name   string
	Params []Param
}

// Positional returns the i-th positional formal parameter, skipping named
// formals.
func (c *Callable) Positional(i int) (Param, bool) {
	if i < 0 {
		return Param{}, false
	}
	n := 0
	for _, p := range c.Params {
		if p.Named {
			continue
		}
		if n == i {
			return p, true
		}
		n++
	}
	return Param{}, false
}

// ByName returns the named formal parameter with the given name.
func (c *Callable) ByName(name string) (Param, bool) {
	for _, p := range c.Params {
		if p.Named && p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Param is one formal parameter of a Callable.
type Param struct {
	Name        string
	Named       bool
	Annotations []string
}

// HasAnnotation reports whether the parameter carries the annotation with
// the given simple name.
func (p Param) HasAnnotation(name string) bool {
	for _, a := range p.Annotations {
		if a == name {
			return true
		}
	}
	return false
}

// StaticType resolves the static type name of an expression node, empty
// when the node kind carries no type or the host left it unresolved.
func StaticType(n Node) string {
	switch e := n.(type) {
	case *Ident:
		return e.Type
	case *Construct:
		return e.Type
	case *Call:
		return e.Type
	case *Str:
		return "String"
	case *Concat:
		return "String"
	default:
		return ""
	}
}

// Walk traverses the tree rooted at n in pre-order. visit's return controls
// whether the walk descends into the node's children.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, visit)
	}
}

func link(n Node) {
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		c.setParent(n)
		link(c)
	}
}
