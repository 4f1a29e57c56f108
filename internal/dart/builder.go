package dart

// Builder functions for hosts and tests that assemble trees in process.
// Spans are byte offsets into the unit text; the builders do not check them
// against the text, NewUnit's line index clamps at conversion time instead.

// NewFile builds the root node of a unit.
func NewFile(start, end int, decls ...Node) *File {
	return &File{base: base{start: start, end: end}, Decls: decls}
}

// NewImport builds an import directive around its path literal.
func NewImport(start, end int, uri *Str) *Import {
	return &Import{base: base{start: start, end: end}, URI: uri}
}

// NewConstruct builds an object-construction expression. ctor may be nil
// for an unresolved constructor.
func NewConstruct(start, end int, typeName string, ctor *Callable, args *Args) *Construct {
	return &Construct{base: base{start: start, end: end}, Type: typeName, Ctor: ctor, Args: args}
}

// NewCall builds an invocation. target may be nil for bare calls and callee
// may be nil when unresolved.
func NewCall(start, end int, name string, target Node, callee *Callable, args *Args) *Call {
	return &Call{base: base{start: start, end: end}, Name: name, Target: target, Callee: callee, Args: args}
}

// NewTypedCall builds an invocation that additionally carries its static
// result type, for calls used as receivers of further calls.
func NewTypedCall(start, end int, name, typ string, target Node, callee *Callable, args *Args) *Call {
	c := NewCall(start, end, name, target, callee, args)
	c.Type = typ
	return c
}

// NewArgs builds an argument list.
func NewArgs(start, end int, list ...Node) *Args {
	return &Args{base: base{start: start, end: end}, List: list}
}

// NewNamed builds a named argument.
func NewNamed(start, end int, label string, value Node) *Named {
	return &Named{base: base{start: start, end: end}, Label: label, Value: value}
}

// NewStr builds a string literal with a statically-known value.
func NewStr(start, end int, value string) *Str {
	return &Str{base: base{start: start, end: end}, Value: &value}
}

// NewRawStr builds a string literal without a statically-known value.
func NewRawStr(start, end int) *Str {
	return &Str{base: base{start: start, end: end}}
}

// NewInterp builds an interpolated string literal with its embedded
// expressions. Interpolations never carry a static value.
func NewInterp(start, end int, parts ...Node) *Str {
	return &Str{base: base{start: start, end: end}, Parts: parts}
}

// NewConcat builds a string concatenation over its parts.
func NewConcat(start, end int, parts ...Node) *Concat {
	return &Concat{base: base{start: start, end: end}, Parts: parts}
}

// NewIdent builds an identifier expression. typ is the resolved static type
// name, empty when unresolved.
func NewIdent(start, end int, name, typ string) *Ident {
	return &Ident{base: base{start: start, end: end}, Name: name, Type: typ}
}

// NewOther builds a pass-through node.
func NewOther(start, end int, kids ...Node) *Other {
	return &Other{base: base{start: start, end: end}, Kids: kids}
}
