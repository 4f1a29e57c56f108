package dart

import (
	"strings"
	"testing"
)

const sampleUnit = `{
  "path": "lib/main.dart",
  "text": "print(\"Hello world\");\n",
  "types": {"Logger": ""},
  "root": {
    "kind": "unit", "start": 0, "end": 22,
    "children": [
      {"kind": "other", "start": 0, "end": 21, "children": [
        {"kind": "call", "start": 0, "end": 20, "name": "print",
         "callee": {"name": "print", "params": [{"name": "object"}]},
         "args": {"kind": "args", "start": 5, "end": 20, "children": [
           {"kind": "string", "start": 6, "end": 19, "value": "Hello world"}
         ]}}
      ]}
    ]
  }
}`

func TestDecodeUnit(t *testing.T) {
	u, err := DecodeUnit([]byte(sampleUnit))
	if err != nil {
		t.Fatalf("DecodeUnit: %v", err)
	}
	if u.Path != "lib/main.dart" {
		t.Errorf("path = %q", u.Path)
	}
	if u.Supertype("Logger") != "" {
		t.Errorf("Logger supertype = %q, want empty", u.Supertype("Logger"))
	}

	var lit *Str
	Walk(u.Root, func(n Node) bool {
		if s, ok := n.(*Str); ok {
			lit = s
		}
		return true
	})
	if lit == nil {
		t.Fatal("no string literal decoded")
	}
	if v, ok := lit.Static(); !ok || v != "Hello world" {
		t.Errorf("static value = %q, %v", v, ok)
	}
	if got := u.Slice(lit.Pos(), lit.End()); got != `"Hello world"` {
		t.Errorf("raw slice = %q", got)
	}

	args, ok := lit.Parent().(*Args)
	if !ok {
		t.Fatalf("literal parent = %T, want *Args", lit.Parent())
	}
	call, ok := args.Parent().(*Call)
	if !ok {
		t.Fatalf("args parent = %T, want *Call", args.Parent())
	}
	if call.Name != "print" || call.Callee == nil || call.Callee.Name != "print" {
		t.Errorf("call = %q, callee = %+v", call.Name, call.Callee)
	}
	if p, ok := call.Callee.Positional(0); !ok || p.Name != "object" {
		t.Errorf("callee param = %+v, %v", p, ok)
	}

	if pos := u.Position(lit.Pos()); pos.Line != 1 || pos.Column != 7 {
		t.Errorf("literal position = %d:%d, want 1:7", pos.Line, pos.Column)
	}
}

func TestDecodeNamedAndReceiver(t *testing.T) {
	data := `{
	  "path": "lib/a.dart",
	  "text": "log.warn(msg: 'x')",
	  "root": {"kind": "unit", "start": 0, "end": 18, "children": [
	    {"kind": "call", "start": 0, "end": 18, "name": "warn",
	     "target": {"kind": "ident", "start": 0, "end": 3, "name": "log", "type": "Logger"},
	     "callee": {"name": "warn", "params": [{"name": "msg", "named": true, "annotations": ["nonNls"]}]},
	     "args": {"kind": "args", "start": 8, "end": 18, "children": [
	       {"kind": "named", "start": 9, "end": 17, "label": "msg",
	        "valueNode": {"kind": "string", "start": 14, "end": 17, "value": "x"}}
	     ]}}
	  ]}
	}`
	u, err := DecodeUnit([]byte(data))
	if err != nil {
		t.Fatalf("DecodeUnit: %v", err)
	}

	call, ok := u.Root.Decls[0].(*Call)
	if !ok {
		t.Fatalf("decl = %T, want *Call", u.Root.Decls[0])
	}
	recv, ok := call.Target.(*Ident)
	if !ok || recv.Type != "Logger" {
		t.Fatalf("target = %#v, want Logger ident", call.Target)
	}
	named, ok := call.Args.List[0].(*Named)
	if !ok || named.Label != "msg" {
		t.Fatalf("arg = %#v, want named msg", call.Args.List[0])
	}
	if _, ok := named.Value.(*Str); !ok {
		t.Fatalf("named value = %T, want *Str", named.Value)
	}
	p, ok := call.Callee.ByName("msg")
	if !ok || !p.HasAnnotation("nonNls") {
		t.Errorf("msg param = %+v, %v; want nonNls annotation", p, ok)
	}
}

func TestDecodeUnknownKindBecomesOther(t *testing.T) {
	data := `{
	  "path": "lib/a.dart",
	  "text": "x",
	  "root": {"kind": "unit", "start": 0, "end": 1, "children": [
	    {"kind": "await", "start": 0, "end": 1, "children": [
	      {"kind": "string", "start": 0, "end": 1, "value": "x"}
	    ]}
	  ]}
	}`
	u, err := DecodeUnit([]byte(data))
	if err != nil {
		t.Fatalf("DecodeUnit: %v", err)
	}
	other, ok := u.Root.Decls[0].(*Other)
	if !ok {
		t.Fatalf("unknown kind decoded as %T, want *Other", u.Root.Decls[0])
	}
	if len(other.Children()) != 1 {
		t.Errorf("children preserved = %d, want 1", len(other.Children()))
	}
}

func TestDecodeInterpolation(t *testing.T) {
	data := `{
	  "path": "lib/a.dart",
	  "text": "'a $x b'",
	  "root": {"kind": "unit", "start": 0, "end": 8, "children": [
	    {"kind": "string", "start": 0, "end": 8, "parts": [
	      {"kind": "ident", "start": 4, "end": 5, "name": "x", "type": "String"}
	    ]}
	  ]}
	}`
	u, err := DecodeUnit([]byte(data))
	if err != nil {
		t.Fatalf("DecodeUnit: %v", err)
	}
	s, ok := u.Root.Decls[0].(*Str)
	if !ok {
		t.Fatalf("decl = %T, want *Str", u.Root.Decls[0])
	}
	if _, static := s.Static(); static {
		t.Error("interpolated literal must not have a static value")
	}
	if len(s.Parts) != 1 {
		t.Errorf("parts = %d, want 1", len(s.Parts))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not json", `{`, "decode unit"},
		{"missing path", `{"text": "", "root": {"kind": "unit", "start": 0, "end": 0}}`, "missing path"},
		{"missing root", `{"path": "a.dart", "text": ""}`, "missing root"},
		{"bad import uri", `{"path": "a.dart", "text": "", "root": {"kind": "unit", "start": 0, "end": 0, "children": [
			{"kind": "import", "start": 0, "end": 0, "uri": {"kind": "ident", "start": 0, "end": 0, "name": "x"}}
		]}}`, "not a string node"},
		{"named without value", `{"path": "a.dart", "text": "", "root": {"kind": "unit", "start": 0, "end": 0, "children": [
			{"kind": "named", "start": 0, "end": 0, "label": "msg"}
		]}}`, "missing value node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeUnit([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}
