package dart

import (
	"encoding/json"
	"fmt"
)

// The serialized unit format is the host interchange contract:
//
//	{
//	  "path":  "lib/main.dart",
//	  "text":  "<full source text>",
//	  "types": {"MyLogger": "Logger", "Logger": ""},
//	  "root":  {"kind": "unit", "start": 0, "end": 42, "children": [...]}
//	}
//
// Nodes are kind-discriminated objects. Beyond "kind", "start" and "end",
// each kind reads its own fields: "string" takes "value" (omitted when the
// value is not statically known) and "parts" (interpolation), "import"
// takes "uri", "new" takes "type", "callee" and "args", "call" takes
// "name", "type", "target", "callee" and "args", "args" takes "children", "named"
// takes "label" and "valueNode", "ident" takes "name" and "type",
// "concat" takes "parts", "unit" and "other" take "children". Unknown
// kinds decode as pass-through nodes so newer hosts stay readable.

type unitJSON struct {
	Path  string            `json:"path"`
	Text  string            `json:"text"`
	Types map[string]string `json:"types"`
	Root  *nodeJSON         `json:"root"`
}

type nodeJSON struct {
	Kind     string        `json:"kind"`
	Start    int           `json:"start"`
	End      int           `json:"end"`
	Value    *string       `json:"value"`
	ValNode  *nodeJSON     `json:"valueNode"`
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Label    string        `json:"label"`
	URI      *nodeJSON     `json:"uri"`
	Target   *nodeJSON     `json:"target"`
	Args     *nodeJSON     `json:"args"`
	Callee   *callableJSON `json:"callee"`
	Parts    []*nodeJSON   `json:"parts"`
	Children []*nodeJSON   `json:"children"`
}

type callableJSON struct {
	Name   string      `json:"name"`
	Params []paramJSON `json:"params"`
}

type paramJSON struct {
	Name        string   `json:"name"`
	Named       bool     `json:"named"`
	Annotations []string `json:"annotations"`
}

// DecodeUnit reads one serialized resolved unit.
func DecodeUnit(data []byte) (*Unit, error) {
	var raw unitJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode unit: %w", err)
	}
	if raw.Path == "" {
		return nil, fmt.Errorf("decode unit: missing path")
	}
	if raw.Root == nil {
		return nil, fmt.Errorf("decode unit: missing root")
	}
	root, err := decodeNode(raw.Root)
	if err != nil {
		return nil, fmt.Errorf("decode unit %s: %w", raw.Path, err)
	}
	file, ok := root.(*File)
	if !ok {
		file = NewFile(root.Pos(), root.End(), root)
	}
	return NewUnit(raw.Path, raw.Text, TypeTable(raw.Types), file), nil
}

func decodeNode(raw *nodeJSON) (Node, error) {
	if raw == nil {
		return nil, fmt.Errorf("null node")
	}
	switch raw.Kind {
	case "unit":
		kids, err := decodeList(raw.Children)
		if err != nil {
			return nil, err
		}
		return NewFile(raw.Start, raw.End, kids...), nil

	case "import":
		var uri *Str
		if raw.URI != nil {
			n, err := decodeNode(raw.URI)
			if err != nil {
				return nil, err
			}
			s, ok := n.(*Str)
			if !ok {
				return nil, fmt.Errorf("import uri at %d: not a string node", raw.Start)
			}
			uri = s
		}
		return NewImport(raw.Start, raw.End, uri), nil

	case "new":
		args, err := decodeArgs(raw.Args)
		if err != nil {
			return nil, err
		}
		return NewConstruct(raw.Start, raw.End, raw.Type, decodeCallable(raw.Callee), args), nil

	case "call":
		var target Node
		if raw.Target != nil {
			t, err := decodeNode(raw.Target)
			if err != nil {
				return nil, err
			}
			target = t
		}
		args, err := decodeArgs(raw.Args)
		if err != nil {
			return nil, err
		}
		return NewTypedCall(raw.Start, raw.End, raw.Name, raw.Type, target, decodeCallable(raw.Callee), args), nil

	case "args":
		list, err := decodeList(raw.Children)
		if err != nil {
			return nil, err
		}
		return NewArgs(raw.Start, raw.End, list...), nil

	case "named":
		if raw.ValNode == nil {
			return nil, fmt.Errorf("named argument %q at %d: missing value node", raw.Label, raw.Start)
		}
		value, err := decodeNode(raw.ValNode)
		if err != nil {
			return nil, err
		}
		return NewNamed(raw.Start, raw.End, raw.Label, value), nil

	case "string":
		if len(raw.Parts) > 0 {
			parts, err := decodeList(raw.Parts)
			if err != nil {
				return nil, err
			}
			return NewInterp(raw.Start, raw.End, parts...), nil
		}
		if raw.Value != nil {
			return NewStr(raw.Start, raw.End, *raw.Value), nil
		}
		return NewRawStr(raw.Start, raw.End), nil

	case "concat":
		parts, err := decodeList(raw.Parts)
		if err != nil {
			return nil, err
		}
		return NewConcat(raw.Start, raw.End, parts...), nil

	case "ident":
		return NewIdent(raw.Start, raw.End, raw.Name, raw.Type), nil

	default:
		kids, err := decodeList(raw.Children)
		if err != nil {
			return nil, err
		}
		return NewOther(raw.Start, raw.End, kids...), nil
	}
}

func decodeList(raws []*nodeJSON) ([]Node, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	nodes := make([]Node, 0, len(raws))
	for _, r := range raws {
		n, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeArgs(raw *nodeJSON) (*Args, error) {
	if raw == nil {
		return nil, nil
	}
	n, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	args, ok := n.(*Args)
	if !ok {
		return nil, fmt.Errorf("argument list at %d: unexpected kind %q", raw.Start, raw.Kind)
	}
	return args, nil
}

func decodeCallable(raw *callableJSON) *Callable {
	if raw == nil {
		return nil
	}
	c := &Callable{Name: raw.Name}
	for _, p := range raw.Params {
		c.Params = append(c.Params, Param{Name: p.Name, Named: p.Named, Annotations: p.Annotations})
	}
	return c
}
