// Package codec reads and writes expression trees as JSON or YAML documents.
//
// A document mirrors the tree one node per object:
//
//	{"type": "add",
//	 "left":  {"type": "var", "name": "x"},
//	 "right": {"type": "pow", "base": {"type": "var", "name": "x"}, "exp": 2}}
//
// Decoding builds nodes only through the expr constructors.
package codec

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Node type tags.
const (
	TypeConst = "const"
	TypeVar   = "var"
	TypeNeg   = "neg"
	TypeAdd   = "add"
	TypeMul   = "mul"
	TypePow   = "pow"
)

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Doc is the serialized form of one node.
type Doc struct {
	Type    string   `json:"type" yaml:"type"`
	Value   *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Operand *Doc     `json:"operand,omitempty" yaml:"operand,omitempty"`
	Left    *Doc     `json:"left,omitempty" yaml:"left,omitempty"`
	Right   *Doc     `json:"right,omitempty" yaml:"right,omitempty"`
	Base    *Doc     `json:"base,omitempty" yaml:"base,omitempty"`
	Exp     *int32   `json:"exp,omitempty" yaml:"exp,omitempty"`
}

// Encode converts a tree to its document form.
func Encode(node expr.Node) *Doc {
	switch n := node.(type) {
	case *expr.ConstNode:
		v := n.Val
		return &Doc{Type: TypeConst, Value: &v}
	case *expr.VarNode:
		return &Doc{Type: TypeVar, Name: n.Name}
	case *expr.NegNode:
		return &Doc{Type: TypeNeg, Operand: Encode(n.Child)}
	case *expr.AddNode:
		return &Doc{Type: TypeAdd, Left: Encode(n.Left), Right: Encode(n.Right)}
	case *expr.MulNode:
		return &Doc{Type: TypeMul, Left: Encode(n.Left), Right: Encode(n.Right)}
	case *expr.ExpNode:
		e := n.Exp
		return &Doc{Type: TypePow, Base: Encode(n.Base), Exp: &e}
	default:
		panic(fmt.Sprintf("codec: unhandled node %T", node))
	}
}

// Decode converts a document to a tree. Every problem in the document is
// reported, each prefixed with the path of the offending node.
func Decode(doc *Doc) (expr.Node, error) {
	var errs *multierror.Error
	node := decode(doc, "$", &errs)
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return node, nil
}

func decode(doc *Doc, path string, errs **multierror.Error) expr.Node {
	fail := func(format string, args ...interface{}) expr.Node {
		*errs = multierror.Append(*errs, errors.Errorf("%s: "+format, append([]interface{}{path}, args...)...))
		return nil
	}
	child := func(d *Doc, field string) expr.Node {
		if d == nil {
			return fail("%s node requires %q", doc.Type, field)
		}
		return decode(d, path+"."+field, errs)
	}

	if doc == nil {
		return fail("missing node")
	}

	switch doc.Type {
	case TypeConst:
		if doc.Value == nil {
			return fail("const node requires \"value\"")
		}
		return expr.Constant(*doc.Value)

	case TypeVar:
		if doc.Name == "" {
			return fail("var node requires \"name\"")
		}
		return expr.Variable(doc.Name)

	case TypeNeg:
		c := child(doc.Operand, "operand")
		if c == nil {
			return nil
		}
		return expr.Negate(c)

	case TypeAdd, TypeMul:
		l := child(doc.Left, "left")
		r := child(doc.Right, "right")
		if l == nil || r == nil {
			return nil
		}
		if doc.Type == TypeAdd {
			return expr.Add(l, r)
		}
		return expr.Mul(l, r)

	case TypePow:
		b := child(doc.Base, "base")
		if doc.Exp == nil {
			fail("pow node requires \"exp\"")
		}
		if b == nil || doc.Exp == nil {
			return nil
		}
		return expr.Power(b, *doc.Exp)

	case "":
		return fail("node has no type")

	default:
		return fail("unknown node type %q", doc.Type)
	}
}

// Marshal encodes a tree in the given format.
func Marshal(node expr.Node, format Format) ([]byte, error) {
	doc := Encode(node)
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, "encoding yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding yaml")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Errorf("unsupported format %q", format)
	}
}

// Unmarshal decodes a tree from data in the given format.
func Unmarshal(data []byte, format Format) (expr.Node, error) {
	var doc Doc
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decoding json")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	default:
		return nil, errors.Errorf("unsupported format %q", format)
	}
	return Decode(&doc)
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("cannot infer document format from %q", path)
	}
}

// ReadFile loads a tree from a .json, .yaml or .yml file.
func ReadFile(path string) (expr.Node, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	node, err := Unmarshal(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return node, nil
}
