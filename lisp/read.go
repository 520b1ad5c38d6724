package lisp

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mumble/syntax"
)

// Read converts a parse tree, as produced by syntax.Parse, into a value.
// The root of a parse tree becomes an S-expression of the top-level
// expressions, except for inputs containing exactly one expression, which is
// returned unwrapped.
//
// Read never fails with a Go error: nodes it does not understand result in
// error values of kind MalformedSyntax. The first error found anywhere in the
// tree is the result of Read.
func Read(node *syntax.Node) Value {
	if node == nil {
		return Errorf(MalformedSyntax, "no syntax tree to read")
	}
	switch {
	case node.Is("number"):
		n, err := strconv.ParseFloat(node.Contents, 64)
		if err != nil {
			tracer().Errorf("invalid number '%s': %v", node.Contents, err)
			return Errorf(MalformedSyntax, "invalid number '%s'", node.Contents)
		}
		return Number(n)
	case node.Is("symbol"):
		return Symbol(node.Contents)
	}
	isGroup := node.Is("sexpr") || node.Is("qexpr")
	children := meaningful(node.Children)
	if !isGroup && len(children) == 1 {
		return Read(children[0])
	}
	var cells []Value
	if len(children) > 0 {
		cells = make([]Value, 0, len(children))
	}
	for _, ch := range children {
		v := Read(ch)
		if _, isErr := v.(Error); isErr {
			return v
		}
		cells = append(cells, v)
	}
	switch {
	case node.Tag == syntax.TagRoot || node.Is("sexpr"):
		return &SExpr{Cells: cells}
	case node.Is("qexpr"):
		return &QExpr{Cells: cells}
	}
	tracer().Errorf("unknown syntax node %s", node)
	return Errorf(MalformedSyntax, "unknown syntax node '%s'", node.Tag)
}

// meaningful filters out delimiters, anchors and whitespace.
func meaningful(nodes []*syntax.Node) []*syntax.Node {
	var m []*syntax.Node
	for _, n := range nodes {
		switch {
		case n == nil:
			continue
		case n.Is("number") || n.Is("symbol"):
		case n.Tag == syntax.TagChar || n.Tag == syntax.TagRegex:
			continue
		case n.IsLeaf() && strings.TrimSpace(n.Contents) == "":
			continue
		}
		m = append(m, n)
	}
	return m
}
