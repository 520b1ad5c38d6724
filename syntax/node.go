package syntax

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/mumble"
)

// Tags of parse tree nodes.
const (
	TagRoot   = ">"
	TagNumber = "expr|number|regex"
	TagSymbol = "expr|symbol|regex"
	TagSExpr  = "expr|sexpr|>"
	TagQExpr  = "expr|qexpr|>"
	TagChar   = "char"
	TagRegex  = "regex"
)

// Node is a node of a parse tree. Leaves carry the matched input in Contents,
// inner nodes carry their children, including delimiter leaves.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
	Span     mumble.Span
}

// Is checks if n has been folded from grammar rule kind, i.e. if kind is one
// of the '|'-separated components of n's tag.
func (n *Node) Is(kind string) bool {
	if n == nil {
		return false
	}
	for _, t := range strings.Split(n.Tag, "|") {
		if t == kind {
			return true
		}
	}
	return false
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return n == nil || len(n.Children) == 0
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("%s '%s'", n.Tag, n.Contents)
	}
	return fmt.Sprintf("%s [%d]", n.Tag, len(n.Children))
}

// Dump returns an indented, structural representation of the subtree at n,
// one node per line.
func (n *Node) Dump() string {
	var b bytes.Buffer
	n.dump(&b, 0)
	return b.String()
}

func (n *Node) dump(b *bytes.Buffer, level int) {
	b.WriteString(strings.Repeat("  ", level))
	b.WriteString(n.String())
	b.WriteByte('\n')
	if n == nil {
		return
	}
	for _, ch := range n.Children {
		ch.dump(b, level+1)
	}
}
