package main

import (
	"github.com/npillmayer/mumble/lisp"
	"github.com/npillmayer/mumble/syntax"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// valueTree creates a tree representation of a value, suitable for
// display on a terminal.
func valueTree(v lisp.Value) pterm.TreeNode {
	ll := leveledValue(v, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	return putils.TreeFromLeveledList(ll)
}

func leveledValue(v lisp.Value, ll pterm.LeveledList, level int) pterm.LeveledList {
	var cells []lisp.Value
	switch x := v.(type) {
	case *lisp.SExpr:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "()"})
		cells = x.Cells
	case *lisp.QExpr:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "{}"})
		cells = x.Cells
	case *lisp.Closure:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "@"})
		params := make([]lisp.Value, len(x.Params))
		for i, p := range x.Params {
			params[i] = p
		}
		ll = leveledValue(&lisp.QExpr{Cells: params}, ll, level+1)
		return leveledValue(x.Body, ll, level+1)
	default:
		return append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  v.String() + " : " + v.Type().String(),
		})
	}
	for _, c := range cells {
		ll = leveledValue(c, ll, level+1)
	}
	return ll
}

// nodeTree creates a tree representation of a parse tree.
func nodeTree(n *syntax.Node) pterm.TreeNode {
	return pterm.TreeNode{Children: []pterm.TreeNode{treeNode(n)}}
}

func treeNode(n *syntax.Node) pterm.TreeNode {
	node := pterm.TreeNode{Text: n.String()}
	for _, ch := range n.Children {
		node.Children = append(node.Children, treeNode(ch))
	}
	return node
}
