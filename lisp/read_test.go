package lisp

import (
	"strings"
	"testing"

	"github.com/npillmayer/mumble/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadSingleExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.lisp")
	defer teardown()
	//
	for input, expected := range map[string]Value{
		"42":            Number(42),
		"-2.5":          Number(-2.5),
		"head":          Symbol("head"),
		"(+ 1 {2 3})":   NewSExpr(Symbol("+"), Number(1), NewQExpr(Number(2), Number(3))),
		"{}":            &QExpr{},
		"()":            &SExpr{},
		"+ 1 2":         NewSExpr(Symbol("+"), Number(1), Number(2)),
		"":              &SExpr{},
		"(a) ; comment": NewSExpr(Symbol("a")),
	} {
		tree, err := syntax.Parse(input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		v := Read(tree)
		if !Equal(v, expected) {
			t.Errorf("%q: expected %s, got %s", input, expected, v)
		}
	}
}

func TestReadMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.lisp")
	defer teardown()
	//
	bad := &syntax.Node{Tag: syntax.TagNumber, Contents: "1.2.3"}
	if v := Read(bad); !IsErrorOfKind(v, MalformedSyntax) {
		t.Errorf("expected malformed number to be reported, got %v", v)
	}
	odd := &syntax.Node{Tag: "strange", Children: []*syntax.Node{
		{Tag: syntax.TagNumber, Contents: "1"},
		{Tag: syntax.TagNumber, Contents: "2"},
	}}
	if v := Read(odd); !IsErrorOfKind(v, MalformedSyntax) {
		t.Errorf("expected unknown node to be reported, got %v", v)
	}
	wrapper := &syntax.Node{Tag: "strange", Children: []*syntax.Node{
		{Tag: syntax.TagChar, Contents: "("},
		{Tag: "ws", Contents: "  "},
		{Tag: syntax.TagSymbol, Contents: "x"},
	}}
	if v := Read(wrapper); v != Symbol("x") {
		t.Errorf("expected wrapper to collapse to symbol, got %v", v)
	}
	if v := Read(nil); !IsErrorOfKind(v, MalformedSyntax) {
		t.Errorf("expected nil tree to be reported")
	}
}

func TestReadErrorInsideList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.lisp")
	defer teardown()
	//
	huge := "1" + strings.Repeat("9", 400) // out of range for float64
	tree, err := syntax.Parse("(len {1 " + huge + "})")
	if err != nil {
		t.Fatal(err)
	}
	if v := Read(tree); !IsErrorOfKind(v, MalformedSyntax) {
		t.Errorf("expected out-of-range number to make the whole input malformed, got %v", v)
	}
}
