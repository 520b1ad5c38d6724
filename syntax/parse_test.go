package syntax

import (
	"testing"

	"github.com/npillmayer/mumble"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.syntax")
	defer teardown()
	//
	lex, err := Lexer()
	if err != nil {
		t.Fatal(err)
	}
	input := "(+ -5 1.25 {head x}) - ; comment"
	scan, err := lex.Scanner(input)
	if err != nil {
		t.Fatal(err)
	}
	scan.SetErrorHandler(func(e error) {
		t.Error(e)
	})
	expected := []string{"(", "+", "-5", "1.25", "{", "head", "x", "}", ")", "-"}
	var lexemes []string
	for token := scan.NextToken(); token.TokType() != EOF; token = scan.NextToken() {
		t.Logf("token = %q with type %s", token.Lexeme(), TokenName(token.TokType()))
		lexemes = append(lexemes, token.Lexeme())
	}
	if len(lexemes) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(lexemes), lexemes)
	}
	for i, l := range lexemes {
		if l != expected[i] {
			t.Errorf("token #%d: expected %q, got %q", i, expected[i], l)
		}
	}
}

func TestScannerNumberVersusSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.syntax")
	defer teardown()
	//
	lex, _ := Lexer()
	for input, typ := range map[string]int{"-7": int(NUM), "-": int(SYM), "7x": int(SYM), "12": int(NUM)} {
		scan, _ := lex.Scanner(input)
		tok := scan.NextToken()
		if int(tok.TokType()) != typ {
			t.Errorf("%q: expected %s, got %s", input, TokenName(mumble.TokType(typ)), TokenName(tok.TokType()))
		}
	}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.syntax")
	defer teardown()
	//
	root, err := Parse("(+ 1 {2 3})")
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", root.Dump())
	if root.Tag != TagRoot || len(root.Children) != 3 {
		t.Fatalf("expected root with anchors and 1 expression, got %s", root)
	}
	sexpr := root.Children[1]
	if !sexpr.Is("sexpr") || sexpr.Is("qexpr") {
		t.Errorf("expected s-expression node, got %s", sexpr)
	}
	if len(sexpr.Children) != 5 { // ( + 1 {…} )
		t.Fatalf("expected 5 children of s-expression, got %d", len(sexpr.Children))
	}
	if sexpr.Children[0].Tag != TagChar || sexpr.Children[0].Contents != "(" {
		t.Errorf("expected opening delimiter, got %s", sexpr.Children[0])
	}
	if !sexpr.Children[1].Is("symbol") || sexpr.Children[1].Contents != "+" {
		t.Errorf("expected symbol '+', got %s", sexpr.Children[1])
	}
	if !sexpr.Children[2].Is("number") {
		t.Errorf("expected number, got %s", sexpr.Children[2])
	}
	if q := sexpr.Children[3]; !q.Is("qexpr") || len(q.Children) != 4 {
		t.Errorf("expected q-expression with 2 numbers, got %s", q)
	}
	if root.Span != (mumble.Span{0, 11}) {
		t.Errorf("expected root span (0…11), got %s", root.Span)
	}
}

func TestParseEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.syntax")
	defer teardown()
	//
	root, err := Parse("   ; nothing here")
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 2 {
		t.Errorf("expected only anchors for empty input, got %d children", len(root.Children))
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.syntax")
	defer teardown()
	//
	for _, input := range []string{"(+ 1 2", "{1 2)", ")", "(1 }", "(+ 1 #)"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected %q to be rejected", input)
		} else {
			t.Logf("%q: %v", input, err)
		}
	}
}
