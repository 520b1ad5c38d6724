package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/mumble"
)

var lexer *LMAdapter
var lexerErr error

var startOnce sync.Once // monitors one-time creation of the lexer

func createLexer() (*LMAdapter, error) {
	startOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer, lexerErr = Lexer()
	})
	return lexer, lexerErr
}

// Parse parses an input string, given in Mumble format. It returns the root
// node of a parse tree, or an error in case of failure. An input may contain
// any number of expressions, including none.
func Parse(input string) (*Node, error) {
	lm, err := createLexer()
	if err != nil {
		return nil, fmt.Errorf("cannot create lexer: %w", err)
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{scan: scan}
	scan.SetErrorHandler(func(e error) {
		tracer().Errorf("scanner error: %v", e)
		if p.err == nil {
			p.err = fmt.Errorf("illegal input: %w", e)
		}
	})
	p.advance()
	root := p.parseMumble()
	if p.err != nil {
		return nil, p.err
	}
	return root, nil
}

// parser is a predictive parser for the Mumble grammar (see package doc).
// Each rule is LL(1) given the leading token.
type parser struct {
	scan *LMScanner
	tok  mumble.Token
	err  error
}

func (p *parser) advance() {
	p.tok = p.scan.NextToken()
}

func (p *parser) fail(format string, args ...interface{}) {
	if p.err == nil {
		p.err = fmt.Errorf(format, args...)
	}
}

// mumble : /^/ <expr>* /$/ ;
func (p *parser) parseMumble() *Node {
	root := &Node{Tag: TagRoot}
	root.Children = append(root.Children, &Node{Tag: TagRegex})
	for p.err == nil && p.tok.TokType() != EOF {
		if p.tok.TokType() == ')' || p.tok.TokType() == '}' {
			p.fail("unexpected %s at position %d", TokenName(p.tok.TokType()), p.tok.Span().From())
			break
		}
		root.Children = append(root.Children, p.parseExpr())
	}
	root.Children = append(root.Children, &Node{Tag: TagRegex})
	for _, ch := range root.Children {
		root.Span = root.Span.Extend(ch.Span)
	}
	return root
}

// expr : <number> | <symbol> | <sexpr> | <qexpr> ;
func (p *parser) parseExpr() *Node {
	tok := p.tok
	switch tok.TokType() {
	case NUM:
		p.advance()
		return &Node{Tag: TagNumber, Contents: tok.Lexeme(), Span: tok.Span()}
	case SYM:
		p.advance()
		return &Node{Tag: TagSymbol, Contents: tok.Lexeme(), Span: tok.Span()}
	case '(':
		return p.parseGroup(TagSExpr, ')')
	case '{':
		return p.parseGroup(TagQExpr, '}')
	}
	p.fail("unexpected %s at position %d", TokenName(tok.TokType()), tok.Span().From())
	return &Node{Tag: TagChar, Contents: tok.Lexeme(), Span: tok.Span()}
}

// sexpr : '(' <expr>* ')' ;
// qexpr : '{' <expr>* '}' ;
func (p *parser) parseGroup(tag string, closing mumble.TokType) *Node {
	open := p.tok
	group := &Node{Tag: tag, Span: open.Span()}
	group.Children = append(group.Children, &Node{Tag: TagChar, Contents: open.Lexeme(), Span: open.Span()})
	p.advance()
	for p.err == nil && p.tok.TokType() != closing {
		if p.tok.TokType() == EOF {
			p.fail("missing %s for %s at position %d", TokenName(closing),
				TokenName(open.TokType()), open.Span().From())
			return group
		}
		group.Children = append(group.Children, p.parseExpr())
	}
	if p.err != nil {
		return group
	}
	closer := p.tok
	group.Children = append(group.Children, &Node{Tag: TagChar, Contents: closer.Lexeme(), Span: closer.Span()})
	group.Span = group.Span.Extend(closer.Span())
	p.advance()
	return group
}
