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
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token categories of Mumble. Delimiters use their character value.
const (
	EOF mumble.TokType = -1
	NUM mumble.TokType = -2
	SYM mumble.TokType = -3
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", "{", "}"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["EOF"] = int(EOF)
		tokenIds["NUM"] = int(NUM)
		tokenIds["SYM"] = int(SYM)
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
	})
}

// TokenName returns a printable name for a token category.
func TokenName(t mumble.TokType) string {
	switch t {
	case EOF:
		return "end of input"
	case NUM:
		return "number"
	case SYM:
		return "symbol"
	}
	if t > 0 && t < 128 {
		return fmt.Sprintf("'%c'", rune(t))
	}
	return fmt.Sprintf("<token %d>", int(t))
}

// Numbers are tried first, so that "-5" is a number while "-" is a symbol.
const (
	numberPattern = `\-?[0-9]+(\.[0-9]+)?`
	symbolPattern = `([a-z]|[A-Z]|[0-9]|_|\+|\-|\*|\/|\\|\=|\<|\>|\!|\&|\@|\%|\^)+`
)

// Lexer creates a new lexmachine lexer for Mumble.
func Lexer() (*LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`;[^\n]*\n?`), Skip) // skip comments
		lexer.Add([]byte(numberPattern), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(symbolPattern), MakeToken("SYM", tokenIds["SYM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	return NewLMAdapter(init, literals, tokenIds)
}

// --- Mumble lexer ----------------------------------------------------------

// LMAdapter holds the compiled DFA for Mumble source text. It is created once
// (see Parse) and hands out a fresh scanner per input line.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter compiles a DFA from the patterns installed by init, plus one
// pattern per delimiter in literals. Delimiter tokens take their type from
// tokenIds. An error is returned if the patterns do not compile.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	lx := lexmachine.NewLexer()
	init(lx)
	for _, delim := range literals {
		lx.Add([]byte(`\`+delim), MakeToken(delim, tokenIds[delim]))
	}
	if err := lx.Compile(); err != nil {
		tracer().Errorf("cannot compile Mumble token patterns: %v", err)
		return nil, err
	}
	return &LMAdapter{Lexer: lx}, nil
}

// Scanner starts scanning a line of Mumble source.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner splits a line of Mumble source into numbers, symbols and
// delimiters. Comments, whitespace and commas never show up as tokens.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error) // receives illegal characters
}

// SetErrorHandler installs h as receiver of illegal-input errors. A nil h
// restores the default, which traces the error.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	lms.Error = h
}

func logError(e error) {
	tracer().Errorf("illegal input: %v", e)
}

// NextToken returns the next number, symbol or delimiter. After the last one
// it returns EOF tokens, positioned at the end of the input. Characters
// which cannot start a token are passed to the error handler and dropped.
func (lms *LMScanner) NextToken() mumble.Token {
	if lms.scanner == nil {
		return token{kind: EOF}
	}
	tok, err, eof := lms.scanner.Next()
	for ; err != nil; tok, err, eof = lms.scanner.Next() {
		lms.Error(err)
		lms.resync(err)
	}
	if eof {
		end := uint64(lms.scanner.TC)
		return token{kind: EOF, span: mumble.Span{end, end}}
	}
	t := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q", TokenName(mumble.TokType(t.Type)), string(t.Lexeme))
	return token{
		kind:   mumble.TokType(t.Type),
		lexeme: string(t.Lexeme),
		span:   mumble.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
	}
}

// resync moves the scanner behind an illegal character.
func (lms *LMScanner) resync(err error) {
	if ui, ok := err.(*machines.UnconsumedInput); ok {
		lms.scanner.TC = ui.FailTC
	}
}

// Skip is the action for comments and whitespace.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken creates the action for numbers, symbols and delimiters: the
// match becomes a token of type id.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// --- Tokens ----------------------------------------------------------------

type token struct {
	kind   mumble.TokType
	lexeme string
	span   mumble.Span
}

var _ mumble.Token = token{}

func (t token) TokType() mumble.TokType {
	return t.kind
}

func (t token) Lexeme() string {
	return t.lexeme
}

func (t token) Span() mumble.Span {
	return t.span
}
