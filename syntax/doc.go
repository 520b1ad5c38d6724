/*
Package syntax provides a scanner and a parser for Mumble source text.

Parsing produces a homogenous, tagged parse tree of *Node. Tags follow
the convention of parser combinator libraries: a node's tag lists the grammar
rules it has been folded from, separated by '|', e.g. "expr|number|regex".
The tree is deliberately generic; package lisp reads it into values.

Grammar

    mumble : /^/ <expr>* /$/ ;
    expr   : <number> | <symbol> | <sexpr> | <qexpr> ;
    sexpr  : '(' <expr>* ')' ;
    qexpr  : '{' <expr>* '}' ;

Comments start with ';' and extend to the end of the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mumble.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("mumble.syntax")
}
