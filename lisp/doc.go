/*
Package lisp implements the value model, environments and the evaluator of
Mumble, a minimal Lisp-like language.

Every runtime datum is a Value. Values are numbers, errors, symbols, builtin
functions, closures and two kinds of lists: S-expressions (type *SExpr) are
applications, with the operator in the first cell; Q-expressions (type *QExpr)
are quoted lists, which are never evaluated implicitly.

Values have value semantics. Environments clone values on definition and on
lookup, and a closure captures a snapshot of the bindings visible at the time
of its creation. Errors are values, too: they flow through evaluation like
data, and an S-expression containing an error evaluates to it.

Evaluation is performed by Eval, relative to an Environment. A session usually
creates one root environment, loads the builtins of package stdlib into it and
evaluates expressions read from the parse trees of package syntax:

    env := lisp.NewRootEnvironment()
    stdlib.Load(env)
    tree, err := syntax.Parse("(+ 1 2)")
    …
    result := lisp.Eval(lisp.Read(tree), env)   // => 3

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lisp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mumble.lisp'.
func tracer() tracing.Trace {
	return tracing.Select("mumble.lisp")
}
