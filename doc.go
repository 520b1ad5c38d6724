/*
Package mumble is a small interpreter for a Lisp-like language.

Mumble evaluates s-expressions over numbers, symbols and two kinds of lists:
S-expressions, which are applications, and Q-expressions, which are quoted
lists and are never evaluated implicitly. Package structure is as follows:

■ syntax: Package syntax implements a scanner and parser for Mumble source text,
producing a generic, tagged parse tree.

■ lisp: Package lisp implements the value model, lexically scoped environments
and the evaluator. Sub-package stdlib provides the builtin functions, and
mrepl is an interactive command line tool.

■ runtime: Package runtime provides a call stack of frames for the evaluator.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mumble
