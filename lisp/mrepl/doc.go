/*
Package mrepl/main provides an interactive command line tool (M.REPL) for
expressions of the Mumble language. Every line entered is parsed, read and
evaluated in a session-wide environment, and the result is printed.

Lines starting with a colon are meta commands:

    :tree <expr>    print the value read from <expr> as a tree
    :ast  <expr>    print the parse tree of <expr>
    :env            list the global bindings
    :quit           leave M.REPL (<ctrl>D works, too)

Configuration is read from a NestedText file 'mumble.nt' at the user's
configuration location, if present. Command line flags override it:

    -trace    trace level [Debug|Info|Error]
    -init     file of expressions to evaluate before going interactive
    -maxdepth maximum depth of function applications
    -history  history file for line editing
    -tree     print results as trees, too

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mumble.repl'
func tracer() tracing.Trace {
	return tracing.Select("mumble.repl")
}
