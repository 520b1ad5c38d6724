/*
Package stdlib provides the builtin functions of Mumble.

Builtins operate on values of package lisp. They receive their arguments fully
evaluated and never fail with a Go error or a panic: every failure is reported
as an error value.

Load registers all of the builtins with an environment:

    env := lisp.NewRootEnvironment()
    stdlib.Load(env)

Available are arithmetic (+ - * /), comparison (< > <= >= == !=), operations
on Q-expressions (list head tail join len eval), definition of variables and
functions (def @) and control flow (ifelse do).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stdlib

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mumble.lisp'.
func tracer() tracing.Trace {
	return tracing.Select("mumble.lisp")
}
