package stdlib

import (
	"sort"

	"github.com/npillmayer/mumble/lisp"
)

var builtins = map[string]lisp.Builtin{
	"+":      arithmetic("+"),
	"-":      arithmetic("-"),
	"*":      arithmetic("*"),
	"/":      arithmetic("/"),
	"<":      compare("<"),
	">":      compare(">"),
	"<=":     compare("<="),
	">=":     compare(">="),
	"==":     equality("=="),
	"!=":     equality("!="),
	"list":   list,
	"head":   head,
	"tail":   tail,
	"join":   join,
	"len":    length,
	"eval":   eval,
	"def":    def,
	"@":      lambda,
	"ifelse": ifelse,
	"do":     do,
}

// Load registers all builtins with env, usually a root environment.
// Existing bindings of the same names are replaced.
func Load(env *lisp.Environment) {
	for _, name := range Names() {
		env.Defn(name, builtins[name])
	}
	tracer().Infof("loaded %d builtins into environment %s", len(builtins), env.Name())
}

// Names returns the names of all builtins in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Argument checks -------------------------------------------------------

func checkArity(fname string, args *lisp.SExpr, n int) lisp.Value {
	if args.Len() != n {
		return lisp.ArityError(fname, args.Len(), n)
	}
	return nil
}

func checkType(fname string, args *lisp.SExpr, pos int, t lisp.Type) lisp.Value {
	if got := args.Cells[pos].Type(); got != t {
		return lisp.TypeError(fname, pos+1, got, t)
	}
	return nil
}

// quoted checks for a single argument of type Q-expression.
func quoted(fname string, args *lisp.SExpr) (*lisp.QExpr, lisp.Value) {
	if err := checkArity(fname, args, 1); err != nil {
		return nil, err
	}
	if err := checkType(fname, args, 0, lisp.QExprType); err != nil {
		return nil, err
	}
	return args.Cells[0].(*lisp.QExpr), nil
}

func truth(b bool) lisp.Value {
	if b {
		return lisp.Number(1)
	}
	return lisp.Number(0)
}
