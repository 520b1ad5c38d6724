package stdlib

import "github.com/npillmayer/mumble/lisp"

// def binds a list of symbols to values in the calling environment:
//
//     (def {a b} 1 2)
//
func def(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	if args.Len() == 0 {
		return lisp.Errorf(lisp.ArityMismatch, "function 'def' needs a list of symbols")
	}
	if err := checkType("def", args, 0, lisp.QExprType); err != nil {
		return err
	}
	syms, err := symbols("def", args.Cells[0].(*lisp.QExpr))
	if err != nil {
		return err
	}
	values := args.Cells[1:]
	if len(syms) != len(values) {
		return lisp.Errorf(lisp.ArityMismatch, "function 'def' cannot define %d symbols with %d values",
			len(syms), len(values))
	}
	for i, sym := range syms {
		env.Def(string(sym), values[i])
	}
	return &lisp.SExpr{}
}

// lambda creates a closure from a list of parameters and a body:
//
//     (@ {x y} {+ x y})
//
func lambda(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	if err := checkArity("@", args, 2); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		if err := checkType("@", args, i, lisp.QExprType); err != nil {
			return err
		}
	}
	params, err := symbols("@", args.Cells[0].(*lisp.QExpr))
	if err != nil {
		return err
	}
	return lisp.NewClosure(params, args.Cells[1].(*lisp.QExpr), env)
}

// ifelse selects one of two branches, depending on a numeric condition.
// A selected Q-expression is evaluated in the calling environment.
func ifelse(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	if err := checkArity("ifelse", args, 3); err != nil {
		return err
	}
	if err := checkType("ifelse", args, 0, lisp.NumberType); err != nil {
		return err
	}
	branch := args.Cells[2]
	if args.Cells[0].(lisp.Number) != 0 {
		branch = args.Cells[1]
	}
	if q, ok := branch.(*lisp.QExpr); ok {
		return lisp.Eval(q.Unquote(), env)
	}
	return branch
}

// do returns its last argument.
func do(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	if args.Len() == 0 {
		return &lisp.SExpr{}
	}
	return args.Cells[args.Len()-1]
}

func symbols(fname string, q *lisp.QExpr) ([]lisp.Symbol, lisp.Value) {
	syms := make([]lisp.Symbol, q.Len())
	for i, c := range q.Cells {
		sym, ok := c.(lisp.Symbol)
		if !ok {
			return nil, lisp.Errorf(lisp.TypeMismatch, "function '%s' cannot bind non-symbol %s", fname, c)
		}
		syms[i] = sym
	}
	return syms, nil
}
