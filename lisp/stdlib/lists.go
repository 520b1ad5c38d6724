package stdlib

import "github.com/npillmayer/mumble/lisp"

// list returns its arguments as a Q-expression.
func list(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	return args.Quote()
}

func head(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	q, err := quoted("head", args)
	if err != nil {
		return err
	}
	if q.Len() == 0 {
		return lisp.Errorf(lisp.EmptyList, "function 'head' passed {}")
	}
	return q.Cells[0]
}

func tail(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	q, err := quoted("tail", args)
	if err != nil {
		return err
	}
	if q.Len() == 0 {
		return lisp.Errorf(lisp.EmptyList, "function 'tail' passed {}")
	}
	return &lisp.QExpr{Cells: q.Cells[1:]}
}

func join(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	if args.Len() == 0 {
		return lisp.Errorf(lisp.ArityMismatch, "function 'join' needs at least one argument")
	}
	n := 0
	for i, c := range args.Cells {
		if err := checkType("join", args, i, lisp.QExprType); err != nil {
			return err
		}
		n += c.(*lisp.QExpr).Len()
	}
	cells := make([]lisp.Value, 0, n)
	for _, c := range args.Cells {
		cells = append(cells, c.(*lisp.QExpr).Cells...)
	}
	return &lisp.QExpr{Cells: cells}
}

func length(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	q, err := quoted("len", args)
	if err != nil {
		return err
	}
	return lisp.Number(q.Len())
}

// eval evaluates a Q-expression as an S-expression in the calling environment.
func eval(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
	q, err := quoted("eval", args)
	if err != nil {
		return err
	}
	return lisp.Eval(q.Unquote(), env)
}
