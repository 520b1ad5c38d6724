package stdlib

import "github.com/npillmayer/mumble/lisp"

func arithmetic(op string) lisp.Builtin {
	return func(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
		if args.Len() == 0 {
			return lisp.Errorf(lisp.ArityMismatch, "function '%s' needs at least one argument", op)
		}
		for i := range args.Cells {
			if err := checkType(op, args, i, lisp.NumberType); err != nil {
				return err
			}
		}
		x := args.Cells[0].(lisp.Number)
		if args.Len() == 1 {
			if op == "-" {
				return -x
			}
			return lisp.Errorf(lisp.ArityMismatch, "function '%s' needs at least two arguments", op)
		}
		for _, c := range args.Cells[1:] {
			y := c.(lisp.Number)
			switch op {
			case "+":
				x += y
			case "-":
				x -= y
			case "*":
				x *= y
			case "/":
				if y == 0 {
					tracer().Debugf("division by zero: %s / 0", x)
					return lisp.Errorf(lisp.DivisionByZero, "division by zero")
				}
				x /= y
			}
		}
		return x
	}
}

func compare(op string) lisp.Builtin {
	return func(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
		if err := checkArity(op, args, 2); err != nil {
			return err
		}
		for i := 0; i < 2; i++ {
			if err := checkType(op, args, i, lisp.NumberType); err != nil {
				return err
			}
		}
		x, y := args.Cells[0].(lisp.Number), args.Cells[1].(lisp.Number)
		switch op {
		case "<":
			return truth(x < y)
		case ">":
			return truth(x > y)
		case "<=":
			return truth(x <= y)
		}
		return truth(x >= y)
	}
}

func equality(op string) lisp.Builtin {
	return func(args *lisp.SExpr, env *lisp.Environment) lisp.Value {
		if err := checkArity(op, args, 2); err != nil {
			return err
		}
		eq := lisp.Equal(args.Cells[0], args.Cells[1])
		if op == "!=" {
			return truth(!eq)
		}
		return truth(eq)
	}
}
