package lisp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Eval evaluates a value relative to an environment. Eval takes ownership of v:
// clients which still need v after the call have to pass a clone.
//
// Numbers, errors, functions and Q-expressions evaluate to themselves. Symbols
// evaluate to a copy of their binding. S-expressions are applications: all the
// cells are evaluated from left to right, then the first cell is applied to the
// rest. If evaluation of a cell results in an error, the remaining cells are
// left alone and the error is the result of the application.
func Eval(v Value, env *Environment) Value {
	switch x := v.(type) {
	case Symbol:
		tracer().Debugf("eval of symbol %s", x)
		return resolve(x, env, false)
	case *SExpr:
		tracer().Debugf("eval of list %s", x)
		return evalSExpr(x, env)
	}
	return v
}

func resolve(sym Symbol, env *Environment, asOp bool) Value {
	if v, found := env.Lookup(string(sym)); found {
		return v
	}
	if asOp {
		tracer().Errorf("symbol '%s' cannot be resolved as operator", sym)
		return Errorf(UnknownOperator, "unknown operator '%s'", sym)
	}
	tracer().Debugf("unable to resolve symbol '%s' in environment", sym)
	return Errorf(UnboundSymbol, "unbound symbol '%s'", sym)
}

func evalSExpr(list *SExpr, env *Environment) Value {
	if list.Len() == 0 {
		return list
	}
	opname := "λ"
	if sym, ok := list.Cells[0].(Symbol); ok {
		opname = string(sym)
	}
	cells := make([]Value, len(list.Cells))
	for i, c := range list.Cells {
		switch x := c.(type) {
		case Symbol:
			cells[i] = resolve(x, env, i == 0)
		case *SExpr:
			cells[i] = evalSExpr(x, env)
		default:
			cells[i] = c
		}
		if err, isErr := cells[i].(Error); isErr {
			tracer().Debugf("error in list cell #%d: %s", i, err.Message)
			return err
		}
	}
	list.Cells = nil // consumed
	args := &SExpr{Cells: cells[1:]}
	switch op := cells[0].(type) {
	case Native:
		return call(opname, env, func() Value {
			tracer().Debugf("--- %s.call%s", op.Name, args)
			return op.Fn(args, env)
		})
	case *Closure:
		if args.Len() != op.Arity() {
			return Errorf(ArityMismatch, "function '%s' passed incorrect number of arguments: got %d, expected %d",
				opname, args.Len(), op.Arity())
		}
		return call(opname, env, func() Value {
			return apply(op, args, env)
		})
	}
	if len(cells) == 1 {
		return cells[0]
	}
	return &SExpr{Cells: cells}
}

// call wraps an application into a call frame. If the call stack is exhausted,
// the application is not performed and a RecursionLimit error is returned.
func call(name string, env *Environment, application func() Value) Value {
	stack := env.CallStack()
	if _, err := stack.Push(name); err != nil {
		tracer().Debugf("backtrace: %v", stack.Backtrace(10))
		return Errorf(RecursionLimit, "%s: %v (limit is %d)", name, err, stack.Limit())
	}
	defer stack.Pop()
	result := application()
	tracer().Debugf("%s => %s", name, result)
	return result
}

// apply binds the arguments of a closure application in a fresh frame. The
// frame's parent is the closure's snapshot, which in turn falls back to the
// environment the closure has been defined in for names it does not bind.
func apply(c *Closure, args *SExpr, caller *Environment) Value {
	scope := c.Scope
	if scope == nil {
		scope = caller.Root()
	}
	base := scope
	if c.Env != nil {
		base = c.Env.overlay(scope)
	}
	frame := base.Child("call")
	for i, p := range c.Params {
		frame.bindings.Put(string(p), args.Cells[i]) // args are owned by us
	}
	body := Clone(c.Body).(*QExpr).Unquote()
	return Eval(body, frame)
}
