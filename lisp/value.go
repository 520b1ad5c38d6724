package lisp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"
	"strconv"
)

// Type is the type of a Value.
type Type int8

// Value types. NativeType and ClosureType are both functions for a user of
// the language.
const (
	NumberType Type = iota
	ErrorType
	SymbolType
	NativeType
	ClosureType
	SExprType
	QExprType
)

var typeNames = [...]string{"Number", "Error", "Symbol", "Function", "Function", "S-Expression", "Q-Expression"}

func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return "<unknown>"
	}
	return typeNames[t]
}

// Value is the type of every runtime datum. The set of implementations is
// closed: Number, Error, Symbol, Native, *Closure, *SExpr and *QExpr.
type Value interface {
	Type() Type
	String() string
	value() // seal
}

// Number is a double precision number. Numbers are immutable.
type Number float64

// Symbol is a reference to a binding in an environment.
type Symbol string

// Builtin is the signature of natively implemented functions. Arguments are
// passed as an S-expression of evaluated values, owned by the callee.
// env is the environment of the call site.
type Builtin func(args *SExpr, env *Environment) Value

// Native is a builtin function. It is identified by its name.
type Native struct {
	Name string
	Fn   Builtin
}

// Closure is a user-defined function. Env is a snapshot of the bindings
// visible at the time of the closure's creation. It is not modified after
// creation, therefore clones of a closure share it. Scope is the environment
// the closure has been created in; names missing from Env are looked up there.
type Closure struct {
	Params []Symbol
	Body   *QExpr
	Env    *Environment
	Scope  *Environment
}

// SExpr is an S-expression, i.e. an application form. Cells[0] is in operator
// position.
type SExpr struct {
	Cells []Value
}

// QExpr is a quoted list. Q-expressions are never evaluated implicitly.
type QExpr struct {
	Cells []Value
}

func (Number) value()   {}
func (Error) value()    {}
func (Symbol) value()   {}
func (Native) value()   {}
func (*Closure) value() {}
func (*SExpr) value()   {}
func (*QExpr) value()   {}

// Type is part of interface Value.
func (Number) Type() Type { return NumberType }

// Type is part of interface Value.
func (Error) Type() Type { return ErrorType }

// Type is part of interface Value.
func (Symbol) Type() Type { return SymbolType }

// Type is part of interface Value.
func (Native) Type() Type { return NativeType }

// Type is part of interface Value.
func (*Closure) Type() Type { return ClosureType }

// Type is part of interface Value.
func (*SExpr) Type() Type { return SExprType }

// Type is part of interface Value.
func (*QExpr) Type() Type { return QExprType }

// --- Constructors ----------------------------------------------------------

// NewSExpr creates an S-expression from clones of cells.
func NewSExpr(cells ...Value) *SExpr {
	return &SExpr{Cells: cloneCells(cells)}
}

// NewQExpr creates a Q-expression from clones of cells.
func NewQExpr(cells ...Value) *QExpr {
	return &QExpr{Cells: cloneCells(cells)}
}

// NewNative creates a builtin function value.
func NewNative(name string, fn Builtin) Native {
	return Native{Name: name, Fn: fn}
}

// NewClosure creates a closure from clones of params and body, capturing a
// snapshot of env and remembering env as the defining scope.
func NewClosure(params []Symbol, body *QExpr, env *Environment) *Closure {
	ps := make([]Symbol, len(params))
	copy(ps, params)
	return &Closure{
		Params: ps,
		Body:   Clone(body).(*QExpr),
		Env:    env.Snapshot(),
		Scope:  env,
	}
}

// Len returns the number of cells.
func (s *SExpr) Len() int {
	return len(s.Cells)
}

// Len returns the number of cells.
func (q *QExpr) Len() int {
	return len(q.Cells)
}

// Quote re-tags s as a Q-expression. The cells are moved, not copied:
// s must not be used afterwards.
func (s *SExpr) Quote() *QExpr {
	q := &QExpr{Cells: s.Cells}
	s.Cells = nil
	return q
}

// Unquote re-tags q as an S-expression. The cells are moved, not copied:
// q must not be used afterwards.
func (q *QExpr) Unquote() *SExpr {
	s := &SExpr{Cells: q.Cells}
	q.Cells = nil
	return s
}

// Arity returns the number of parameters of a closure.
func (c *Closure) Arity() int {
	return len(c.Params)
}

// --- Clone and Equal -------------------------------------------------------

// Clone returns a deep copy of v. Numbers, symbols, errors and builtins are
// immutable and are returned as they are.
func Clone(v Value) Value {
	switch x := v.(type) {
	case nil:
		return nil
	case Number, Symbol, Error, Native:
		return x
	case *Closure:
		ps := make([]Symbol, len(x.Params))
		copy(ps, x.Params)
		return &Closure{Params: ps, Body: &QExpr{Cells: cloneCells(x.Body.Cells)}, Env: x.Env, Scope: x.Scope}
	case *SExpr:
		return &SExpr{Cells: cloneCells(x.Cells)}
	case *QExpr:
		return &QExpr{Cells: cloneCells(x.Cells)}
	}
	panic(fmt.Sprintf("unknown value type %T", v))
}

func cloneCells(cells []Value) []Value {
	if cells == nil {
		return nil
	}
	c := make([]Value, len(cells))
	for i, v := range cells {
		c[i] = Clone(v)
	}
	return c
}

// Equal compares two values structurally. Builtins are equal if they have the
// same name; closures are equal if their parameters and bodies are equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case Number, Symbol, Error:
		return a == b
	case Native:
		return x.Name == b.(Native).Name
	case *Closure:
		y := b.(*Closure)
		if len(x.Params) != len(y.Params) {
			return false
		}
		for i, p := range x.Params {
			if p != y.Params[i] {
				return false
			}
		}
		return equalCells(x.Body.Cells, y.Body.Cells)
	case *SExpr:
		return equalCells(x.Cells, b.(*SExpr).Cells)
	case *QExpr:
		return equalCells(x.Cells, b.(*QExpr).Cells)
	}
	panic(fmt.Sprintf("unknown value type %T", a))
}

func equalCells(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// --- Stringers -------------------------------------------------------------

func (n Number) String() string {
	if n == 0 {
		n = 0 // no "-0"
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s Symbol) String() string {
	return string(s)
}

func (f Native) String() string {
	return "<builtin " + f.Name + ">"
}

func (c *Closure) String() string {
	var b bytes.Buffer
	b.WriteString("(@ {")
	for i, p := range c.Params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(p))
	}
	b.WriteString("} ")
	b.WriteString(c.Body.String())
	b.WriteByte(')')
	return b.String()
}

func (s *SExpr) String() string {
	return cellsString('(', s.Cells, ')')
}

func (q *QExpr) String() string {
	return cellsString('{', q.Cells, '}')
}

func cellsString(open byte, cells []Value, close byte) string {
	var b bytes.Buffer
	b.WriteByte(open)
	for i, v := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(close)
	return b.String()
}
