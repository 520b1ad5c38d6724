package lisp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// ErrorKind classifies error values.
type ErrorKind int8

// Kinds of errors. Every error produced by the evaluator, the reader or the
// builtins carries one of these.
const (
	NoError         ErrorKind = iota
	UnboundSymbol             // lookup failed in the whole environment chain
	ArityMismatch             // wrong number of arguments
	TypeMismatch              // argument of the wrong type
	EmptyList                 // head/tail of {}
	DivisionByZero            // division with a zero divisor
	UnknownOperator           // application of an unbound name
	MalformedSyntax           // parse tree shape not understood by the reader
	RecursionLimit            // call stack exhausted
)

var errorKindNames = [...]string{
	"no error",
	"unbound symbol",
	"arity mismatch",
	"type mismatch",
	"empty list",
	"division by zero",
	"unknown operator",
	"malformed syntax",
	"recursion limit",
}

func (k ErrorKind) String() string {
	if int(k) < 0 || int(k) >= len(errorKindNames) {
		return "<unknown error>"
	}
	return errorKindNames[k]
}

// Error is an error value. Errors are ordinary values which are passed
// up the call chain; they are never raised as panics.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Errorf creates an error value of a given kind.
func Errorf(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error makes error values usable as Go errors.
func (e Error) Error() string {
	return e.Message
}

func (e Error) String() string {
	return "Error: " + e.Message
}

// IsError returns v as an error value, if it is one.
func IsError(v Value) (Error, bool) {
	e, ok := v.(Error)
	return e, ok
}

// IsErrorOfKind is a predicate: is v an error value of kind k?
func IsErrorOfKind(v Value, k ErrorKind) bool {
	e, ok := v.(Error)
	return ok && e.Kind == k
}

// --- Helpers for builtins --------------------------------------------------

// ArityError creates an error for a function called with the wrong number of arguments.
func ArityError(fname string, got int, expected int) Error {
	return Errorf(ArityMismatch, "function '%s' passed incorrect number of arguments: got %d, expected %d",
		fname, got, expected)
}

// TypeError creates an error for a function receiving an argument of the wrong type.
// Argument positions count from 1.
func TypeError(fname string, pos int, got Type, expected Type) Error {
	return Errorf(TypeMismatch, "function '%s' passed incorrect type for argument %d: got %s, expected %s",
		fname, pos, got, expected)
}
