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

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/mumble/runtime"
)

// Environment is a mapping from symbol names to values, chained to a parent
// environment. Name lookup walks up the chain, thus implementing lexical scoping.
//
// Environments store clones of values and hand out clones of values. No value
// stored in an environment is ever shared with a client.
//
// Environments are not safe for concurrent use.
type Environment struct {
	name     string
	bindings *treemap.Map // string -> Value, sorted by name
	parent   *Environment
	session  *session
}

// session holds state shared by all environments of an evaluation session.
type session struct {
	stack *runtime.CallStack
}

// Option configures a root environment.
type Option func(*session)

// MaxDepth sets the maximum depth of function applications. Evaluations nesting
// deeper will result in an error value of kind RecursionLimit.
// n ≤ 0 selects the default limit.
func MaxDepth(n int) Option {
	return func(s *session) {
		s.stack = runtime.NewCallStack(n)
	}
}

// NewRootEnvironment creates an empty top-level environment. Clients usually
// load the builtins of package stdlib into it.
func NewRootEnvironment(opts ...Option) *Environment {
	s := &session{stack: runtime.NewCallStack(0)}
	for _, opt := range opts {
		opt(s)
	}
	return &Environment{
		name:     "root",
		bindings: treemap.NewWithStringComparator(),
		session:  s,
	}
}

// NewEnvironment creates a new environment with a given parent.
// If parent is nil, a root environment with default options is created.
func NewEnvironment(name string, parent *Environment) *Environment {
	if parent == nil {
		env := NewRootEnvironment()
		env.name = name
		return env
	}
	return &Environment{
		name:     name,
		bindings: treemap.NewWithStringComparator(),
		parent:   parent,
		session:  parent.session,
	}
}

// Child creates a new environment whose parent is env.
func (env *Environment) Child(name string) *Environment {
	return NewEnvironment(name, env)
}

// Name returns the name of an environment, for debugging purposes.
func (env *Environment) Name() string {
	return env.name
}

// Parent returns the parent environment, or nil for a root environment.
func (env *Environment) Parent() *Environment {
	return env.parent
}

// Root returns the outermost environment of the chain.
func (env *Environment) Root() *Environment {
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// Size returns the number of bindings at the level of env, not counting parents.
func (env *Environment) Size() int {
	return env.bindings.Size()
}

// CallStack returns the call stack of the session env belongs to.
func (env *Environment) CallStack() *runtime.CallStack {
	return env.session.stack
}

// Def binds name to a clone of v at the level of env. An existing binding of
// name at this level is replaced, bindings in parent environments are shadowed.
func (env *Environment) Def(name string, v Value) {
	tracer().Debugf("env %s: def %s = %v", env.name, name, v)
	env.bindings.Put(name, Clone(v))
}

// Defn binds a builtin function to name.
func (env *Environment) Defn(name string, fn Builtin) {
	env.bindings.Put(name, NewNative(name, fn))
}

// Lookup searches for a binding of name, first in env, then in each parent in
// order. It returns a clone of the value found, or false if name is unbound.
func (env *Environment) Lookup(name string) (Value, bool) {
	for e := env; e != nil; e = e.parent {
		if v, found := e.bindings.Get(name); found {
			return Clone(v.(Value)), true
		}
	}
	return nil, false
}

// IsBound is a predicate: is name bound in env or any of its parents?
func (env *Environment) IsBound(name string) bool {
	for e := env; e != nil; e = e.parent {
		if _, found := e.bindings.Get(name); found {
			return true
		}
	}
	return false
}

// Names returns the names bound at the level of env, in sorted order.
func (env *Environment) Names() []string {
	names := make([]string, 0, env.bindings.Size())
	for _, k := range env.bindings.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Snapshot creates a parentless environment containing clones of all the
// bindings visible from env. Bindings of inner environments shadow those of
// outer ones.
func (env *Environment) Snapshot() *Environment {
	var chain []*Environment
	for e := env; e != nil; e = e.parent {
		chain = append(chain, e)
	}
	snap := &Environment{
		name:     "snapshot of " + env.name,
		bindings: treemap.NewWithStringComparator(),
		session:  env.session,
	}
	for i := len(chain) - 1; i >= 0; i-- { // outermost first
		chain[i].bindings.Each(func(k interface{}, v interface{}) {
			snap.bindings.Put(k, Clone(v.(Value)))
		})
	}
	return snap
}

// overlay creates an environment which shares the bindings of env, chained to
// parent. The bindings are read-only by convention: callers must not Def in it.
func (env *Environment) overlay(parent *Environment) *Environment {
	return &Environment{
		name:     env.name,
		bindings: env.bindings,
		parent:   parent,
		session:  parent.session,
	}
}

func (env *Environment) String() string {
	return fmt.Sprintf("<env %s [%d]>", env.name, env.bindings.Size())
}

// Dump lists all bindings visible from env, level by level, innermost first.
func (env *Environment) Dump() string {
	var b bytes.Buffer
	for e := env; e != nil; e = e.parent {
		b.WriteString(fmt.Sprintf("--- %s ---\n", e.name))
		e.bindings.Each(func(k interface{}, v interface{}) {
			b.WriteString(fmt.Sprintf("%12s = %s\n", k, v))
		})
	}
	return b.String()
}
