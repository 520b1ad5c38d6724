package stdlib

import (
	"testing"

	"github.com/npillmayer/mumble/lisp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.lisp")
	defer teardown()
	//
	env := lisp.NewRootEnvironment()
	Load(env)
	if env.Size() != len(Names()) {
		t.Errorf("expected %d builtins in environment, have %d", len(Names()), env.Size())
	}
	for _, name := range []string{"+", "head", "def", "@", "ifelse"} {
		v, ok := env.Lookup(name)
		if !ok || v.Type() != lisp.NativeType {
			t.Errorf("expected builtin %q to be loaded, got %v", name, v)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestArithmeticFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.lisp")
	defer teardown()
	//
	minus := arithmetic("-")
	args := lisp.NewSExpr(lisp.Number(10), lisp.Number(3), lisp.Number(2))
	if v := minus(args, nil); v != lisp.Number(5) {
		t.Errorf("expected 10-3-2 = 5, got %v", v)
	}
	div := arithmetic("/")
	args = lisp.NewSExpr(lisp.Number(1), lisp.Number(2), lisp.Number(0))
	if v := div(args, nil); !lisp.IsErrorOfKind(v, lisp.DivisionByZero) {
		t.Errorf("expected division by zero, got %v", v)
	}
	plus := arithmetic("+")
	args = lisp.NewSExpr(lisp.Number(1), lisp.Symbol("x"))
	v := plus(args, nil)
	if e, ok := lisp.IsError(v); !ok || e.Kind != lisp.TypeMismatch {
		t.Errorf("expected type mismatch, got %v", v)
	} else {
		t.Logf("error message: %s", e.Message)
	}
}

func TestDefBindsInCallingEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.lisp")
	defer teardown()
	//
	root := lisp.NewRootEnvironment()
	local := root.Child("local")
	args := lisp.NewSExpr(lisp.NewQExpr(lisp.Symbol("a")), lisp.Number(1))
	if v := def(args, local); v.Type() != lisp.SExprType {
		t.Errorf("expected def to return (), got %v", v)
	}
	if _, ok := root.Lookup("a"); ok {
		t.Errorf("a should not be visible in the root environment")
	}
	if v, _ := local.Lookup("a"); v != lisp.Number(1) {
		t.Errorf("expected a = 1 in local environment, got %v", v)
	}
}

func TestLambdaRejectsNonSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.lisp")
	defer teardown()
	//
	env := lisp.NewRootEnvironment()
	args := lisp.NewSExpr(lisp.NewQExpr(lisp.Number(1)), lisp.NewQExpr(lisp.Symbol("x")))
	if v := lambda(args, env); !lisp.IsErrorOfKind(v, lisp.TypeMismatch) {
		t.Errorf("expected type mismatch for numeric parameter, got %v", v)
	}
	args = lisp.NewSExpr(lisp.NewQExpr(lisp.Symbol("x")), lisp.NewQExpr(lisp.Symbol("x")))
	c, ok := lambda(args, env).(*lisp.Closure)
	if !ok || c.Arity() != 1 {
		t.Errorf("expected closure of arity 1, got %v", c)
	}
}
