package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/mumble/lisp"
	"github.com/npillmayer/mumble/lisp/stdlib"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

func newTestIntp() (*Intp, *bytes.Buffer) {
	pterm.DisableStyling()
	env := lisp.NewRootEnvironment()
	stdlib.Load(env)
	out := &bytes.Buffer{}
	return NewIntp(env, out), out
}

func TestIntpEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.repl", "mumble.lisp")
	defer teardown()
	//
	intp, out := newTestIntp()
	if _, err := intp.Eval("(def {sq} (@ {x} {* x x}))"); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if _, err := intp.Eval("sq 12"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "144") {
		t.Errorf("expected output to contain 144, is %q", out.String())
	}
}

func TestIntpErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.repl", "mumble.lisp")
	defer teardown()
	//
	intp, out := newTestIntp()
	_, err := intp.Eval("(/ 1 0)")
	if e, ok := err.(lisp.Error); !ok || e.Kind != lisp.DivisionByZero {
		t.Errorf("expected division by zero to be reported, got %v", err)
	}
	if !strings.Contains(out.String(), "division by zero") {
		t.Errorf("expected error message in output, is %q", out.String())
	}
	if _, err = intp.Eval("(+ 1"); err == nil {
		t.Errorf("expected parse error for unbalanced input")
	}
}

func TestIntpMetaCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.repl")
	defer teardown()
	//
	intp, out := newTestIntp()
	intp.Eval("(def {answer} 42)")
	out.Reset()
	intp.Eval(":env")
	if !strings.Contains(out.String(), "answer = 42") {
		t.Errorf("expected :env to list answer, output is %q", out.String())
	}
	out.Reset()
	if _, err := intp.Eval(":tree (+ 1 {2 3})"); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out.String())
	if !strings.Contains(out.String(), "3 : Number") {
		t.Errorf("expected tree to show nested number, output is %q", out.String())
	}
	out.Reset()
	if _, err := intp.Eval(":ast {x}"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "expr|qexpr|>") {
		t.Errorf("expected parse tree to show q-expression node, output is %q", out.String())
	}
	if _, err := intp.Eval(":frobnicate"); err == nil {
		t.Errorf("expected unknown command to be rejected")
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to end session")
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mumble.repl")
	defer teardown()
	//
	intp, out := newTestIntp()
	input := "(def {a} 1)\n\n(def {b} (+ a 1))\n:quit\n(def {c} 3)\n"
	intp.load(strings.NewReader(input))
	if v, ok := intp.env.Lookup("b"); !ok || v != lisp.Number(2) {
		t.Errorf("expected b = 2 after loading, got %v", v)
	}
	if _, ok := intp.env.Lookup("c"); ok {
		t.Errorf("expected loading to stop at :quit")
	}
	t.Logf("\n%s", out.String())
}

func TestConfigOverrides(t *testing.T) {
	conf := loadConfig()
	overrideConfig(conf, "Debug", 123, "/tmp/hist")
	if conf.GetString("tracelevel.mumble.lisp") != "Debug" {
		t.Errorf("expected trace level override, have %q", conf.GetString("tracelevel.mumble.lisp"))
	}
	if conf.GetInt("eval.maxdepth") != 123 {
		t.Errorf("expected max depth of 123, have %d", conf.GetInt("eval.maxdepth"))
	}
	if conf.GetString("repl.history") != "/tmp/hist" {
		t.Errorf("expected history file override")
	}
	if conf.GetString("repl.prompt") == "" {
		t.Errorf("expected a default prompt")
	}
}

func TestSetupTracing(t *testing.T) {
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"tracelevel.root":        "Info",
		"tracelevel.mumble.repl": "Error",
	}
	if err := setupTracing(conf); err != nil {
		t.Fatal(err)
	}
	defer trace2go.Teardown()
	if tracer().GetTraceLevel() != tracing.LevelError {
		t.Errorf("expected trace level Error for REPL tracer, have %s", tracer().GetTraceLevel())
	}
}
