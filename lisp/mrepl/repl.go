package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mumble/lisp"
	"github.com/npillmayer/mumble/syntax"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Intp is our interpreter object
type Intp struct {
	env   *lisp.Environment
	repl  *readline.Instance
	out   io.Writer
	trees bool // print results as trees, too
	info  *pterm.PrefixPrinter
	errp  *pterm.PrefixPrinter
}

// NewIntp creates an interpreter for a session environment, printing to out.
func NewIntp(env *lisp.Environment, out io.Writer) *Intp {
	return &Intp{
		env:  env,
		out:  out,
		info: pterm.Info.WithWriter(out),
		errp: pterm.Error.WithWriter(out),
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	intp.load(f)
}

// load evaluates the lines of an input, one by one.
func (intp *Intp) load(r io.Reader) {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			tracer().Errorf("Error line %d: %s", lineno, err.Error())
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, _ := intp.Eval(line) // errors have already been printed
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval evaluates a line of input, which is either a meta command or a
// Mumble expression, and prints the result. It returns true if the user
// requested to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		return intp.command(line)
	}
	tracer().Debugf("----------------------- Parse & Read -----------------------------")
	value, err := intp.read(line)
	if err != nil {
		intp.errp.Println(err.Error())
		return false, err
	}
	tracer().Debugf("-------------------------- Output --------------------------------")
	result := lisp.Eval(value, intp.env)
	return false, intp.printResult(result)
}

func (intp *Intp) read(line string) (lisp.Value, error) {
	tree, err := syntax.Parse(line)
	if err != nil {
		return nil, err
	}
	value := lisp.Read(tree)
	tracing.With(tracer()).Dump("read", value)
	if e, isErr := lisp.IsError(value); isErr {
		return nil, e
	}
	return value, nil
}

func (intp *Intp) printResult(result lisp.Value) error {
	if e, isErr := lisp.IsError(result); isErr {
		intp.errp.Println(e.Message)
		if depth := intp.env.CallStack().Depth(); depth > 0 {
			tracer().Errorf("call stack not unwound, depth is %d", depth)
			intp.env.CallStack().Reset()
		}
		return e
	}
	intp.info.Println(result.String())
	if intp.trees {
		return intp.renderTree(valueTree(result))
	}
	return nil
}

// --- Meta commands ---------------------------------------------------------

func (intp *Intp) command(line string) (bool, error) {
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	tracer().Debugf("meta command %s", cmd)
	var err error
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":env":
		intp.listEnvironment()
	case ":tree":
		var value lisp.Value
		if value, err = intp.read(arg); err == nil {
			err = intp.renderTree(valueTree(value))
		}
	case ":ast":
		var tree *syntax.Node
		if tree, err = syntax.Parse(arg); err == nil {
			err = intp.renderTree(nodeTree(tree))
		}
	default:
		err = fmt.Errorf("unknown command %s", cmd)
	}
	if err != nil {
		intp.errp.Println(err.Error())
	}
	return false, err
}

// listEnvironment prints the global bindings, omitting builtins.
func (intp *Intp) listEnvironment() {
	root := intp.env.Root()
	builtins := 0
	for _, name := range root.Names() {
		v, _ := root.Lookup(name)
		if v.Type() == lisp.NativeType {
			builtins++
			continue
		}
		intp.info.Printfln("%s = %s", name, v)
	}
	intp.info.Printfln("(%d builtins)", builtins)
}

func (intp *Intp) renderTree(root pterm.TreeNode) error {
	return pterm.DefaultTree.WithRoot(root).WithWriter(intp.out).Render()
}
