package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/knadh/koanf"
	"github.com/npillmayer/mumble/lisp"
	"github.com/npillmayer/mumble/lisp/stdlib"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Trace keys of the packages of this module.
var traceKeys = []string{"mumble.lisp", "mumble.syntax", "mumble.runtime", "mumble.repl"}

// main() starts an interactive CLI ("M.REPL"), where users may enter Mumble
// expressions. M.REPL will evaluate each expression and print out the result.
func main() {
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	maxdepth := flag.Int("maxdepth", 0, "Maximum depth of function applications")
	history := flag.String("history", "", "History file")
	trees := flag.Bool("tree", false, "Print results as trees")
	flag.Parse()
	//
	// set up configuration and logging
	conf := loadConfig()
	overrideConfig(conf, *tlevel, *maxdepth, *history)
	if err := setupTracing(conf); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	defer trace2go.Teardown()
	initDisplay()
	pterm.Info.Println("Welcome to M.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", tracer().GetTraceLevel())
	//
	// set up environment and REPL
	env := lisp.NewRootEnvironment(lisp.MaxDepth(conf.GetInt("eval.maxdepth")))
	stdlib.Load(env)
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       conf.GetString("repl.prompt"),
		HistoryFile:  conf.GetString("repl.history"),
		AutoComplete: completer(),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp(env, os.Stdout)
	intp.trees = *trees
	intp.repl = repl
	//
	// load an init file and start receiving commands / expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// loadConfig creates the application configuration, with defaults overridden
// from a configuration file 'mumble.nt', if any.
func loadConfig() *koanfadapter.KConf {
	conf := koanfadapter.New(koanf.New("."), "mumble", []string{"nt"})
	conf.InitDefaults() // sets tracing.adapter and loads configuration file
	setDefault(conf, "tracelevel.root", "Info")
	for _, key := range traceKeys {
		setDefault(conf, "tracelevel."+key, "Error")
	}
	setDefault(conf, "repl.prompt", "mumble> ")
	if dir, err := os.UserCacheDir(); err == nil {
		setDefault(conf, "repl.history", filepath.Join(dir, "mumble_history"))
	}
	return conf
}

func setDefault(conf *koanfadapter.KConf, key string, value interface{}) {
	if !conf.IsSet(key) {
		conf.Set(key, value)
	}
}

// overrideConfig sets configuration values given as command line flags.
func overrideConfig(conf *koanfadapter.KConf, tlevel string, maxdepth int, history string) {
	if tlevel != "" {
		for _, key := range traceKeys {
			conf.Set("tracelevel."+key, tlevel)
		}
	}
	if maxdepth > 0 {
		conf.Set("eval.maxdepth", maxdepth)
	}
	if history != "" {
		conf.Set("repl.history", history)
	}
}

// setupTracing installs trace2go as the tracer selector, using Go's log
// package for output.
func setupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Error.ShowLineNumber = false
}

// completer creates a tab-completer for meta commands and builtins.
func completer() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(":tree"),
		readline.PcItem(":ast"),
		readline.PcItem(":env"),
		readline.PcItem(":quit"),
	}
	for _, name := range stdlib.Names() {
		items = append(items, readline.PcItem("("+name))
	}
	return readline.NewPrefixCompleter(items...)
}
