/*
File    : ember/cmd/ember/main.go
Author  : akashmaji946

Package main is the entry point for the Ember interpreter. It provides
two modes of operation:
 1. REPL mode (default): interactive read-eval-print loop
 2. File mode: execute an Ember source file given as a positional arg

Dispatch runs through Cobra rather than hand-rolled os.Args switching.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/ember/eval"
	"github.com/akashmaji946/ember/object"
	"github.com/akashmaji946/ember/parser"
	"github.com/akashmaji946/ember/repl"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	version = "v1.0.0"
	author  = "akashmaji946"
	license = "MIT"
	prompt  = "ember >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
  ____           _
 | ___|_ __ ___ | |__   ___ _ __
 |  _| | '_ ' _ \| '_ \ / _ \ '__|
 | |___| | | | | | |_) |  __/ |
 |_____|_| |_| |_|_.__/ \___|_|
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the Cobra command tree: `ember` with no arguments
// starts the REPL, `ember <file>` runs a source file.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ember [file]",
		Short:   "Ember - a small tree-walking scripting language",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(args[0])
			}
			startRepl()
			return nil
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("Ember %s (license %s, %s)\n", version, license, author))
	return cmd
}

func startRepl() {
	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(os.Stdin, os.Stdout)
}

// runFile reads fileName, evaluates it to completion, and returns an
// error (driving a non-zero exit code) on any read, parse, or runtime
// failure.
func runFile(fileName string) error {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		return err
	}
	return executeFileWithRecovery(string(source))
}

// executeFileWithRecovery parses and evaluates source, recovering from
// any evaluator panic so the process exits cleanly rather than with a
// raw Go stack trace.
func executeFileWithRecovery(source string) (execErr error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			execErr = fmt.Errorf("runtime error: %v", recovered)
		}
	}()

	p := parser.New(source)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		return fmt.Errorf("parse error")
	}

	env := object.NewEnvironment()
	eval.InstallGlobals(env)

	result := eval.Eval(program, env)
	if result == nil {
		return nil
	}

	switch result.Type() {
	case object.ERROR_OBJ:
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		return fmt.Errorf("%s", result.Inspect())
	case object.NIL_OBJ:
		return nil
	default:
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
		return nil
	}
}
