package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/mohanrajendran/loxwalk/internal"
)

func main() {
	debug := flag.Bool("debug", false, "emit structured debug logging to stderr")
	noColor := flag.Bool("no-color", false, "disable colored diagnostics")
	flag.Parse()

	args := flag.Args()
	switch {
	case len(args) > 1:
		fmt.Fprintln(os.Stderr, "Usage: lox [-debug] [-no-color] [script]")
		os.Exit(64)
	case len(args) == 1:
		runFile(args[0], *debug, *noColor)
	default:
		runPrompt(*debug, *noColor)
	}
}

func runFile(path string, debug, noColor bool) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}

	_, sink := internal.RunSourceColored(string(b), os.Stdout, os.Stderr, debug, noColor)
	switch {
	case sink.HadError():
		os.Exit(65)
	case sink.HadRuntimeError():
		os.Exit(70)
	}
}

// runPrompt is a REPL grounded on the teacher's file-driven cmd entrypoints,
// generalized with a read-eval-print loop since neither of the teacher's
// drivers (cmd/grotsky/main.go, cmd/grotsky/interpreter/main.go) offered one.
// A single interpreter is reused across lines so top-level var/fun/class
// declarations persist, per spec.md's REPL semantics.
func runPrompt(debug, noColor bool) {
	interp, _ := internal.RunSourceColored("", os.Stdout, os.Stderr, debug, noColor)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		interp.Run(line)
	}
}
