package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lox "github.com/weakphish/crafting-interpreters"
)

const (
	appName     = "lox"
	historyFile = ".lox_history"
	promptMain  = "> "
)

var banner = fmt.Sprintf("Lox %s REPL\nCtrl+C cancels input, Ctrl+D exits.", lox.Version)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		// No arguments: drop straight into the REPL, like the classic driver.
		os.Exit(cmdRepl())
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "ast":
		os.Exit(cmdAst(os.Args[2:]))
	case "version":
		fmt.Println(lox.Version)
	case "-h", "--help", "help":
		usage()
	default:
		// Bare "lox file.lox" also works, as a courtesy.
		if strings.HasSuffix(cmd, ".lox") {
			os.Exit(cmdRun(os.Args[1:]))
		}
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(64)
	}
}

func usage() {
	fmt.Printf(`Lox %s

Usage:
  %s run <file.lox>     Run a script.
  %s repl               Start the REPL (also the default with no arguments).
  %s ast <file.lox>     Parse a script and dump the syntax tree.
  %s version            Print the version.

`, lox.Version, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.lox>\n", appName)
		return 64
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 64
	}

	sess := lox.NewSession(os.Stdout, nil)
	if sess.Run(string(src)) {
		if sess.HadRuntimeError() {
			return 70
		}
		return 65
	}
	return 0
}

// -----------------------------------------------------------------------------
// ast
// -----------------------------------------------------------------------------

func cmdAst(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s ast <file.lox>\n", appName)
		return 64
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 64
	}

	sess := lox.NewSession(os.Stdout, nil)
	stmts := sess.Parse(string(src))
	fmt.Print(lox.PrintProgram(stmts))
	if sess.HadSyntaxError() {
		return 65
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// One session for the whole REPL: the global environment persists across
	// lines while error state resets per line inside Run.
	sess := lox.NewSession(os.Stdout, replReporter{})

	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue // Ctrl+C: drop the line, keep the session
			}
			fmt.Println()
			return 0 // Ctrl+D / EOF
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		sess.Run(line)
	}
}

// replReporter colorizes diagnostics for the terminal; the library itself
// stays plain-text.
type replReporter struct{}

func (replReporter) Report(line int, where, msg string) {
	fmt.Fprintln(os.Stderr, red(fmt.Sprintf("[line %d] Error%s: %s", line, where, msg)))
}
