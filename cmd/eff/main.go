// eff renders eslint JSON results as a friendly terminal report.
//
// Usage:
//
//	eslint --format json . | eff
//	eslint --format json . | eff --eff-by-issue
//	cat results.json | eff --eff-filter=semi
//
// Input is the eslint --format json payload on stdin: an array of
// per-file results (a {"results": [...]} wrapper is also accepted).
//
// Configuration layers, lowest to highest: .eff.yaml, EFF_* environment
// variables, --eff-* arguments. Unrecognized arguments are ignored so
// eff can sit at the end of a larger command line.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ianwitherow/eslint-friendly-formatter/internal/config"
	"github.com/ianwitherow/eslint-friendly-formatter/internal/detect"
	"github.com/ianwitherow/eslint-friendly-formatter/internal/version"
	"github.com/ianwitherow/eslint-friendly-formatter/pkg/eslint"
	"github.com/ianwitherow/eslint-friendly-formatter/pkg/formatter"
	"github.com/ianwitherow/eslint-friendly-formatter/pkg/theme"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Version and help are answered before the loose option scan
	for _, arg := range args {
		switch arg {
		case "--version":
			fmt.Fprintln(stdout, version.String())
			return 0
		case "--help", "-h":
			usage(stdout)
			return 0
		}
	}

	cfg := config.Load()
	opts := formatter.OptionsFromProcess(os.Getenv, args, cfg.Options())
	opts.TerminalHint = formatter.WantTerminalHint(os.Getenv, isTTYWriter(stdout))
	if wd, err := os.Getwd(); err == nil {
		opts.WorkingDir = wd
	}

	th := theme.ByName(cfg.Theme)
	// Honor NO_COLOR
	if os.Getenv("NO_COLOR") != "" {
		th = theme.Mono()
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "eff: reading stdin: %v\n", err)
		return 2
	}
	if len(input) == 0 {
		fmt.Fprintf(stderr, "eff: no input on stdin\n")
		return 2
	}

	if detect.Sniff(input) != detect.ESLintJSON {
		fmt.Fprintf(stderr, "eff: unrecognized input (expected eslint --format json results)\n")
		return 2
	}

	results, err := eslint.ReadBytes(input)
	if err != nil {
		fmt.Fprintf(stderr, "eff: parsing eslint json: %v\n", err)
		return 2
	}
	debugf(stderr, "parsed %d file result(s)", len(results))

	fmt.Fprint(stdout, formatter.New(opts, th).Build(results))
	return exitCode(results)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// exitCode returns 0 for a clean run, 1 when any message classifies as
// an error. The display filter never changes the exit code.
func exitCode(results []eslint.Result) int {
	for _, res := range results {
		for _, msg := range res.Messages {
			if msg.IsError() {
				return 1
			}
		}
	}
	return 0
}

// debugf traces internals to stderr when EFF_DEBUG is set.
func debugf(stderr io.Writer, format string, args ...interface{}) {
	if os.Getenv("EFF_DEBUG") == "" {
		return
	}
	fmt.Fprintf(stderr, "[DEBUG eff] "+format+"\n", args...)
}

func usage(w io.Writer) {
	fmt.Fprint(w, `eff formats eslint JSON results as a friendly terminal report.

Usage:
  eslint --format json . | eff [options]

Options:
  --eff-by-issue         group findings by rule id
  --eff-filter=<rule>    render findings for a single rule id
  --eff-absolute-paths   render absolute file paths
  --version              print version information
  --help                 show this help

Environment:
  EFF_NO_GRAY=true         disable dimmed secondary text
  EFF_EDITOR_SCHEME=<url>  editor link template with {file}, {line}, {column}
  EFF_NO_LINK_RULES=true   disable rule documentation links
  EFF_ABSOLUTE_PATHS=true  default to absolute file paths
  NO_COLOR                 disable colors

Unrecognized arguments are ignored.
`)
}
