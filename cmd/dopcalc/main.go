// Command dopcalc is the interactive calculator REPL: it reads one line
// at a time, evaluates it, and prints the resulting value or an error.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"dopcalc/interpreter-go/pkg/driver"
	"dopcalc/interpreter-go/pkg/interpreter"
)

const cliToolVersion = "dopcalc 0.1.0"

// quitSentinel terminates the process with success status.
const quitSentinel = ":quit"

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var (
		configPath string
		expr       string
		quiet      bool
		noColor    bool
	)

	opts, optind, err := getopt.Getopts(args, "c:e:nqhV")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		printUsage()
		return 1
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			configPath = opt.Value
		case 'e':
			expr = opt.Value
		case 'n':
			noColor = true
		case 'q':
			quiet = true
		case 'h':
			printUsage()
			return 0
		case 'V':
			fmt.Fprintln(os.Stdout, cliToolVersion)
			return 0
		}
	}
	if optind < len(args) {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[optind:], " "))
		printUsage()
		return 1
	}

	cfg, err := resolveConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if noColor || !cfg.Color {
		color.NoColor = true
	}

	interp := interpreter.New()
	for _, line := range cfg.Startup {
		if _, err := interp.EvaluateLine(line); err != nil {
			fmt.Fprintf(os.Stderr, "startup line %q: %v\n", line, err)
			return 1
		}
	}

	if expr != "" {
		val, err := interp.EvaluateLine(expr)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %s\n", err)
			return 1
		}
		fmt.Fprintln(os.Stdout, val.String())
		return 0
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "%s (%s to exit)\n", cliToolVersion, quitSentinel)
	}
	return repl(interp, cfg.Prompt, os.Stdin, os.Stdout)
}

// resolveConfig loads the explicit config path when given, otherwise
// the default file if one exists.
func resolveConfig(path string) (*driver.Config, error) {
	if path != "" {
		return driver.LoadConfig(path)
	}
	cfg, err := driver.LoadConfig(driver.DefaultConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return driver.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// repl runs the read-eval-print loop until the quit sentinel or end of
// input. Failed lines print an Error message and the loop continues;
// the variable environment keeps whatever side effects the line already
// made.
func repl(interp *interpreter.Interpreter, prompt string, in io.Reader, out io.Writer) int {
	lines := bufio.NewScanner(in)
	for {
		promptColor.Fprint(out, prompt)
		if !lines.Scan() {
			fmt.Fprintln(out)
			return 0
		}
		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}
		if line == quitSentinel {
			return 0
		}
		val, err := interp.EvaluateLine(line)
		if err != nil {
			errorColor.Fprintf(out, "Error: %s\n", err)
			continue
		}
		fmt.Fprintln(out, val.String())
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  dopcalc [-c config] [-q] [-n]")
	fmt.Fprintln(os.Stderr, "  dopcalc -e <expression>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -c FILE  load REPL configuration from FILE (default calc.yml)")
	fmt.Fprintln(os.Stderr, "  -e EXPR  evaluate one expression and exit")
	fmt.Fprintln(os.Stderr, "  -n       disable colored output")
	fmt.Fprintln(os.Stderr, "  -q       suppress the startup banner")
	fmt.Fprintln(os.Stderr, "  -h       show this help")
	fmt.Fprintln(os.Stderr, "  -V       print the version")
}
