// Command md2html converts Markdown files to HTML, with optional PDF export.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	undo := setMaxProcs(verboseRequested(os.Args[1:]))
	code := runMain(os.Args, DefaultEnv())
	undo()
	os.Exit(code)
}

// setMaxProcs aligns GOMAXPROCS with the container CPU quota. The adjustment
// is only logged in verbose mode.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool) func() {
	logger := func(string, ...any) {}
	if verbose {
		logger = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	undo, _ := maxprocs.Set(maxprocs.Logger(logger))
	return undo
}

// verboseRequested scans raw arguments for -v or --verbose before flag
// parsing, so GOMAXPROCS tuning can be reported.
func verboseRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--verbose" || arg == "-v" {
			return true
		}
	}
	return false
}

// commands lists the subcommands runMain dispatches on.
var commands = []string{"convert", "config", "version", "help", "completion", "doctor"}

// isCommand reports whether name is a known subcommand.
func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

// runMain dispatches to a subcommand and returns the process exit code.
// Arguments that are not a command fall through to convert, so
// "md2html README.md" and "cat README.md | md2html" both work.
func runMain(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	if len(args) < 2 {
		if !env.StdinIsTerminal() {
			return runConvertCmd(nil, env)
		}
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "convert":
		return runConvertCmd(rest, env)
	case "config":
		return exitWithError(runConfigCmd(rest, env), env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	case "completion":
		return exitWithError(runCompletion(rest, env), env)
	case "doctor":
		return runDoctorCmd(rest, env)
	}

	if strings.HasPrefix(cmd, "-") || looksLikeInput(cmd) {
		return runConvertCmd(args[1:], env)
	}

	fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}

// looksLikeInput reports whether arg names a Markdown file or an existing
// path, as opposed to a mistyped command.
func looksLikeInput(arg string) bool {
	if arg == "-" || fileutil.IsMarkdown(arg) || strings.ContainsAny(arg, `/\`) {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

// runConvertCmd parses convert flags, runs the conversion under a signal
// aware context, and maps the outcome to an exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return exitWithError(err, env)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return exitWithError(runConvert(ctx, positional, flags, env), env)
}

// exitWithError prints err with any matching hint and returns its exit code.
func exitWithError(err error, env *Environment) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}
