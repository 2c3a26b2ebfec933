package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2mail/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdConvert = "convert"
	cmdLint    = "lint"
	cmdFooters = "footers"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command line and returns the process exit code.
// Without a command, or when the first argument is a flag or a markdown
// file, convert is assumed.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	rest := args[1:]
	command := cmdConvert
	if len(rest) > 0 && isCommand(rest[0]) {
		command, rest = rest[0], rest[1:]
	} else if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") && !isMarkdown(rest[0]) && !fileutil.DirExists(rest[0]) {
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", rest[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch command {
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "md2mail %s\n", Version)
		return ExitSuccess
	case cmdHelp:
		if !runHelp(rest, env) {
			return ExitUsage
		}
		return ExitSuccess
	case cmdLint:
		flags, positional, err := parseLintFlags(rest, env.Stderr)
		if err != nil {
			return flagExit(err, env)
		}
		log := env.newLogger(flags.common.quiet, flags.common.verbose)
		return report(runLint(positional, flags, env, log), env)
	case cmdFooters:
		flags, _, err := parseFootersFlags(rest, env.Stderr)
		if err != nil {
			return flagExit(err, env)
		}
		log := env.newLogger(flags.common.quiet, flags.common.verbose)
		return report(runFooters(flags, env, log), env)
	default:
		flags, positional, err := parseConvertFlags(rest, env.Stderr)
		if err != nil {
			return flagExit(err, env)
		}
		log := env.newLogger(flags.common.quiet, flags.common.verbose)

		// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
		// in which case Go runtime defaults apply and the program continues safely.
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			log.Debug().Msgf(format, a...)
		}))

		return report(runConvert(ctx, positional, flags, env, log), env)
	}
}

// report prints err and maps it to an exit code.
func report(err error, env *Environment) int {
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// flagExit handles flag parsing failures. Help requests exit cleanly.
func flagExit(err error, env *Environment) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	return report(err, env)
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	switch s {
	case cmdConvert, cmdLint, cmdFooters, cmdVersion, cmdHelp:
		return true
	}
	return false
}
