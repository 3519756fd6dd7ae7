package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand reports a command name runMain does not know.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// A missing .env is fine. Real environment variables win over the file.
	_ = godotenv.Load()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "convert":
		err = runConvert(ctx, rest, env)
	case "check":
		err = runCheck(ctx, rest, env)
	case "preview":
		err = runPreview(ctx, rest, env)
	case "styles":
		err = runStyles(rest, env)
	case "doctor":
		err = runDoctor(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "txt2md %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(rest, env)
	default:
		if looksLikeInput(cmd) {
			err = runConvert(ctx, args[1:], env)
			break
		}
		printUsage(env.Stderr)
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	if errors.Is(err, flag.ErrHelp) {
		_ = runHelp([]string{helpTopic(cmd)}, env)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	return slices.Contains(commandNames, arg)
}

// looksLikeInput reports whether arg is a file or directory rather than a
// mistyped command: it has an extension or exists on disk.
func looksLikeInput(arg string) bool {
	if isCommand(arg) || strings.HasPrefix(arg, "-") {
		return false
	}
	if filepath.Ext(arg) != "" {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

// helpTopic maps the implicit convert shortcut to its help page.
func helpTopic(cmd string) string {
	if isCommand(cmd) {
		return cmd
	}
	return "convert"
}
