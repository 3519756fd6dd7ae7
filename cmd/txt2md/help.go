package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2md <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert text files to Markdown")
	fmt.Fprintln(w, "  check      Report whether files already look like Markdown")
	fmt.Fprintln(w, "  preview    Render a converted file in the terminal")
	fmt.Fprintln(w, "  styles     List CSS styles for HTML output")
	fmt.Fprintln(w, "  doctor     Check configuration and environment")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'txt2md help <command>' for details on a specific command.")
	fmt.Fprintln(w, "'txt2md <file>' is short for 'txt2md convert <file>'.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2md convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert text files to Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "           Supported: .txt .text .md .markdown .doc .docx .html .htm .pdf")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (.md) or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formatting:")
	fmt.Fprintln(w, "      --no-headings         Disable heading detection")
	fmt.Fprintln(w, "      --no-lists            Disable list detection")
	fmt.Fprintln(w, "      --no-code             Disable code block detection")
	fmt.Fprintln(w, "      --no-links            Disable link detection")
	fmt.Fprintln(w, "      --preserve-whitespace Keep blank lines as they are")
	fmt.Fprintln(w, "  -f, --force               Format text that already looks like Markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HTML:")
	fmt.Fprintln(w, "      --html                Also write an HTML page")
	fmt.Fprintln(w, "      --style <s>           CSS style name or file path (see 'txt2md styles')")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory of custom CSS styles")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Front Matter:")
	fmt.Fprintln(w, "      --front-matter        Prepend YAML front matter")
	fmt.Fprintln(w, "      --title <s>           Title (\"\" = auto from H1)")
	fmt.Fprintln(w, "      --author <s>          Author")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, dddd, ddd, HH, mm, ss")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, full, datetime")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Date]: YYYY")
	fmt.Fprintln(w, "      --tags <a,b>          Tags")
	fmt.Fprintln(w, "      --id <s>              Document ID (\"auto\" = random UUID)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TXT2MD_CONFIG, TXT2MD_INPUT_DIR, TXT2MD_OUTPUT_DIR, TXT2MD_STYLE, TXT2MD_WORKERS")
	fmt.Fprintln(w, "  Priority: flags > environment > config file > defaults")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2md check <file>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report whether each file already looks like Markdown.")
	fmt.Fprintln(w, "Exits 0 if every file does, 1 otherwise.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -q, --quiet               Only set the exit code")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2md preview <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a file and render the Markdown in the terminal.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --style <s>           Terminal style: auto, dark, light, notty")
	fmt.Fprintln(w, "      --width <n>           Word wrap width (0 = no wrap, default 80)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --no-headings, --no-lists, --no-code, --no-links, --preserve-whitespace, -f")
	fmt.Fprintln(w, "                            Same as convert")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "styles":
		fmt.Fprintln(env.Stdout, "Usage: txt2md styles [--asset-path <dir>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List CSS styles for HTML output, including custom ones from --asset-path.")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: txt2md doctor [--config <name>] [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check the config file, styles, environment variables and output directory.")
		fmt.Fprintln(env.Stdout, "Exits 0 when ready (warnings included), 1 on errors.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: txt2md version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: txt2md help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
