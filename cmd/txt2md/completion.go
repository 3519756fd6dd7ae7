package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-txt2md/internal/assets"
	"github.com/alnah/go-txt2md/internal/extract"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

var supportedShells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// takesValue reports whether the flag consumes the next word.
func (f flagDef) takesValue() bool {
	return f.Type != flagBool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool     // accepts file arguments
	Args       []string // fixed positional values, e.g. shell names
}

// completionMeta holds completion hints that a FlagSet cannot express.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
// --style is resolved per command by completionMetaFor.
var flagCompletionMeta = map[string]completionMeta{
	"config":     {FileGlob: "*.yaml,*.yml"},
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

func completionMetaFor(cmd, flagName string) (completionMeta, bool) {
	if flagName == "style" {
		if cmd == "preview" {
			return completionMeta{Values: previewStyles}, true
		}
		return completionMeta{Values: assets.Styles()}, true
	}
	meta, ok := flagCompletionMeta[flagName]
	return meta, ok
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from completionMetaFor.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := completionMetaFor(fs.Name(), f.Name); ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags come from the same FlagSets the commands parse with.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:       "convert",
			Desc:       "Convert text files to Markdown",
			Flags:      extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			TakesFiles: true,
		},
		{
			Name:       "check",
			Desc:       "Report whether files already look like Markdown",
			Flags:      extractFlagsFromFlagSet(newCheckFlagSet(&checkFlags{})),
			TakesFiles: true,
		},
		{
			Name:       "preview",
			Desc:       "Render a converted file in the terminal",
			Flags:      extractFlagsFromFlagSet(newPreviewFlagSet(&previewFlags{})),
			TakesFiles: true,
		},
		{
			Name:  "styles",
			Desc:  "List CSS styles for HTML output",
			Flags: extractFlagsFromFlagSet(newStylesFlagSet(&stylesFlags{})),
		},
		{
			Name:  "doctor",
			Desc:  "Check configuration and environment",
			Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{})),
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: commandNames,
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: supportedShells,
		},
	}
}

// commandNames lists every command, in usage order.
var commandNames = []string{"convert", "check", "preview", "styles", "doctor", "version", "help", "completion"}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	case ShellPowerShell:
		script = generatePowerShell(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(supportedShells, ", "))
	}
	_, err := io.WriteString(w, script)
	return err
}

// fileExtensions returns the supported input extensions without dots.
func fileExtensions() []string {
	exts := extract.NewRegistry().SupportedExtensions()
	for i, e := range exts {
		exts[i] = strings.TrimPrefix(e, ".")
	}
	return exts
}

// flagWords returns every spelling of the flags: --long and -s.
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

func generateBash(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for txt2md\n\n")
	b.WriteString("_txt2md_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(commandNames, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)

		var valueFlags []flagDef
		for _, f := range c.Flags {
			if f.takesValue() {
				valueFlags = append(valueFlags, f)
			}
		}
		if len(valueFlags) > 0 {
			b.WriteString("        case \"$prev\" in\n")
			for _, f := range valueFlags {
				fmt.Fprintf(&b, "        %s)\n", strings.Join(flagWords([]flagDef{f}), "|"))
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
				case flagDir:
					b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
				case flagFile:
					b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
				}
				b.WriteString("            return\n")
				b.WriteString("            ;;\n")
			}
			b.WriteString("        esac\n")
		}

		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(flagWords(c.Flags), " "))
		switch {
		case c.TakesFiles:
			b.WriteString("        else\n")
			b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		case len(c.Args) > 0:
			b.WriteString("        else\n")
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
		}
		b.WriteString("        fi\n")
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _txt2md_completions txt2md\n")
	return b.String()
}

// zshQuote escapes s for a single-quoted _arguments description.
func zshQuote(s string) string {
	return strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`).Replace(s)
}

// zshAction returns the ":message:action" suffix of a value flag.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagDir:
		return fmt.Sprintf(":%s:_files -/", f.Long)
	case flagFile:
		globs := strings.Split(f.FileGlob, ",")
		return fmt.Sprintf(":%s:_files -g \"%s\"", f.Long, strings.Join(globs, " "))
	case flagBool:
		return ""
	default:
		return fmt.Sprintf(":%s: ", f.Long)
	}
}

func generateZsh(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef txt2md\n\n")
	b.WriteString("_txt2md() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshQuote(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe -t commands 'txt2md command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	files := fmt.Sprintf("'*:file:_files -g \"*.(%s)\"'", strings.Join(fileExtensions(), "|"))
	for _, c := range cmds {
		var specs []string
		for _, f := range c.Flags {
			spec := fmt.Sprintf("'--%s[%s]%s'", f.Long, zshQuote(f.Desc), zshAction(f))
			if f.Short != "" {
				spec = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, zshQuote(f.Desc), zshAction(f))
			}
			specs = append(specs, spec)
		}
		switch {
		case c.TakesFiles:
			specs = append(specs, files)
		case len(c.Args) > 0:
			specs = append(specs, fmt.Sprintf("'1:%s:(%s)'", c.Name, strings.Join(c.Args, " ")))
		}
		if len(specs) == 0 {
			continue
		}

		fmt.Fprintf(&b, "        %s)\n", c.Name)
		b.WriteString("            _arguments \\\n                ")
		b.WriteString(strings.Join(specs, " \\\n                "))
		b.WriteString("\n            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_txt2md \"$@\"\n")
	return b.String()
}

// fishQuote single-quotes s for fish.
func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}

func generateFish(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for txt2md\n\n")
	b.WriteString("function __fish_txt2md_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_txt2md_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$cmd[2]\" = \"$argv[1]\"\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c txt2md -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c txt2md -n __fish_txt2md_needs_command -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}

	for _, c := range cmds {
		b.WriteString("\n")
		cond := fishQuote("__fish_txt2md_using_command " + c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c txt2md -n %s", cond)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			fmt.Fprintf(&b, " -l %s", f.Long)
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, " -x -a %s", fishQuote(strings.Join(f.Values, " ")))
			case flagDir:
				b.WriteString(" -r -a '(__fish_complete_directories)'")
			case flagFile:
				b.WriteString(" -r -F")
			case flagString, flagInt:
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d %s\n", fishQuote(f.Desc))
		}
		switch {
		case c.TakesFiles:
			fmt.Fprintf(&b, "complete -c txt2md -n %s -F\n", cond)
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c txt2md -n %s -a %s\n", cond, fishQuote(strings.Join(c.Args, " ")))
		}
	}
	return b.String()
}

// psQuote single-quotes s for PowerShell.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func generatePowerShell(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# PowerShell completion for txt2md\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName txt2md -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s = %s\n", psQuote(c.Name), psQuote(c.Desc))
	}
	b.WriteString("    }\n")
	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		words := flagWords(c.Flags)
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = psQuote(w)
		}
		fmt.Fprintf(&b, "        %s = @(%s)\n", psQuote(c.Name), strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    if ($words.Count -lt 2 -or ($words.Count -eq 2 -and $wordToComplete -ne '')) {\n")
	b.WriteString("        $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $cmd = $words[1]\n")
	b.WriteString("    if ($wordToComplete -like '-*' -and $flags.ContainsKey($cmd)) {\n")
	b.WriteString("        $flags[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if args[0] == "-h" || args[0] == "--help" {
		return flag.ErrHelp
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2md completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(txt2md completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(txt2md completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    txt2md completion fish > ~/.config/fish/completions/txt2md.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    txt2md completion powershell | Out-String | Invoke-Expression")
}
