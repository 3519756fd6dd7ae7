package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/config"
)

// ErrDoctorFailed reports a doctor run that found errors.
var ErrDoctorFailed = errors.New("doctor found problems")

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"`
	Config   configInfo `json:"config"`
	Styles   stylesInfo `json:"styles"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// configInfo describes the config file lookup.
type configInfo struct {
	Name     string   `json:"name"`
	Found    bool     `json:"found"`
	Searched []string `json:"searched,omitempty"` // set when the optional default is absent
}

// stylesInfo describes the HTML styles.
type stylesInfo struct {
	Configured string   `json:"configured,omitempty"`
	AssetPath  string   `json:"asset_path,omitempty"`
	Available  []string `json:"available"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string            `json:"os"`
	Arch          string            `json:"arch"`
	Variables     map[string]string `json:"variables,omitempty"`
	Unknown       []string          `json:"unknown_variables,omitempty"`
	Container     bool              `json:"container"`
	ContainerHint string            `json:"container_hint,omitempty"`
	CI            bool              `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	Workers        int    `json:"workers"`
	OutputDir      string `json:"output_dir"`
	OutputWritable bool   `json:"output_writable"`
}

// runDoctor checks the configuration and environment a conversion would use.
// Warnings keep the exit code at 0; errors return ErrDoctorFailed.
func runDoctor(args []string, env *Environment) error {
	flags, err := parseDoctorFlags(args)
	if err != nil {
		return err
	}

	result := diagnose(flags.config)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return fmt.Errorf("%w: %d error(s)", ErrDoctorFailed, len(result.Errors))
	}
	return nil
}

// diagnose performs all diagnostic checks.
func diagnose(configFlag string) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	cfg := checkConfig(result, configFlag)
	checkStyles(result, cfg)
	checkEnvironment(result)
	checkSystem(result, cfg)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkConfig loads the config the way convert does and returns the
// effective settings, environment included.
func checkConfig(result *doctorResult, configFlag string) *config.Config {
	envCfg := loadEnvConfig()
	name, required := configName(configFlag, envCfg)
	result.Config.Name = name

	cfg, err := config.LoadConfig(name)
	switch {
	case err == nil:
		result.Config.Found = true
	case !required && errors.Is(err, config.ErrConfigNotFound):
		result.Config.Searched = config.SearchPaths(name)
		cfg = config.DefaultConfig()
	default:
		result.Errors = append(result.Errors, fmt.Sprintf("Config: %v", err))
		cfg = config.DefaultConfig()
	}

	applyEnvConfig(envCfg, cfg)
	return cfg
}

// checkStyles verifies the configured style and asset path resolve.
func checkStyles(result *doctorResult, cfg *config.Config) {
	result.Styles.Configured = cfg.HTML.Style
	result.Styles.AssetPath = cfg.HTML.AssetPath

	conv, err := txt2md.NewConverter(
		txt2md.WithHTML(true),
		txt2md.WithStyle(cfg.HTML.Style),
		txt2md.WithAssetPath(cfg.HTML.AssetPath),
	)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Style: %v", err))
		if conv, err = txt2md.NewConverter(); err != nil {
			return
		}
	}
	result.Styles.Available = conv.Styles()
}

// checkEnvironment reports TXT2MD_* variables and detects container and CI
// environments, where automaxprocs adjusts the default worker count.
func checkEnvironment(result *doctorResult) {
	for name := range knownEnvVars {
		if v := os.Getenv(name); v != "" {
			if result.Env.Variables == nil {
				result.Env.Variables = make(map[string]string)
			}
			result.Env.Variables[name] = v
		}
	}

	result.Env.Unknown = unknownEnvVars()
	for _, name := range result.Env.Unknown {
		msg := "Unknown environment variable " + name
		if s := suggestEnvVar(name); s != "" {
			msg += " (did you mean " + s + "?)"
		}
		result.Warnings = append(result.Warnings, msg)
	}

	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem resolves the worker count and verifies the default output
// directory accepts the temp files atomic writes use.
func checkSystem(result *doctorResult, cfg *config.Config) {
	result.System.Workers = resolveWorkers(cfg.Workers)

	dir := cfg.Output.DefaultDir
	if dir == "" {
		dir = "."
	}
	result.System.OutputDir = dir

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Output directory %s does not exist; convert will create it", dir))
		return
	case err != nil:
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory: %v", err))
		return
	case !info.IsDir():
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory %s is not a directory", dir))
		return
	}

	f, err := os.CreateTemp(dir, ".txt2md-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory %s is not writable", dir))
		return
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	result.System.OutputWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	th := newTheme(w)
	ok, warn, bad := th.success.Render("[OK]"), th.warning.Render("[WARN]"), th.failure.Render("[ERROR]")

	fmt.Fprintln(w, "txt2md doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	switch {
	case r.Config.Found:
		fmt.Fprintf(w, "  %s Loaded %s\n", ok, r.Config.Name)
	case len(r.Config.Searched) > 0:
		fmt.Fprintf(w, "  %s No config file, using defaults\n", ok)
	default:
		fmt.Fprintf(w, "  %s Could not load %s\n", bad, r.Config.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Styles")
	if r.Styles.Configured != "" {
		fmt.Fprintf(w, "  %s Configured: %s\n", ok, r.Styles.Configured)
	}
	if r.Styles.AssetPath != "" {
		fmt.Fprintf(w, "  %s Asset path: %s\n", ok, r.Styles.AssetPath)
	}
	fmt.Fprintf(w, "  %s Available: %d\n", ok, len(r.Styles.Available))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  %s Platform: %s/%s\n", ok, r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  %s Container: detected (%s)\n", ok, r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintf(w, "  %s CI: detected\n", ok)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  %s Workers: %d\n", ok, r.System.Workers)
	if r.System.OutputWritable {
		fmt.Fprintf(w, "  %s Output directory: %s (writable)\n", ok, r.System.OutputDir)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, msg := range r.Warnings {
			fmt.Fprintf(w, "  %s %s\n", warn, msg)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, msg := range r.Errors {
			fmt.Fprintf(w, "  %s %s\n", bad, msg)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
