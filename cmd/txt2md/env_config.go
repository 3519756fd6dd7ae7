package main

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-txt2md/internal/config"
	"github.com/alnah/go-txt2md/internal/logging"
)

const envPrefix = "TXT2MD_"

// maxSuggestionDistance bounds how different a typo may be from a known name.
const maxSuggestionDistance = 3

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TXT2MD_CONFIG: config file name or path
	InputDir   string // TXT2MD_INPUT_DIR: default input directory
	OutputDir  string // TXT2MD_OUTPUT_DIR: default output directory
	Style      string // TXT2MD_STYLE: HTML style name or CSS path
	Workers    int    // TXT2MD_WORKERS: parallel workers
}

// knownEnvVars lists valid TXT2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TXT2MD_CONFIG":     true,
	"TXT2MD_INPUT_DIR":  true,
	"TXT2MD_OUTPUT_DIR": true,
	"TXT2MD_STYLE":      true,
	"TXT2MD_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TXT2MD_CONFIG"),
		InputDir:   os.Getenv("TXT2MD_INPUT_DIR"),
		OutputDir:  os.Getenv("TXT2MD_OUTPUT_DIR"),
		Style:      os.Getenv("TXT2MD_STYLE"),
	}

	if workers := os.Getenv("TXT2MD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// unknownEnvVars returns the unrecognized TXT2MD_* variable names, sorted.
func unknownEnvVars() []string {
	var unknown []string
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// warnUnknownEnvVars logs a warning for each unrecognized TXT2MD_* variable,
// with the closest known name when one is near enough.
func warnUnknownEnvVars(logger *logging.Logger) {
	for _, name := range unknownEnvVars() {
		logger.UnknownEnv(name, suggestEnvVar(name))
	}
}

// suggestEnvVar returns the known variable closest to name, or "".
func suggestEnvVar(name string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for known := range knownEnvVars {
		d := editDistance(name, known)
		if d < bestDist || (d == bestDist && known < best) {
			best, bestDist = known, d
		}
	}
	if bestDist > maxSuggestionDistance {
		return ""
	}
	return best
}

// editDistance is the Levenshtein distance between two ASCII names.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// applyEnvConfig applies environment variable values over the config file.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" {
		cfg.HTML.Style = env.Style
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
