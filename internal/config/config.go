// Package config loads a spell-checking profile from layered JSONC
// config files and CLI overrides, the same way the teacher's config.go
// layers a ticket-tracker config.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
)

// Profile describes one language's dictionaries and engine flags.
type Profile struct {
	Primary           string   `json:"primary"`
	Supplemental      []string `json:"supplemental,omitempty"`
	Transcription     string   `json:"transcription,omitempty"`
	Personal          string   `json:"personal,omitempty"`
	ExpandPrecomposed bool     `json:"expand_precomposed,omitempty"`
	UpperLower        bool     `json:"upper_lower,omitempty"`
	HasCompounds      bool     `json:"has_compounds,omitempty"`
	HasComposition    bool     `json:"has_composition,omitempty"`
	MaxAlternatives   int      `json:"max_alternatives,omitempty"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string
	Project string
}

var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrPrimaryEmpty       = errors.New("primary cannot be empty")
)

// FileName is the default project config file name.
const FileName = ".spellcheck.json"

// DefaultProfile returns the zero profile: no primary dictionary set,
// so LoadConfig will fail validation unless one is supplied by a
// config file or override.
func DefaultProfile() Profile {
	return Profile{}
}

func globalConfigPath(env []string) string {
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "XDG_CONFIG_HOME="); ok {
			return filepath.Join(after, "spellcheck", "config.json")
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spellcheck", "config.json")
	}

	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, ".config", "spellcheck", "config.json")
	}

	return ""
}

// LoadConfig loads configuration with the following precedence
// (highest wins): defaults < global user config < project config (or
// an explicit configPath) < CLI overrides.
func LoadConfig(workDir, configPath string, overrides Profile, overrideSet func(field string) bool, env []string) (Profile, Sources, error) {
	profile := DefaultProfile()

	var sources Sources

	globalProfile, globalPath, err := loadGlobalConfig(env)
	if err != nil {
		return Profile{}, Sources{}, err
	}

	sources.Global = globalPath
	profile = mergeProfile(profile, globalProfile)

	projectProfile, projectPath, err := loadProjectConfig(workDir, configPath)
	if err != nil {
		return Profile{}, Sources{}, err
	}

	sources.Project = projectPath
	profile = mergeProfile(profile, projectProfile)

	profile = applyOverrides(profile, overrides, overrideSet)

	if err := validateProfile(profile); err != nil {
		return Profile{}, Sources{}, err
	}

	return profile, sources, nil
}

func loadGlobalConfig(env []string) (Profile, string, error) {
	path := globalConfigPath(env)
	if path == "" {
		return Profile{}, "", nil
	}

	profile, explicitEmpty, loaded, err := loadConfigFile(path, false)
	if err != nil {
		return Profile{}, "", err
	}

	if !loaded {
		return Profile{}, "", nil
	}

	if explicitEmpty["primary"] {
		return Profile{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrPrimaryEmpty)
	}

	return profile, path, nil
}

func loadProjectConfig(workDir, configPath string) (Profile, string, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		if _, statErr := os.Stat(cfgFile); statErr != nil {
			return Profile{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		cfgFile = filepath.Join(workDir, FileName)
		mustExist = false
	}

	profile, explicitEmpty, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Profile{}, "", err
	}

	if !loaded {
		return Profile{}, "", nil
	}

	if explicitEmpty["primary"] {
		return Profile{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, cfgFile, ErrPrimaryEmpty)
	}

	return profile, cfgFile, nil
}

func loadConfigFile(path string, mustExist bool) (Profile, map[string]bool, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally caller-controlled
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Profile{}, nil, false, nil
		}

		if mustExist {
			return Profile{}, nil, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Profile{}, nil, false, nil
	}

	profile, explicitEmpty, parseErr := parseConfig(data)
	if parseErr != nil {
		return Profile{}, nil, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return profile, explicitEmpty, true, nil
}

func parseConfig(data []byte) (Profile, map[string]bool, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Profile{}, nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var profile Profile

	if err := json.Unmarshal(standardized, &profile); err != nil {
		return Profile{}, nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	explicitEmpty := make(map[string]bool)

	if val, exists := raw["primary"]; exists {
		if str, ok := val.(string); ok && str == "" {
			explicitEmpty["primary"] = true
		}
	}

	return profile, explicitEmpty, nil
}

func mergeProfile(base, overlay Profile) Profile {
	if overlay.Primary != "" {
		base.Primary = overlay.Primary
	}

	if len(overlay.Supplemental) > 0 {
		base.Supplemental = overlay.Supplemental
	}

	if overlay.Transcription != "" {
		base.Transcription = overlay.Transcription
	}

	if overlay.Personal != "" {
		base.Personal = overlay.Personal
	}

	if overlay.ExpandPrecomposed {
		base.ExpandPrecomposed = true
	}

	if overlay.UpperLower {
		base.UpperLower = true
	}

	if overlay.HasCompounds {
		base.HasCompounds = true
	}

	if overlay.HasComposition {
		base.HasComposition = true
	}

	if overlay.MaxAlternatives > 0 {
		base.MaxAlternatives = overlay.MaxAlternatives
	}

	return base
}

// applyOverrides applies CLI-supplied overrides field-by-field,
// guided by overrideSet (nil means "no overrides were explicitly
// set"). This mirrors the teacher's hasTicketDirOverride pattern,
// generalized to every overridable field.
func applyOverrides(base, overrides Profile, overrideSet func(field string) bool) Profile {
	if overrideSet == nil {
		return base
	}

	if overrideSet("primary") {
		base.Primary = overrides.Primary
	}

	if overrideSet("supplemental") {
		base.Supplemental = overrides.Supplemental
	}

	if overrideSet("transcription") {
		base.Transcription = overrides.Transcription
	}

	if overrideSet("personal") {
		base.Personal = overrides.Personal
	}

	if overrideSet("expand_precomposed") {
		base.ExpandPrecomposed = overrides.ExpandPrecomposed
	}

	if overrideSet("max_alternatives") {
		base.MaxAlternatives = overrides.MaxAlternatives
	}

	return base
}

func validateProfile(profile Profile) error {
	if profile.Primary == "" {
		return ErrPrimaryEmpty
	}

	return nil
}

// Format returns profile as formatted JSON, for the CLI's `config`
// subcommand.
func Format(profile Profile) (string, error) {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}
