package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/textgrain/spell/internal/config"
)

func Test_LoadConfig_Returns_Error_When_NoPrimarySet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := config.LoadConfig(dir, "", config.Profile{}, nil, nil)
	if err == nil {
		t.Fatal("want error when no primary dictionary is configured anywhere")
	}
}

func Test_LoadConfig_Returns_ProjectValue_When_ProjectFileSetsPrimary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectConfig(t, dir, `{"primary": "project-dict.txt"}`)

	profile, sources, err := config.LoadConfig(dir, "", config.Profile{}, nil, nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if profile.Primary != "project-dict.txt" {
		t.Errorf("Primary = %q, want project-dict.txt", profile.Primary)
	}

	if sources.Project == "" {
		t.Error("want sources.Project to record the loaded file path")
	}
}

func Test_LoadConfig_Returns_CLIOverride_When_OverrideSetEvenWithProjectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectConfig(t, dir, `{"primary": "project-dict.txt"}`)

	overrides := config.Profile{Primary: "cli-dict.txt"}

	profile, _, err := config.LoadConfig(dir, "", overrides, func(field string) bool {
		return field == "primary"
	}, nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if profile.Primary != "cli-dict.txt" {
		t.Errorf("Primary = %q, want cli-dict.txt (CLI override must win)", profile.Primary)
	}
}

func Test_LoadConfig_Returns_Error_When_PrimaryExplicitlyEmptyInProjectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectConfig(t, dir, `{"primary": ""}`)

	_, _, err := config.LoadConfig(dir, "", config.Profile{}, nil, nil)
	if err == nil {
		t.Fatal("want error when primary is explicitly set to empty string")
	}
}

func Test_LoadConfig_Returns_Error_When_ExplicitConfigPathMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := config.LoadConfig(dir, "does-not-exist.json", config.Profile{}, nil, nil)
	if err == nil {
		t.Fatal("want error when an explicit --config path does not exist")
	}
}

func Test_LoadConfig_Parses_JSONCComments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeProjectConfig(t, dir, "{\n  // a comment\n  \"primary\": \"dict.txt\",\n}")

	profile, _, err := config.LoadConfig(dir, "", config.Profile{}, nil, nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if profile.Primary != "dict.txt" {
		t.Errorf("Primary = %q, want dict.txt", profile.Primary)
	}
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()

	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing project config: %v", err)
	}
}
