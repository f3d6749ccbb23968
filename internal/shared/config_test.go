package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Team.Name != "hipchat" {
			t.Errorf("expected team name hipchat, got %s", config.Team.Name)
		}

		if config.Team.DisplayName != "Hipchat" {
			t.Errorf("expected team display name Hipchat, got %s", config.Team.DisplayName)
		}

		if config.Output.File != "hipchat-export.json" {
			t.Errorf("expected output file hipchat-export.json, got %s", config.Output.File)
		}

		if config.Convert.SkipDeletedMessages {
			t.Error("deleted messages should be imported by default")
		}

		if config.Convert.OnMissingAuthor != MissingAuthorFail {
			t.Errorf("expected fail policy by default, got %s", config.Convert.OnMissingAuthor)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Team.Name != DefaultConfig().Team.Name {
			t.Errorf("created config team name doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[team]
name = "acme"
display_name = "Acme Corp"

[output]
file = "import.json"

[convert]
skip_deleted_messages = true
on_missing_author = "skip"
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if config.Team.Name != "acme" || config.Team.DisplayName != "Acme Corp" {
			t.Errorf("unexpected team config %+v", config.Team)
		}
		if config.Output.File != "import.json" {
			t.Errorf("unexpected output config %+v", config.Output)
		}
		if !config.Convert.SkipDeletedMessages || config.Convert.OnMissingAuthor != MissingAuthorSkip {
			t.Errorf("unexpected convert config %+v", config.Convert)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("loading a missing config should fail")
		}
	})

	t.Run("Validate rejects unknown policy", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		content := `
[convert]
on_missing_author = "explode"
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
