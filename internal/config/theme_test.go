package config

import (
	"os"
	"testing"

	"github.com/agora-events/agora/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	themeContent := []byte(`theme:
  accent: "#FF0000"
  confirm: "#00FF00"
  pill_background: "#ABCDEF"
`)
	tmpFile, err := os.CreateTemp("", "agora-theme-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer func() {
		if err := os.Remove(tmpFile.Name()); err != nil {
			t.Logf("Failed to remove temp file: %v", err)
		}
	}()

	if _, err := tmpFile.Write(themeContent); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	if err := os.Setenv("AGORA_THEME_FILE", tmpFile.Name()); err != nil {
		t.Fatalf("Failed to set environment variable: %v", err)
	}
	defer func() {
		if err := os.Unsetenv("AGORA_THEME_FILE"); err != nil {
			t.Logf("Failed to unset environment variable: %v", err)
		}
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Confirm != "#00FF00" {
		t.Errorf("Expected confirm to be #00FF00, got %s", cfg.ColorScheme.Confirm)
	}
	if cfg.ColorScheme.PillBackground != "#ABCDEF" {
		t.Errorf("Expected pill_background to be #ABCDEF, got %s", cfg.ColorScheme.PillBackground)
	}
}

func TestGetPreset(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"default", "default"},
		{"monochrome", "monochrome"},
		{"", "default"},
		{"unknown", "default"},
	}

	for _, tt := range tests {
		if got := colors.GetPreset(tt.name); got.Preset != tt.want {
			t.Errorf("GetPreset(%q).Preset = %q, want %q", tt.name, got.Preset, tt.want)
		}
	}
}

func TestApplyDefaultsFillsMissing(t *testing.T) {
	scheme := colors.ColorScheme{Accent: "#101010"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#101010" {
		t.Errorf("Accent = %s, custom value should survive", scheme.Accent)
	}
	if scheme.PillBackground == "" {
		t.Error("PillBackground should be filled from the preset")
	}
	if scheme.Subtle == "" {
		t.Error("Subtle should be filled from the preset")
	}
}
