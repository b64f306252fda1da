package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	// Default ignore patterns must cover both spellings.
	want := []string{"br_*", ".br_*"}
	if len(cfg.Extract.IgnoreClasses) != len(want) {
		t.Fatalf("IgnoreClasses = %v, want %v", cfg.Extract.IgnoreClasses, want)
	}
	for i := range want {
		if cfg.Extract.IgnoreClasses[i] != want[i] {
			t.Errorf("IgnoreClasses[%d] = %q, want %q", i, cfg.Extract.IgnoreClasses[i], want[i])
		}
	}

	if !cfg.Extract.EmitIntermediate {
		t.Error("Expected EmitIntermediate to default to true")
	}

	if cfg.Scan.MaxCandidates != 100 {
		t.Errorf("MaxCandidates = %d, want 100", cfg.Scan.MaxCandidates)
	}

	if len(cfg.Scan.Extensions) != 2 {
		t.Errorf("Extensions = %v, want .html and .htm", cfg.Scan.Extensions)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
extract:
  ignore_classes: ["u-*", "js-*"]
  emit_intermediate: false
scan:
  extensions: [".html"]
  exclude_dirs: [node_modules]
  max_candidates: 10
logging:
  console:
    level: debug
  file:
    level: none
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if len(cfg.Extract.IgnoreClasses) != 2 || cfg.Extract.IgnoreClasses[0] != "u-*" {
		t.Errorf("IgnoreClasses = %v, want [u-* js-*]", cfg.Extract.IgnoreClasses)
	}

	if cfg.Extract.EmitIntermediate {
		t.Error("Expected EmitIntermediate override to false")
	}

	if cfg.Scan.MaxCandidates != 10 {
		t.Errorf("MaxCandidates = %d, want 10", cfg.Scan.MaxCandidates)
	}

	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("Console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nnot_a_field: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("expected error for unknown configuration fields")
	}
}

func TestLoadConfiguration_BadValues(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad version", "version: 2\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
		{"zero candidates", "version: 1\nscan:\n  max_candidates: 0\n"},
		{"extension without dot", "version: 1\nscan:\n  extensions: [html]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, strings.ReplaceAll(tt.name, " ", "-")+".yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Errorf("expected validation error for %q", tt.name)
			}
		})
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "ignore_classes") {
		t.Error("expected generated configuration to mention ignore_classes")
	}

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	dumped, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(dumped), "br_*") {
		t.Error("expected dumped configuration to contain default ignore pattern")
	}
}
