package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("DefaultFormat = %q, want text", cfg.Output.DefaultFormat)
	}
	if !cfg.Output.ShowAccountInfo {
		t.Error("ShowAccountInfo should default to true")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "powercost.yaml")
	content := `
output:
  default_format: json
  show_account_info: false
logging:
  level: debug
rates_file: /etc/powercost/rates.hcl
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q, want json", cfg.Output.DefaultFormat)
	}
	if cfg.Output.ShowAccountInfo {
		t.Error("ShowAccountInfo = true, want false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.RatesFile != "/etc/powercost/rates.hcl" {
		t.Errorf("RatesFile = %q", cfg.RatesFile)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "powercost.yaml")
	if err := os.WriteFile(path, []byte("output: ["), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on invalid YAML")
	}
}
