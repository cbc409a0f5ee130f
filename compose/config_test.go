package compose_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/renga-collective/renga/compose"
	"github.com/renga-collective/renga/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := compose.DefaultConfig()

	if cfg.Generator != compose.DefaultGenerator {
		t.Errorf("got generator %q, want %q", cfg.Generator, compose.DefaultGenerator)
	}
	if cfg.Model.Name != model.DefaultModel {
		t.Errorf("got model %q, want %q", cfg.Model.Name, model.DefaultModel)
	}
	if cfg.Store.Dir == "" {
		t.Error("store dir should default to a poems directory")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := compose.DefaultConfig()
	source := compose.Config{Generator: "rhyme"}
	source.Model.Name = "local-llama"
	source.Store.Dir = "verse"

	cfg.Merge(&source)

	if cfg.Generator != "rhyme" {
		t.Errorf("got generator %q, want %q", cfg.Generator, "rhyme")
	}
	if cfg.Model.Name != "local-llama" {
		t.Errorf("got model %q, want %q", cfg.Model.Name, "local-llama")
	}
	if cfg.Model.Temperature != model.DefaultTemperature {
		t.Errorf("merge clobbered temperature: got %v", cfg.Model.Temperature)
	}
	if cfg.Store.Dir != "verse" {
		t.Errorf("got store dir %q, want %q", cfg.Store.Dir, "verse")
	}
}

func TestConfig_Merge_EmptySource(t *testing.T) {
	cfg := compose.DefaultConfig()
	cfg.Merge(&compose.Config{})

	if cfg.Generator != compose.DefaultGenerator {
		t.Errorf("empty merge changed generator: got %q", cfg.Generator)
	}
	if cfg.Model.Name != model.DefaultModel {
		t.Errorf("empty merge changed model: got %q", cfg.Model.Name)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"generator": "syllables:7", "model": {"name": "local", "base_url": "http://localhost:8080/v1"}, "store": {"dir": "verse"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	cfg, err := compose.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Generator != "syllables:7" {
		t.Errorf("got generator %q, want %q", cfg.Generator, "syllables:7")
	}
	if cfg.Model.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("got base url %q", cfg.Model.BaseURL)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Model.Temperature != model.DefaultTemperature {
		t.Errorf("got temperature %v, want default", cfg.Model.Temperature)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := compose.LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if _, err := compose.LoadConfig(path); err == nil {
		t.Error("expected an error for a malformed config file")
	}
}
