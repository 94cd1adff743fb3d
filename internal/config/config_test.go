package config

import (
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if cfg.Provider != want.Provider {
		t.Errorf("provider = %q, want %q", cfg.Provider, want.Provider)
	}
	if cfg.MaxInFlight != want.MaxInFlight {
		t.Errorf("max in flight = %d, want %d", cfg.MaxInFlight, want.MaxInFlight)
	}
	if cfg.LookBack != want.LookBack {
		t.Errorf("look back = %d, want %d", cfg.LookBack, want.LookBack)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Provider = "anthropic"
	cfg.Model = "claude-haiku"
	cfg.Keys = map[string]string{"anthropic": "sk-test"}
	cfg.ExtraLogPaths = []string{"/tmp/logs"}
	cfg.MaxInFlight = 5
	cfg.MinContentSize = 128
	cfg.WriteArtifacts = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Provider != "anthropic" || got.Model != "claude-haiku" {
		t.Errorf("provider/model lost: %q %q", got.Provider, got.Model)
	}
	if got.Keys["anthropic"] != "sk-test" {
		t.Errorf("credential lost: %v", got.Keys)
	}
	if len(got.ExtraLogPaths) != 1 || got.ExtraLogPaths[0] != "/tmp/logs" {
		t.Errorf("log paths lost: %v", got.ExtraLogPaths)
	}
	if got.MaxInFlight != 5 {
		t.Errorf("max in flight = %d, want 5", got.MaxInFlight)
	}
	if got.MinContentSize != 128 {
		t.Errorf("min content size = %d, want 128", got.MinContentSize)
	}
	if !got.WriteArtifacts {
		t.Error("write artifacts flag lost")
	}
}

func TestSetKey(t *testing.T) {
	cfg := Default()
	cfg.Provider = "openai"

	if err := cfg.SetKey("sk-abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Keys["openai"] != "sk-abc" {
		t.Errorf("key not stored: %v", cfg.Keys)
	}

	if err := cfg.SetKey(""); err == nil {
		t.Error("expected error for empty value")
	}

	cfg.Provider = "mock"
	if err := cfg.SetKey("sk-abc"); err == nil {
		t.Error("expected error for mock provider")
	}
}

func TestLLMConfig_Overlay(t *testing.T) {
	cfg := Default()
	cfg.Provider = "gemini"
	cfg.Model = "gemini-pro"
	cfg.Keys = map[string]string{"gemini": "gk-1", "openai": "sk-1"}

	lcfg := cfg.LLMConfig()
	if lcfg.Provider != "gemini" {
		t.Errorf("provider = %q", lcfg.Provider)
	}
	if lcfg.Gemini.APIKey != "gk-1" {
		t.Errorf("gemini key = %q", lcfg.Gemini.APIKey)
	}
	if lcfg.Gemini.Model != "gemini-pro" {
		t.Errorf("model overlay missed: %q", lcfg.Gemini.Model)
	}
	if lcfg.OpenAI.APIKey != "sk-1" {
		t.Errorf("other keys should still be carried: %q", lcfg.OpenAI.APIKey)
	}
}

func TestDerivedConfigs(t *testing.T) {
	cfg := Default()
	cfg.MaxInFlight = 7
	cfg.MaxAttempts = 4
	cfg.LookBack = 9

	if got := cfg.PipelineConfig().MaxInFlight; got != 7 {
		t.Errorf("pipeline max in flight = %d, want 7", got)
	}
	if got := cfg.PipelineConfig().MaxAttempts; got != 4 {
		t.Errorf("pipeline max attempts = %d, want 4", got)
	}
	if got := cfg.ExtractorConfig().LookBack; got != 9 {
		t.Errorf("extractor look back = %d, want 9", got)
	}

	// Zero values fall back to defaults rather than disabling work.
	cfg = Config{}
	if got := cfg.PipelineConfig().MaxInFlight; got <= 0 {
		t.Errorf("expected default max in flight, got %d", got)
	}
}
