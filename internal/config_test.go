package internal

import "testing"

func TestConfigRoundTrip(t *testing.T) {
	scope := testScope(t)

	cfg := DefaultConfig()
	cfg.Pipeline.Mode = ModeDemoMock
	cfg.Pipeline.ContextNotes = "studio apartment, one smartwatch"
	cfg.Providers["openai"] = ProviderConfig{APIKey: "sk-test", Model: "gpt-4o-mini"}
	cfg.DefaultProvider = "openai"

	if err := SaveConfig(scope, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadConfig(scope)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Pipeline.Mode != ModeDemoMock {
		t.Errorf("mode = %q, want %q", loaded.Pipeline.Mode, ModeDemoMock)
	}
	if loaded.Pipeline.ContextNotes != cfg.Pipeline.ContextNotes {
		t.Errorf("context notes = %q", loaded.Pipeline.ContextNotes)
	}
	if loaded.Providers["openai"].Model != "gpt-4o-mini" {
		t.Errorf("provider model = %q", loaded.Providers["openai"].Model)
	}
	if loaded.DefaultProvider != "openai" {
		t.Errorf("default provider = %q", loaded.DefaultProvider)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(testScope(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Pipeline.Mode != ModeConservative {
		t.Errorf("mode = %q, want conservative default", cfg.Pipeline.Mode)
	}
	if cfg.Providers == nil {
		t.Error("providers map is nil")
	}
}

func TestDefaultProviderConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Providers["anthropic"] = ProviderConfig{APIKey: "key", Model: "claude"}
	cfg.DefaultProvider = "anthropic"

	fc, err := cfg.DefaultProviderConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if fc.Provider != "anthropic" || fc.Model != "claude" {
		t.Errorf("resolved = %+v", fc)
	}
}

func TestDefaultProviderConfigEnvFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg := DefaultConfig()
	fc, err := cfg.DefaultProviderConfig()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if fc.Provider != "openai" || fc.APIKey != "sk-env" {
		t.Errorf("resolved = %+v", fc)
	}
}

func TestDefaultProviderConfigNoneConfigured(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := DefaultConfig()
	if _, err := cfg.DefaultProviderConfig(); err == nil {
		t.Error("expected error with no provider configured")
	}
}

func TestDefaultProviderConfigUnknownName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultProvider = "missing"

	if _, err := cfg.DefaultProviderConfig(); err == nil {
		t.Error("expected error for unconfigured default provider")
	}
}
