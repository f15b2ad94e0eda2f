package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ProviderConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model"`
}

// PipelineConfig tunes the two model stages.
type PipelineConfig struct {
	// Mode is the perception mode: conservative or demo_mock.
	Mode string `yaml:"mode"`
	// ContextNotes describe the home setup / devices / scenario.
	ContextNotes string `yaml:"context_notes,omitempty"`
}

type Config struct {
	Pipeline        PipelineConfig            `yaml:"pipeline"`
	Providers       map[string]ProviderConfig `yaml:"providers,omitempty"`
	DefaultProvider string                    `yaml:"default_provider,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Mode: ModeConservative,
		},
		Providers: make(map[string]ProviderConfig),
	}
}

func LoadConfig(scope Scope) (*Config, error) {
	path := scope.ConfigPath()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	if cfg.Pipeline.Mode == "" {
		cfg.Pipeline.Mode = ModeConservative
	}

	return &cfg, nil
}

func SaveConfig(scope Scope, cfg *Config) error {
	path := scope.ConfigPath()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// DefaultProviderConfig resolves the configured default provider, falling
// back to OPENAI_API_KEY from the environment when nothing is configured.
func (c *Config) DefaultProviderConfig() (FantasyConfig, error) {
	if c.DefaultProvider != "" {
		pc, ok := c.Providers[c.DefaultProvider]
		if !ok {
			return FantasyConfig{}, fmt.Errorf("default provider %q not configured", c.DefaultProvider)
		}
		return FantasyConfig{
			Provider: c.DefaultProvider,
			APIKey:   pc.APIKey,
			BaseURL:  pc.BaseURL,
			Model:    pc.Model,
		}, nil
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return FantasyConfig{Provider: "openai", APIKey: key, Model: "gpt-4o-mini"}, nil
	}

	return FantasyConfig{}, fmt.Errorf("no provider configured (run 'halo provider add' or set OPENAI_API_KEY)")
}
