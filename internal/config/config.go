package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents runtime configuration for the service.
type Config struct {
	BasicConfig BasicConfig               `json:"basic_config"`
	Providers   map[string]ProviderConfig `json:"providers"`
}

type ProviderConfig struct {
	BaseURL   string `json:"base_url"`
	Model     string `json:"model"`
	APIKey    string `json:"api_key"`
	MaxTokens int    `json:"max_tokens"`
}

type BasicConfig struct {
	ServerAddress string `json:"server_address"`
	UploadDir     string `json:"upload_dir"`
	// MaxUploadBytes caps one uploaded PDF; 0 means the 10 MB default.
	MaxUploadBytes int64 `json:"max_upload_bytes"`
	// DefaultProvider selects which providers entry answers requests.
	DefaultProvider string `json:"default_provider"`
	// ProviderTimeout bounds one completion call, in seconds.
	ProviderTimeout int `json:"provider_timeout"`
	// TempFileTTL and TempCleanInterval drive the upload-dir sweeper, in minutes.
	TempFileTTL       int `json:"temp_file_ttl"`
	TempCleanInterval int `json:"temp_clean_interval"`
}

// Load reads configuration from the provided path (defaults to config.json)
// and applies environment overrides for provider API keys.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if len(cfg.Providers) == 0 {
		return nil, fmt.Errorf("at least one provider must be configured")
	}

	cfg.applyEnv()

	if cfg.BasicConfig.DefaultProvider == "" {
		cfg.BasicConfig.DefaultProvider = "claude"
	}
	if _, ok := cfg.Providers[cfg.BasicConfig.DefaultProvider]; !ok {
		return nil, fmt.Errorf("default provider %s not configured", cfg.BasicConfig.DefaultProvider)
	}

	return &cfg, nil
}

// applyEnv lets the API key for provider "claude" come from CLAUDE_API_KEY
// (and so on per provider) so keys stay out of the config file.
func (c *Config) applyEnv() {
	for name, prov := range c.Providers {
		envKey := strings.ToUpper(name) + "_API_KEY"
		if v := os.Getenv(envKey); v != "" {
			prov.APIKey = v
			c.Providers[name] = prov
		}
	}
}
