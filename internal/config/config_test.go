package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"basic_config": {
			"server_address": ":3000",
			"upload_dir": "./uploads",
			"provider_timeout": 30
		},
		"providers": {
			"claude": {"model": "claude-3-5-sonnet-20241022", "api_key": "sk-file", "max_tokens": 1024}
		}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasicConfig.DefaultProvider != "claude" {
		t.Fatalf("expected claude as default provider, got %q", cfg.BasicConfig.DefaultProvider)
	}
	prov := cfg.Providers["claude"]
	if prov.Model != "claude-3-5-sonnet-20241022" || prov.APIKey != "sk-file" || prov.MaxTokens != 1024 {
		t.Fatalf("provider config mismatch: %+v", prov)
	}
	if cfg.BasicConfig.ProviderTimeout != 30 {
		t.Fatalf("provider timeout mismatch: %d", cfg.BasicConfig.ProviderTimeout)
	}
}

func TestLoadEnvOverridesAPIKey(t *testing.T) {
	path := writeConfig(t, `{"providers": {"claude": {"model": "claude-3-5-sonnet-20241022"}}}`)
	t.Setenv("CLAUDE_API_KEY", "sk-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Providers["claude"].APIKey != "sk-env" {
		t.Fatalf("expected api key from environment, got %q", cfg.Providers["claude"].APIKey)
	}
}

func TestLoadRejectsEmptyProviders(t *testing.T) {
	path := writeConfig(t, `{"basic_config": {"server_address": ":3000"}}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error when no providers configured")
	}
}

func TestLoadRejectsUnknownDefaultProvider(t *testing.T) {
	path := writeConfig(t, `{
		"basic_config": {"default_provider": "openai"},
		"providers": {"claude": {"model": "claude-3-5-sonnet-20241022"}}
	}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for default provider without a providers entry")
	}
}
