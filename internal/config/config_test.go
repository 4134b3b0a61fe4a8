package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, env := range envs {
			t.Setenv(env, "")
			os.Unsetenv(env)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Expected port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Chat.HistoryLimit != 12 {
		t.Errorf("Expected history limit 12, got %d", cfg.Chat.HistoryLimit)
	}
	if cfg.OpenAI.Timeout != 60*time.Second {
		t.Errorf("Expected openai timeout 60s, got %v", cfg.OpenAI.Timeout)
	}
	if cfg.Server.WriteTimeout <= cfg.OpenAI.Timeout {
		t.Errorf("Expected write timeout %v to exceed upstream timeout %v", cfg.Server.WriteTimeout, cfg.OpenAI.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected log level info, got %q", cfg.Log.Level)
	}
	if cfg.Hosted() {
		t.Error("Expected Hosted() to be false without VERCEL")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CHAT_HISTORY_LIMIT", "4")
	t.Setenv("PORT", "9090")
	t.Setenv("VERCEL", "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("Expected api key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.Chat.HistoryLimit != 4 {
		t.Errorf("Expected history limit 4, got %d", cfg.Chat.HistoryLimit)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if !cfg.Hosted() {
		t.Error("Expected Hosted() to be true when VERCEL is set")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 8123\nchat:\n  history_limit: 0\nlog:\n  format: json\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 8123 {
		t.Errorf("Expected port 8123 from file, got %d", cfg.Server.Port)
	}
	if cfg.Chat.HistoryLimit != 0 {
		t.Errorf("Expected history limit 0 from file, got %d", cfg.Chat.HistoryLimit)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected log format json, got %q", cfg.Log.Format)
	}
}

func TestLoad_MissingConfigFileIsIgnored(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("Expected missing config file to be ignored, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid", Config{Server: ServerConfig{Port: 8000}, OpenAI: OpenAIConfig{APIKey: "sk"}}, nil},
		{"missing api key", Config{Server: ServerConfig{Port: 8000}}, ErrMissingAPIKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	bad := Config{Server: ServerConfig{Port: 0}, OpenAI: OpenAIConfig{APIKey: "sk"}}
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for port 0")
	}
}
