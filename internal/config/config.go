package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Validate when no completion credential is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set; add it to your .env file or the platform environment")

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Chat   ChatConfig   `mapstructure:"chat"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
	// Platform is set by a hosting platform that owns the listener (VERCEL).
	Platform string `mapstructure:"platform"`
}

type OpenAIConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	DebugRequest bool          `mapstructure:"debug_request"`
}

type ChatConfig struct {
	// HistoryLimit keeps only the most recent N history entries; N <= 0 keeps all.
	HistoryLimit int `mapstructure:"history_limit"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envBindings maps config keys to the environment variables the service has always read.
var envBindings = map[string][]string{
	"openai.api_key":       {"OPENAI_API_KEY"},
	"openai.base_url":      {"OPENAI_BASE_URL"},
	"chat.history_limit":   {"CHAT_HISTORY_LIMIT"},
	"server.port":          {"PORT"},
	"server.platform":      {"VERCEL"},
	"log.level":            {"LOG_LEVEL"},
	"log.format":           {"LOG_FORMAT"},
	"openai.debug_request": {"OPENAI_DEBUG_REQUEST"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 30*time.Second)
	// must outlast openai.timeout so the error envelope can still be written
	v.SetDefault("server.write_timeout", 75*time.Second)
	v.SetDefault("server.max_header_bytes", 1<<20)
	v.SetDefault("server.platform", "")

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.timeout", 60*time.Second)
	v.SetDefault("openai.debug_request", false)

	v.SetDefault("chat.history_limit", 12)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads .env (if present), the optional YAML file at configPath and the
// environment, in increasing order of precedence. It does not validate.
func Load(configPath string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix("CHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate reports configuration that would make every chat request fail.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Hosted reports whether a hosting platform provides the network listener.
func (c *Config) Hosted() bool {
	return c.Server.Platform != ""
}
