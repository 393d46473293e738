package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server and client configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Client    ClientConfig    `yaml:"client"`
	MCP       MCPConfig       `yaml:"mcp"`
}

type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DBConfig struct {
	Path string `yaml:"path"`
	Seed bool   `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type AuthConfig struct {
	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	AllowSignUp   bool          `yaml:"allow_signup"`
	SecureCookie  bool          `yaml:"secure_cookie"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string `yaml:"base_url"`
}

// RateLimitConfig caps anonymous writes per client IP. Zero disables a limit.
type RateLimitConfig struct {
	ContactPerMinute int `yaml:"contact_per_minute"`
	ChatPerMinute    int `yaml:"chat_per_minute"`
	Burst            int `yaml:"burst"`
}

type ClientConfig struct {
	APIURL         string        `yaml:"api_url"`
	Timeout        time.Duration `yaml:"timeout"`
	ChatMaxHistory int           `yaml:"chat_max_history"`
}

type MCPConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           4000,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		DB: DBConfig{
			Path: "data/portfolio.db",
			Seed: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Auth: AuthConfig{
			SessionTTL:  7 * 24 * time.Hour,
			AllowSignUp: true,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		RateLimit: RateLimitConfig{
			ContactPerMinute: 5,
			ChatPerMinute:    20,
			Burst:            3,
		},
		Client: ClientConfig{
			APIURL:  "http://localhost:4000/api",
			Timeout: 30 * time.Second,
		},
		MCP: MCPConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("FOLIO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("FOLIO_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("FOLIO_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid FOLIO_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if origins := os.Getenv("FOLIO_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = splitList(origins)
	}
	if dbPath := os.Getenv("FOLIO_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("FOLIO_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if secret := os.Getenv("FOLIO_SESSION_SECRET"); secret != "" {
		cfg.Auth.SessionSecret = secret
	}
	if v := os.Getenv("FOLIO_ALLOW_SIGNUP"); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid FOLIO_ALLOW_SIGNUP: %w", err)
		}
		cfg.Auth.AllowSignUp = allow
	}
	// API_KEY is accepted for parity with existing deployments.
	if key := os.Getenv("API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if apiURL := os.Getenv("FOLIO_API_URL"); apiURL != "" {
		cfg.Client.APIURL = apiURL
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
