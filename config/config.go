package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Checklist gate
	GitHub    GitHubConfig
	Checklist ChecklistConfig
	Cache     CacheConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GitHubConfig struct {
	APIURL string
	Token  string
}

// ChecklistConfig holds the default evaluation options used by the server.
type ChecklistConfig struct {
	RequireChecklist          bool
	SkipComments              bool
	SkipDescriptionRegex      string
	SkipDescriptionRegexFlags string
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/checklist/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/checklist/")

	return load(v)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// GitHub
	cfg.GitHub.APIURL = v.GetString("github.api_url")
	cfg.GitHub.Token = expandEnvVar(v, v.GetString("github.token"))
	if token := v.GetString("github_token"); token != "" && cfg.GitHub.Token == "" {
		cfg.GitHub.Token = token
	}

	// Checklist defaults
	cfg.Checklist.RequireChecklist = v.GetBool("checklist.require_checklist")
	cfg.Checklist.SkipComments = v.GetBool("checklist.skip_comments")
	cfg.Checklist.SkipDescriptionRegex = v.GetString("checklist.skip_description_regex")
	cfg.Checklist.SkipDescriptionRegexFlags = v.GetString("checklist.skip_description_regex_flags")

	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")

	// Webhooks
	cfg.Webhook.Enabled = v.GetBool("webhook.enabled")
	cfg.Webhook.Secret = expandEnvVar(v, v.GetString("webhook.secret"))
	if webhookSecret := v.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(v.GetStringSlice("webhook.allowed_ips"))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("github.api_url", "https://api.github.com")
	v.SetDefault("checklist.require_checklist", true)
	v.SetDefault("checklist.skip_comments", false)
	v.SetDefault("cache.size", 512)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("webhook.rate_limit_per_min", 60)
	v.SetDefault("webhook.enabled", true)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port)
	}
	if cfg.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative")
	}
	return nil
}

// splitList flattens comma separated entries, since env values arrive as one
// string.
func splitList(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, item := range strings.Split(entry, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
