package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Collaborators
	Axle   AxleConfig
	Gemini GeminiConfig

	Chat ChatConfig
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

// AxleConfig points at the upstream freight transaction API.
type AxleConfig struct {
	BaseURL     string
	BearerToken string
	Timeout     time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ChatConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Axle.BaseURL = viper.GetString("axle.base_url")
	cfg.Axle.BearerToken = viper.GetString("axle.bearer_token")
	cfg.Axle.Timeout = viper.GetDuration("axle.timeout")
	// Env aliases kept for compatibility with the original proxy deployment.
	if v := viper.GetString("axle_uat_base_url"); v != "" {
		cfg.Axle.BaseURL = v
	}
	if v := viper.GetString("axle_bearer_token"); v != "" {
		cfg.Axle.BearerToken = v
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if v := viper.GetString("gemini_api_key"); v != "" {
		cfg.Gemini.APIKey = v
	}

	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	if cfg.Axle.BaseURL == "" {
		return nil, fmt.Errorf("axle.base_url is required (or set AXLE_UAT_BASE_URL)")
	}
	if cfg.Axle.BearerToken == "" {
		return nil, fmt.Errorf("axle.bearer_token is required (or set AXLE_BEARER_TOKEN)")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8787)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("axle.timeout", "30s")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
