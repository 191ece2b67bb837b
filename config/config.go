package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all configuration for the debate team system.
type Config struct {
	// Model settings
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	Model        string `mapstructure:"debate_model"`

	// Debate settings
	MaxExchanges int `mapstructure:"debate_max_exchanges"`

	// Dev server settings
	ServerAddress string `mapstructure:"server_address"`
	SessionDB     string `mapstructure:"session_db"`

	// Deployment settings
	EngineEndpoint string `mapstructure:"agent_engine_endpoint"`
	EngineToken    string `mapstructure:"agent_engine_token"`
	ProjectID      string `mapstructure:"google_cloud_project"`
	Location       string `mapstructure:"google_cloud_location"`
	Bucket         string `mapstructure:"google_cloud_storage_bucket"`

	// Logging
	LogLevel string `mapstructure:"log_level"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Model:         "gpt-4o-mini",
		MaxExchanges:  8,
		ServerAddress: ":8080",
		SessionDB:     "debate_sessions.db",
		LogLevel:      "info",
	}
}

// Load reads configuration from the environment, with an optional .env file
// in the working directory providing defaults for unset variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("debate_model", "gpt-4o-mini")
	v.SetDefault("debate_max_exchanges", 8)
	v.SetDefault("server_address", ":8080")
	v.SetDefault("session_db", "debate_sessions.db")
	v.SetDefault("log_level", "info")

	// Variables are read with their raw names (OPENAI_API_KEY, GOOGLE_CLOUD_PROJECT, ...)
	// to keep the deployment contract compatible with existing environments.
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{
		"openai_api_key",
		"debate_model",
		"debate_max_exchanges",
		"server_address",
		"session_db",
		"agent_engine_endpoint",
		"agent_engine_token",
		"google_cloud_project",
		"google_cloud_location",
		"google_cloud_storage_bucket",
		"log_level",
	} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration needed to run the dev server.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("missing required environment variable: OPENAI_API_KEY")
	}
	if c.Model == "" {
		return fmt.Errorf("debate model cannot be empty")
	}
	if c.MaxExchanges < 0 {
		return fmt.Errorf("debate max exchanges cannot be negative")
	}
	return nil
}

// ValidateDeployment checks the configuration needed by the deployment CLI.
// Each missing variable is reported individually so the operator can fix
// their environment one step at a time.
func (c *Config) ValidateDeployment() error {
	if c.ProjectID == "" {
		return fmt.Errorf("missing required environment variable: GOOGLE_CLOUD_PROJECT")
	}
	if c.Location == "" {
		return fmt.Errorf("missing required environment variable: GOOGLE_CLOUD_LOCATION")
	}
	if c.Bucket == "" {
		return fmt.Errorf("missing required environment variable: GOOGLE_CLOUD_STORAGE_BUCKET")
	}
	return nil
}

// StagingBucketURI returns the bucket in gs:// form, as expected by the
// agent engine service.
func (c *Config) StagingBucketURI() string {
	if c.Bucket == "" {
		return ""
	}
	if strings.HasPrefix(c.Bucket, "gs://") {
		return c.Bucket
	}
	return "gs://" + c.Bucket
}
