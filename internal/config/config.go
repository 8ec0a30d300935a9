// Package config loads the AutoDinar service configuration from a YAML
// file, with environment variables as fallback for secrets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPort is used when neither the config file nor flags set one.
const DefaultPort = 8410

// Webhook configures outbound event delivery.
type Webhook struct {
	URL    string `yaml:"url"`
	Secret string `yaml:"secret,omitempty"`
}

// Gemini configures the recommendation model client.
type Gemini struct {
	APIKey string `yaml:"api_key,omitempty"`
	Model  string `yaml:"model,omitempty"`
}

// Config represents the contents of the service config file.
type Config struct {
	Port              int     `yaml:"port"`
	MinMonthlyPayment int64   `yaml:"min_monthly_payment"` // in dinars
	SeedDemo          bool    `yaml:"seed_demo"`
	Webhook           Webhook `yaml:"webhook"`
	Gemini            Gemini  `yaml:"gemini"`
}

func defaultConfig() *Config {
	return &Config{
		Port:              DefaultPort,
		MinMonthlyPayment: 1000,
		Gemini: Gemini{
			Model: "gemini-2.0-flash",
		},
	}
}

// LoadFrom reads the config from path. Returns a default config if the
// file doesn't exist or path is empty.
func LoadFrom(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		applyEnv(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.MinMonthlyPayment == 0 {
		cfg.MinMonthlyPayment = 1000
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash"
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv fills secrets from the environment when the file leaves
// them empty.
func applyEnv(cfg *Config) {
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Webhook.Secret == "" {
		cfg.Webhook.Secret = os.Getenv("AUTODINAR_WEBHOOK_SECRET")
	}
}
