package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Per-category display settings are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
	Defaults   DefaultsConfig   `yaml:"defaults"`
}

// CategoryConfig defines how a category is labeled in the nav and on badges.
type CategoryConfig struct {
	Name  string `yaml:"name"`  // Category value as it appears in the articles
	Label string `yaml:"label"` // Display label, defaults to Name
	Badge string `yaml:"badge"` // Badge CSS class, e.g. "bg-success"
}

// DefaultsConfig defines default display settings.
type DefaultsConfig struct {
	Badge string `yaml:"badge"` // Badge class for categories without their own
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Defaults.Badge == "" {
		cfg.Defaults.Badge = "bg-primary"
	}
	for i := range cfg.Categories {
		if cfg.Categories[i].Label == "" {
			cfg.Categories[i].Label = cfg.Categories[i].Name
		}
		if cfg.Categories[i].Badge == "" {
			cfg.Categories[i].Badge = cfg.Defaults.Badge
		}
	}

	return &cfg, nil
}
