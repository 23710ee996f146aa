package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	LLM   LLMConfig   `mapstructure:"llm"`
	UI    UIConfig    `mapstructure:"ui"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	// Driver is "memory" (seeded demo data) or "sqlite".
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// LLMConfig holds text-generation provider settings.
type LLMConfig struct {
	// Provider is "gemini", "openai" or "static" (offline fallback only).
	Provider  string `mapstructure:"provider"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string `mapstructure:"timezone"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix PACKTRACK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "packtrack", "packtrack.db"))
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("ui.date_format", "02/01/2006")
	v.SetDefault("ui.timezone", "Asia/Jerusalem")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PACKTRACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "packtrack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PACKTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// ResolveAPIKey resolves the provider key: the named env var first,
// then the config file value.
func (c Config) ResolveAPIKey() string {
	env := strings.TrimSpace(c.LLM.APIKeyEnv)
	if env == "" {
		if strings.EqualFold(c.LLM.Provider, "openai") {
			env = "OPENAI_API_KEY"
		} else {
			env = "GEMINI_API_KEY"
		}
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return strings.TrimSpace(c.LLM.APIKey)
}

// Save writes the provided config to disk, creating the config
// directory if needed. The API key is stored in plain text; prefer
// env vars for real keys.
func Save(cfg Config) error {
	path := os.Getenv("PACKTRACK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "packtrack", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("store.driver", cfg.Store.Driver)
	v.Set("store.path", cfg.Store.Path)
	v.Set("llm.provider", cfg.LLM.Provider)
	v.Set("llm.api_key_env", cfg.LLM.APIKeyEnv)
	v.Set("llm.api_key", cfg.LLM.APIKey)
	v.Set("llm.model", cfg.LLM.Model)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
