package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Client   ClientConfig   `mapstructure:"client"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path   string `mapstructure:"path"`
	Driver string `mapstructure:"driver"`
}

// ServerConfig holds the task store RPC listener settings.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// ClientConfig holds settings for reaching a remote task store.
// An empty Endpoint means the client opens the local database directly.
type ClientConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string `mapstructure:"title"`
}

// Remote reports whether the client should use the RPC endpoint.
func (c Config) Remote() bool {
	return strings.TrimSpace(c.Client.Endpoint) != ""
}

// Load reads configuration from file and env. Env var overrides use prefix ICBUTLER_.
func Load() (Config, error) {
	return LoadFrom(os.Getenv("ICBUTLER_CONFIG"))
}

// LoadFrom is Load with an explicit config file. An empty path searches the
// default location, where a missing file is not an error.
func LoadFrom(cfgPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "icbutler"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ICBUTLER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "icbutler")
	v.SetDefault("database.path", filepath.Join(dataDir, "icbutler.db"))
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("server.listen", "127.0.0.1:8480")
	v.SetDefault("client.endpoint", "")
	v.SetDefault("client.timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.path", filepath.Join(dataDir, "icbutler.log"))
	v.SetDefault("ui.title", "ICButler")
}

// DefaultPath is where Load looks for the config file when ICBUTLER_CONFIG is unset.
func DefaultPath() string {
	if p := os.Getenv("ICBUTLER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "icbutler", "config.toml")
}

// Save writes the provided config to DefaultPath.
func Save(cfg Config) error {
	return SaveTo(DefaultPath(), cfg)
}

// SaveTo writes the provided config to path, creating the directory if needed.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.driver", cfg.Database.Driver)
	v.Set("server.listen", cfg.Server.Listen)
	v.Set("client.endpoint", cfg.Client.Endpoint)
	v.Set("client.timeout", cfg.Client.Timeout.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.path", cfg.Log.Path)
	v.Set("ui.title", cfg.UI.Title)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
