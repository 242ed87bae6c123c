package config

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Time sources used to decide which clock the forecast is aligned against
const (
	TimeSourceLocal    = "local"
	TimeSourceLocation = "location"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Providers ProvidersConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         int
	GinMode      string   // debug, release, test
	AllowOrigins []string // CORS origins, "*" allows any
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Count        int    // Number of forecast entries to display
	ConsoleWidth int    // Width of a rendered forecast block
	Prompt       bool   // Wait for input after printing
	TimeSource   string // local, location
}

// ProvidersConfig holds upstream API configuration
type ProvidersConfig struct {
	GeolocationURL     string
	ForecastURL        string
	Timeout            time.Duration // 0 means no timeout
	InsecureSkipVerify bool
}

// flagKeys maps command line flags onto configuration keys
var flagKeys = map[string]string{
	"config":      "",
	"no-prompt":   "",
	"time-source": "app.timesource",
	"width":       "app.consolewidth",
	"timeout":     "providers.timeout",
	"port":        "server.port",
	"log-level":   "log.level",
}

// Load reads configuration from file, environment variables and the given flags.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.ipweather")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.alloworigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.count", 1)
	v.SetDefault("app.consolewidth", 80)
	v.SetDefault("app.prompt", true)
	v.SetDefault("app.timesource", TimeSourceLocal)
	v.SetDefault("providers.geolocationurl", "https://ipinfo.io/json")
	v.SetDefault("providers.forecasturl", "https://www.7timer.info/bin/civil.php")
	v.SetDefault("providers.timeout", "0s")
	v.SetDefault("providers.insecureskipverify", false)

	// Read from environment variables
	v.SetEnvPrefix("IPWEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		switch name {
		case "config":
			if f.Changed {
				v.SetConfigFile(f.Value.String())
			}
		case "no-prompt":
			if f.Changed && f.Value.String() == "true" {
				v.Set("app.prompt", false)
			}
		default:
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode %q: want debug, release or test", c.Server.GinMode)
	}
	switch c.App.TimeSource {
	case TimeSourceLocal, TimeSourceLocation:
	default:
		return fmt.Errorf("invalid time source %q: want %q or %q", c.App.TimeSource, TimeSourceLocal, TimeSourceLocation)
	}
	if c.App.ConsoleWidth <= 0 {
		return fmt.Errorf("invalid console width %d", c.App.ConsoleWidth)
	}
	if c.Providers.Timeout < 0 {
		return fmt.Errorf("invalid provider timeout %s", c.Providers.Timeout)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewHTTPClient creates the HTTP client shared by the upstream providers
func (c *Config) NewHTTPClient() *http.Client {
	client := &http.Client{Timeout: c.Providers.Timeout}
	if c.Providers.InsecureSkipVerify {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for upstreams with expired certificates
		client.Transport = transport
	}
	return client
}

// NewLogger creates a new slog.Logger based on the configuration.
// Logs go to stderr, stdout carries the forecast.
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stderr)
}

func (c *Config) newLogger(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
