// Package config resolves coursedeck settings from flags, environment, and an optional
// config file.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable (COURSEDECK_API_URL, ...).
const EnvPrefix = "COURSEDECK"

// Keys.
const (
	KeyAPIURL         = "api-url"
	KeySessionFile    = "session-file"
	KeyLogFile        = "log-file"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
	KeyRequestTimeout = "request-timeout"
	KeyToastDuration  = "toast-duration"
)

// Defaults.
const (
	DefaultAPIURL        = "http://localhost:5000/api"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
	DefaultToastDuration = 4 * time.Second
)

// Config is the resolved configuration.
type Config struct {
	APIURL         string
	SessionFile    string // empty = session package default
	LogFile        string // empty = discard
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration // 0 = no timeout
	ToastDuration  time.Duration
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyAPIURL, DefaultAPIURL, "base URL of the course service")
	fs.String(KeySessionFile, "", "session file with userRole and token (default ~/.coursedeck/session.yaml)")
	fs.String(KeyLogFile, "", "write logs to this file (default: no logs)")
	fs.String(KeyLogLevel, DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String(KeyLogFormat, DefaultLogFormat, "log format: json or text")
	fs.Duration(KeyRequestTimeout, 0, "per-request timeout for the course service (0 = none)")
	fs.Duration(KeyToastDuration, DefaultToastDuration, "how long notifications stay on screen")
}

// NewViper returns a viper instance bound to the COURSEDECK_ environment and to fs.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAPIURL, DefaultAPIURL)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyRequestTimeout, time.Duration(0))
	v.SetDefault(KeyToastDuration, DefaultToastDuration)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	return v, nil
}

// ReadFile merges a YAML/TOML/JSON config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Load resolves a Config from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		APIURL:         strings.TrimSpace(v.GetString(KeyAPIURL)),
		SessionFile:    v.GetString(KeySessionFile),
		LogFile:        v.GetString(KeyLogFile),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		ToastDuration:  v.GetDuration(KeyToastDuration),
	}
	if cfg.APIURL == "" {
		return Config{}, fmt.Errorf("%s must not be empty", KeyAPIURL)
	}
	if !strings.HasPrefix(cfg.APIURL, "http://") && !strings.HasPrefix(cfg.APIURL, "https://") {
		return Config{}, fmt.Errorf("%s must be an http(s) URL, got %q", KeyAPIURL, cfg.APIURL)
	}
	if cfg.RequestTimeout < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", KeyRequestTimeout)
	}
	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = DefaultToastDuration
	}
	return cfg, nil
}
