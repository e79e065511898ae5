package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultPassphrase is used when no passphrase is configured. Real
// deployments must override it.
const DefaultPassphrase = "<Your-Key-Passphrase>"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Pass   PassConfig   `mapstructure:"pass"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PassConfig locates the signing material and the pass template.
type PassConfig struct {
	CertsDir      string `mapstructure:"certs_dir"`
	CertFile      string `mapstructure:"cert_file"`
	KeyFile       string `mapstructure:"key_file"`
	WWDRFile      string `mapstructure:"wwdr_file"`
	KeyPassphrase string `mapstructure:"key_passphrase"`
	TemplateDir   string `mapstructure:"template_dir"`
}

// CertPath returns the signer certificate path.
func (p PassConfig) CertPath() string {
	return filepath.Join(p.CertsDir, p.CertFile)
}

// KeyPath returns the signer private key path.
func (p PassConfig) KeyPath() string {
	return filepath.Join(p.CertsDir, p.KeyFile)
}

// WWDRPath returns the Apple WWDR intermediate certificate path.
func (p PassConfig) WWDRPath() string {
	return filepath.Join(p.CertsDir, p.WWDRFile)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LPS_ (Loyalty Pass Service).
// Nested keys use underscore: LPS_SERVER_PORT, LPS_PASS_CERTS_DIR, etc.
// PORT and PASSKEY_PASSPHRASE are honoured as well.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("pass.certs_dir", "certs")
	v.SetDefault("pass.cert_file", "pass.pem")
	v.SetDefault("pass.key_file", "pass.key")
	v.SetDefault("pass.wwdr_file", "wwdr.pem")
	v.SetDefault("pass.key_passphrase", DefaultPassphrase)
	v.SetDefault("pass.template_dir", filepath.Join("passTemplate", "loyalty.pass"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LPS_PASS_CERTS_DIR -> pass.certs_dir
	v.SetEnvPrefix("LPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit bindings replace the automatic one, so the prefixed name is listed first.
	if err := v.BindEnv("server.port", "LPS_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("binding PORT: %w", err)
	}
	if err := v.BindEnv("pass.key_passphrase", "LPS_PASS_KEY_PASSPHRASE", "PASSKEY_PASSPHRASE"); err != nil {
		return nil, fmt.Errorf("binding PASSKEY_PASSPHRASE: %w", err)
	}

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid server.mode %q", cfg.Server.Mode)
	}

	return &cfg, nil
}
