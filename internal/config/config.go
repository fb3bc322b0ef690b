// Package config resolves runtime settings from flags and XERCESDIST_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable
const EnvPrefix = "XERCESDIST"

// Configuration keys
const (
	KeyOS        = "os"
	KeyArch      = "arch"
	KeyTable     = "table"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// EnvKeyReplacer maps configuration keys to environment variable names
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Defaults for every key; empty OS and Arch mean "detect the host"
var Defaults = map[string]string{
	KeyOS:        "",
	KeyArch:      "",
	KeyTable:     "",
	KeyLogLevel:  "warn",
	KeyLogFormat: "text",
}

// Config is the resolved runtime configuration
type Config struct {
	OS        string
	Arch      string
	TableFile string
	LogLevel  string
	LogFormat string
}

// New returns a viper instance with defaults and environment bindings in place
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)

	for key, value := range Defaults {
		v.SetDefault(key, value)
		v.MustBindEnv(key)
	}

	return v
}

// EnvName returns the environment variable read for key
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(EnvKeyReplacer.Replace(key))
}

// Load reads a Config out of v
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		OS:        strings.TrimSpace(v.GetString(KeyOS)),
		Arch:      strings.TrimSpace(v.GetString(KeyArch)),
		TableFile: v.GetString(KeyTable),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, cfg.LogFormat)
	}

	return cfg, nil
}
