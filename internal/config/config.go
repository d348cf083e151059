// Package config loads the settings surface named in spec.md §6.4
// (default_bitwidth, main_module, variable_name_format) plus the
// handful of ambient knobs the CLI/daemon need (debug, http port), the
// way the teacher's app.go reads viper through options.C.GetBool(...).
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/kegliz/syrecgo/syrec/synth"
)

// Config wraps a *viper.Viper pre-loaded with this module's defaults.
// Callers read individual keys with the usual Get*/GetBool accessors;
// ToSynthSettings projects the synthesis-relevant subset onto a
// synth.Settings value.
type Config struct {
	*viper.Viper
}

// Load builds a Config from, in increasing priority: built-in
// defaults, an optional config file at path (skipped silently when
// path is empty or the file doesn't exist), and SYRECGO_-prefixed
// environment variables (SYRECGO_DEFAULT_BITWIDTH, SYRECGO_DEBUG, ...).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("default_bitwidth", 32)
	v.SetDefault("main_module", "")
	v.SetDefault("variable_name_format", "")
	v.SetDefault("debug", false)
	v.SetDefault("http_port", 8080)
	v.SetDefault("http_local_only", false)
	v.SetDefault("cors_allow_origin", "")

	v.SetEnvPrefix("syrecgo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	return &Config{v}, nil
}

// ToSynthSettings projects default_bitwidth/main_module/variable_name_format
// onto a synth.Settings, falling back to synth.DefaultSettings() for any
// key left at its zero value.
func (c *Config) ToSynthSettings() synth.Settings {
	s := synth.DefaultSettings()
	if n := c.GetInt("default_bitwidth"); n > 0 {
		s.DefaultBitwidth = n
	}
	if m := c.GetString("main_module"); m != "" {
		s.MainModule = m
	}
	if f := c.GetString("variable_name_format"); f != "" {
		s.VariableNameFormat = f
	}
	return s
}
