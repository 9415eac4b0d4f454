// Package config loads runtime configuration from defaults, an optional YAML
// file and SENTIENT_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the tunable knobs of the application.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	Response ResponseConfig `mapstructure:"response"`
	UI       UIConfig       `mapstructure:"ui"`
}

// ResponseConfig bounds the simulated generation latency.
type ResponseConfig struct {
	MinDelay time.Duration `mapstructure:"min_delay"`
	MaxDelay time.Duration `mapstructure:"max_delay"`
}

// UIConfig holds layout tuning.
type UIConfig struct {
	// WideBreakpoint is the terminal width (columns) at or above which the
	// desktop layout (sidebar + conversation) is used.
	WideBreakpoint int `mapstructure:"wide_breakpoint"`
	// SidebarWidth is the sidebar's column budget in the wide layout.
	SidebarWidth int `mapstructure:"sidebar_width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Response: ResponseConfig{
			MinDelay: time.Second,
			MaxDelay: 3 * time.Second,
		},
		UI: UIConfig{
			WideBreakpoint: 100,
			SidebarWidth:   28,
		},
	}
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply. A missing file at an explicit path is an
// error; any other read problem is too.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("response.min_delay", def.Response.MinDelay)
	v.SetDefault("response.max_delay", def.Response.MaxDelay)
	v.SetDefault("ui.wide_breakpoint", def.UI.WideBreakpoint)
	v.SetDefault("ui.sidebar_width", def.UI.SidebarWidth)

	v.SetEnvPrefix("SENTIENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Response.MinDelay < 0 || c.Response.MaxDelay < c.Response.MinDelay {
		return fmt.Errorf("invalid response delay range %v..%v", c.Response.MinDelay, c.Response.MaxDelay)
	}
	if c.UI.WideBreakpoint < 40 {
		return fmt.Errorf("ui.wide_breakpoint %d is below the minimum of 40", c.UI.WideBreakpoint)
	}
	if c.UI.SidebarWidth < 16 {
		return fmt.Errorf("ui.sidebar_width %d is below the minimum of 16", c.UI.SidebarWidth)
	}
	return nil
}
