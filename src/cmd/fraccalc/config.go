package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagMaxDen    = "max-den"

	envPrefix = "FRACCALC"
)

type config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	MaxDen    int64  `mapstructure:"max-den"`
}

// load resolves configuration with flags over environment over the config
// file, then builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	v := a.viper
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if file := v.GetString(flagConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
	}

	if err := v.Unmarshal(&a.config); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if a.config.MaxDen < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", flagMaxDen, a.config.MaxDen)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.config.LogFormat, a.config.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug().Str("config", v.ConfigFileUsed()).Interface("settings", a.config).Msg("Loaded configuration")
	return nil
}
