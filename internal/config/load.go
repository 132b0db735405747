package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads the config file at path on top of Defaults. Used for hot
// reloads; initial loading goes through the root command's viper instance.
func Load(path string) (Config, error) {
	cfg := Defaults()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
