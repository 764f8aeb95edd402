// Package config loads the preview server's listen address and cache
// path from environment and an optional config file, the way
// periwiki's SetupConfig loads its own file-based bootstrap settings.
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds rstd's bootstrap configuration.
type Config struct {
	Addr   string
	DBFile string
}

const configFilename = "rstd.yaml"

// Load reads rstd's configuration. Values fall back to defaults when
// neither a config file nor the matching RSTD_* environment variable
// is set.
func Load() *Config {
	viper.SetDefault("addr", "127.0.0.1:8088")
	viper.SetDefault("dbfile", "rstd.db")

	viper.SetEnvPrefix("rstd")
	viper.AutomaticEnv()

	viper.SetConfigFile(configFilename)
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if !strings.Contains(err.Error(), "no such file or directory") {
			log.Fatal(err)
		}
	}

	return &Config{
		Addr:   viper.GetString("addr"),
		DBFile: viper.GetString("dbfile"),
	}
}
