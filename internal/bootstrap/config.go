package bootstrap

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	BoardSize    int    `mapstructure:"BOARD_SIZE"`
	ReadDepth    int    `mapstructure:"READ_DEPTH"`
	BatchWorkers int    `mapstructure:"BATCH_WORKERS"`
	SemeaiTrace  bool   `mapstructure:"SEMEAI_TRACE"`
}

func Defaults() Config {
	return Config{
		LogLevel:     "info",
		BoardSize:    19,
		ReadDepth:    12,
		BatchWorkers: 4,
	}
}

// Setup reads the env-style file at cfgPath, if any, and lets environment
// variables override it.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	def := Defaults()
	v.SetDefault("LOG_LEVEL", def.LogLevel)
	v.SetDefault("BOARD_SIZE", def.BoardSize)
	v.SetDefault("READ_DEPTH", def.ReadDepth)
	v.SetDefault("BATCH_WORKERS", def.BatchWorkers)
	v.SetDefault("SEMEAI_TRACE", def.SemeaiTrace)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if strings.HasSuffix(cfgPath, ".env") || strings.HasPrefix(cfgPath, ".env") {
			v.SetConfigType("env")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
