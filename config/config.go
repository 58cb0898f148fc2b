package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	RoundRobinTimeQuantum int
	// MaxHyperperiod is the engine ceiling for RM and EDF; above it they refuse to run.
	MaxHyperperiod int
	// DisplayMaxHyperperiod only triggers a warning in the presentation layer.
	DisplayMaxHyperperiod int
}

// Load reads the config file at path, or searches ./config.yaml when path is
// empty. A missing default file is not an error; defaults apply. Environment
// variables prefixed SCHEDSIM_ override file values, e.g.
// SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxHyperperiod:        v.GetInt("scheduler.periodic.max_hyperperiod"),
		DisplayMaxHyperperiod: v.GetInt("display.max_hyperperiod"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", cfg.RoundRobinTimeQuantum)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.periodic.max_hyperperiod", 10000)
	v.SetDefault("display.max_hyperperiod", 100)
}
