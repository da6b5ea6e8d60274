package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Address  string `envconfig:"PERM_ENGINE_ADDRESS" default:":8080"`
	LogLevel string `envconfig:"PERM_ENGINE_LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
