package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Env string `envconfig:"BENCHBOSS_ENV" default:"dev"`
	// DataFile is the weekly player export the pool is loaded from
	DataFile string `envconfig:"BENCHBOSS_DATA_FILE" default:"players.csv"`
	Port     int    `envconfig:"BENCHBOSS_PORT" default:"3009"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
