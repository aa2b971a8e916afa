// Package config loads service configuration from an optional YAML file,
// overridden by REQDIG_* environment variables.
package config

import (
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout     time.Duration `mapstructure:"idleTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type AuthConfig struct {
	TokenTTL time.Duration `mapstructure:"tokenTTL"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type SeedConfig struct {
	Demo bool `mapstructure:"demo"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Seed      SeedConfig      `mapstructure:"seed"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
}

// Load reads config.yaml from the given path, then applies REQDIG_*
// environment overrides. A missing file is not an error; the environment
// alone is enough to run.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.readTimeout", 10*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("auth.tokenTTL", 12*time.Hour)
	v.SetDefault("seed.demo", true)
	v.SetDefault("rateLimit.rps", 50.0)
	v.SetDefault("rateLimit.burst", 100)

	v.BindEnv("server.addr", "REQDIG_ADDR")
	v.BindEnv("server.readTimeout", "REQDIG_READ_TIMEOUT")
	v.BindEnv("server.writeTimeout", "REQDIG_WRITE_TIMEOUT")
	v.BindEnv("server.idleTimeout", "REQDIG_IDLE_TIMEOUT")
	v.BindEnv("server.shutdownTimeout", "REQDIG_SHUTDOWN_TIMEOUT")
	v.BindEnv("auth.tokenTTL", "REQDIG_TOKEN_TTL")
	v.BindEnv("postgres.dsn", "REQDIG_PG_DSN")
	v.BindEnv("seed.demo", "REQDIG_SEED_DEMO")
	v.BindEnv("rateLimit.rps", "REQDIG_RATE_RPS")
	v.BindEnv("rateLimit.burst", "REQDIG_RATE_BURST")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
