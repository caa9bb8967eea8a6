package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Translator Translator
	Presence   Presence
	JWT        JWT
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
	CORSOrigins []string
}

type BunConfig struct {
	DSN string
}

type Translator struct {
	Endpoint       string
	TimeoutSeconds int
}

type Presence struct {
	// Minutes since last_online before a user reads as offline.
	OnlineThresholdMinutes int
	// Expected client heartbeat interval, exposed to clients.
	PingIntervalSeconds int
}

type JWT struct {
	Secret string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	if c.Presence.OnlineThresholdMinutes == 0 {
		c.Presence.OnlineThresholdMinutes = 5
	}
	if c.Presence.PingIntervalSeconds == 0 {
		c.Presence.PingIntervalSeconds = 60
	}
	if c.Translator.TimeoutSeconds == 0 {
		c.Translator.TimeoutSeconds = 10
	}
	return &c, nil
}
