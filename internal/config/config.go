package config

import (
	"net"
	"strconv"
)

type Config struct {
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Log        LogConfig      `mapstructure:"log"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DefaultsConfig struct {
	TransactionLimit int `mapstructure:"transaction_limit"`
}

func NewDefault() *Config {
	return &Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 80},
		Database: DatabaseConfig{Path: "data/bank.db"},
		Log:      LogConfig{Level: "info", Format: "colorful"},
		Defaults: DefaultsConfig{TransactionLimit: 10},
	}
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
