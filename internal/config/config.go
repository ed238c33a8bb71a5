package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Tax      TaxConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type TaxConfig struct {
	// Rate is a decimal fraction, e.g. 0.085 for 8.5%.
	Rate float64
}

type AuthConfig struct {
	TokenHeader string
	CartHeader  string
	IdentityURL string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "candela")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "candela")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TAX_RATE", 0.085)
	viper.SetDefault("AUTH_TOKEN_HEADER", "Authorization")
	viper.SetDefault("CART_ID_HEADER", "X-Cart-ID")
	viper.SetDefault("IDENTITY_URL", "http://localhost:9000")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Tax: TaxConfig{
			Rate: viper.GetFloat64("TAX_RATE"),
		},
		Auth: AuthConfig{
			TokenHeader: viper.GetString("AUTH_TOKEN_HEADER"),
			CartHeader:  viper.GetString("CART_ID_HEADER"),
			IdentityURL: viper.GetString("IDENTITY_URL"),
		},
	}

	return cfg, nil
}
