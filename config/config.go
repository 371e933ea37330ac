package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Google  GoogleConfig
	Session SessionConfig
}

type AppConfig struct {
	Port      string
	Env       string
	ClientURL string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

type SessionConfig struct {
	Secret string
	Expiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; environment variables alone are enough. With
	// an explicit config file the absence surfaces as a path error, not as
	// viper's ConfigFileNotFoundError.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	sessionExpiry, err := time.ParseDuration(viper.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 24 * time.Hour
	}

	clientURL := viper.GetString("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}

	config := &Config{
		App: AppConfig{
			Port:      viper.GetString("APP_PORT"),
			Env:       viper.GetString("APP_ENV"),
			ClientURL: clientURL,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Google: GoogleConfig{
			ClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
			CallbackURL:  viper.GetString("OAUTH_CALLBACK_URL"),
		},
		Session: SessionConfig{
			Secret: viper.GetString("SESSION_SECRET"),
			Expiry: sessionExpiry,
		},
	}

	return config, nil
}
