package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Admin  AdminConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AdminConfig struct {
	Email         string
	Password      string // seed password, hashed before storage
	SessionSecret string
	SessionExpiry int // in minutes
	VerifyLimit   int // verify attempts per window
	VerifyWindow  int // window length in seconds
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ADMIN_EMAIL", "admin@trynex.com")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ADMIN_SESSION_SECRET", "dev-session-secret")
	viper.SetDefault("ADMIN_SESSION_EXPIRY", 60)
	viper.SetDefault("ADMIN_VERIFY_LIMIT", 10)
	viper.SetDefault("ADMIN_VERIFY_WINDOW", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Admin: AdminConfig{
			Email:         viper.GetString("ADMIN_EMAIL"),
			Password:      viper.GetString("ADMIN_PASSWORD"),
			SessionSecret: viper.GetString("ADMIN_SESSION_SECRET"),
			SessionExpiry: viper.GetInt("ADMIN_SESSION_EXPIRY"),
			VerifyLimit:   viper.GetInt("ADMIN_VERIFY_LIMIT"),
			VerifyWindow:  viper.GetInt("ADMIN_VERIFY_WINDOW"),
		},
	}
}
