package config

import "os"

type Config struct {
	Port        string
	DatabaseURL string
	Database    DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
	Port     string
}

// Load reads the configuration from the environment. DATABASE_URL wins over
// the discrete DB_* variables when both are set.
func Load() Config {
	return Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Username: os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     os.Getenv("DB_PORT"),
		},
	}
}
