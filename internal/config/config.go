package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	GinMode    string
	AppEnv     string
	CORSOrigin string
	StaticDir  string
}

func Load() *Config {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "tasks.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "teamsync"),
		DBPassword: getEnv("DB_PASSWORD", "teamsync"),
		DBName:     getEnv("DB_NAME", "teamsync"),
		Port:       getEnv("PORT", "3000"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		AppEnv:     getEnv("APP_ENV", "development"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		StaticDir:  getEnv("STATIC_DIR", "dist"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
