package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	Env            string
	BaseURL        string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	TokenLifetime  time.Duration
	AllowedOrigins string
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "3000"),
		Env:            getEnv("ENV", "development"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:3000"),
		DBHost:         getEnv("POSTGRES_HOST", "localhost"),
		DBPort:         getEnv("POSTGRES_PORT", "5432"),
		DBUser:         getEnv("POSTGRES_USER", "postgres"),
		DBPassword:     getEnv("POSTGRES_PASSWORD", ""),
		DBName:         getEnv("POSTGRES_DB", "catalog"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenLifetime:  time.Duration(getEnvInt("TOKEN_LIFETIME", 20*60)) * time.Second,
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
