package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Host      string
	Port      int
	DBPath    string
	JWTSecret string
	QueueSize int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	return &Config{
		Host:      getEnv("CALC_HOST", "http://localhost"),
		Port:      getEnvAsInt("CALC_PORT", 8080),
		DBPath:    getEnv("CALC_DB", "store.db"),
		JWTSecret: getEnv("CALC_JWT_SECRET", "development-secret"),
		QueueSize: getEnvAsInt("CALC_QUEUE_SIZE", 64),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}
