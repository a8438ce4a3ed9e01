package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Analyzer AnalyzerConfig
	Topics   TopicConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AnalyzerConfig struct {
	Provider         string // "http" or "local"
	BaseURL          string
	TimeoutSeconds   int
	DefaultTokenCost int
}

type TopicConfig struct {
	EntryCounted         string
	AchievementsEvaluate string
	XpAwarded            string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Analyzer: AnalyzerConfig{
			Provider:         getEnv("ANALYZER_PROVIDER", "local"),
			BaseURL:          getEnv("ANALYZER_BASE_URL", "http://localhost:8090"),
			TimeoutSeconds:   getEnvAsInt("ANALYZER_TIMEOUT_SECONDS", 30),
			DefaultTokenCost: getEnvAsInt("ANALYZER_DEFAULT_TOKEN_COST", 1),
		},
		Topics: TopicConfig{
			EntryCounted:         getEnv("TOPIC_ENTRY_COUNTED", "CONTEST_ENTRY_COUNTED"),
			AchievementsEvaluate: getEnv("TOPIC_ACHIEVEMENTS_EVALUATE", "ACHIEVEMENTS_EVALUATE"),
			XpAwarded:            getEnv("TOPIC_XP_AWARDED", "XP_AWARDED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
