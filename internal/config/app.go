package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	Gemini   GeminiConfig
	Secrets  SecretsConfig
	Telegram TelegramConfig
	Storage  StorageConfig
}

type GeminiConfig struct {
	Model       string
	Temperature float64
}

type SecretsConfig struct {
	SecretName string
	Region     string
	Timeout    time.Duration
}

type TelegramConfig struct {
	Token string
	Debug bool
	// AdminChatID открывает команду /records; 0 выключает ее
	AdminChatID int64
}

type StorageConfig struct {
	Dir string
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Gemini: GeminiConfig{
			Model:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Temperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.7),
		},
		Secrets: SecretsConfig{
			SecretName: getEnv("API_KEY_SECRET_NAME", "TalentScoutAPIKey"),
			Region:     getEnv("AWS_REGION", "eu-north-1"),
			Timeout:    getEnvAsDuration("SECRETS_TIMEOUT", 10*time.Second),
		},
		Telegram: TelegramConfig{
			Token:       getEnv("TELEGRAM_BOT_TOKEN", ""),
			Debug:       getEnvAsBool("TELEGRAM_DEBUG", false),
			AdminChatID: getEnvAsInt64("TELEGRAM_ADMIN_CHAT_ID", 0),
		},
		Storage: StorageConfig{
			Dir: getEnv("CANDIDATE_DATA_DIR", "candidate_data"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
