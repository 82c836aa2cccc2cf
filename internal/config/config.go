package config

import "os"

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string
	LLMAPIKey  string
	LLMAPIURL  string
	LLMModel   string
	RedisAddr  string
	RunTTL     string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "talentscout"),
		JWTSecret:  getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMAPIURL:  getEnv("LLM_API_URL", "https://openrouter.ai/api/v1"),
		LLMModel:   getEnv("LLM_MODEL", "meta-llama/llama-3-70b-instruct"),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		RunTTL:     getEnv("RUN_TTL_MINUTES", "60"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
