package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config reúne toda a configuração do processo, carregada uma única vez
// em main e passada por referência aos componentes que precisam dela.
type Config struct {
	DBHost      string
	DBPort      uint
	DBName      string
	DBSecretID  string
	JWTSecret   string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	WhatsAppURL string
	WhatsAppKey string
	ServerPort  string
	CORSOrigins []string
}

// Load lê o .env (se existir) e monta o Config a partir das variáveis
// de ambiente, com defaults de desenvolvimento.
func Load() *Config {
	godotenv.Load()

	return &Config{
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnvAsUint("DB_PORT", 5432),
		DBName:      getEnv("DB_NAME", "membertruck_db"),
		DBSecretID:  getEnv("DB_SECRET_ID", ""),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-trocar-em-producao"),
		AccessTTL:   getEnvAsMinutes("ACCESS_TOKEN_MINUTES", 60),
		RefreshTTL:  getEnvAsMinutes("REFRESH_TOKEN_MINUTES", 24*60),
		WhatsAppURL: getEnv("WHATSAPP_API_URL", "http://localhost:9000"),
		WhatsAppKey: getEnv("WHATSAPP_API_KEY", ""),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: []string{getEnv("CORS_ORIGIN", "*")},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsUint(key string, defaultValue uint) uint {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseUint(value, 10, 32); err == nil {
			return uint(n)
		}
	}
	return defaultValue
}

func getEnvAsMinutes(key string, defaultValue int) time.Duration {
	minutes := defaultValue
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			minutes = n
		}
	}
	return time.Duration(minutes) * time.Minute
}
