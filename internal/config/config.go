package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	HTTPTimeout    time.Duration
	SessionFile    string
	Language       string
	JWTSecret      string
	AppPort        string
	SQLitePath     string
	Translations   string
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:3000"),
		HTTPTimeout:    time.Duration(getEnvInt("HTTP_TIMEOUT_MS", 10000)) * time.Millisecond,
		SessionFile:    getEnv("SESSION_FILE", ".pmcli-session.json"),
		Language:       getEnv("APP_LANGUAGE", "en"),
		JWTSecret:      getEnv("JWT_SECRET", "local-dev-secret"),
		AppPort:        getEnv("APP_PORT", "3000"),
		SQLitePath:     getEnv("SQLITE_PATH", "mockapi.db"),
		Translations:   getEnv("TRANSLATIONS_DIR", "pkg/translator/translation"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
