package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabasePath    string
	JWTSecret       string
	SessionTTL      time.Duration
	AllowOrigins    []string
	LogstashTCPAddr string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	GoogleMapsAPIKey string
	MapsBaseURL      string

	GeolocationTimeout time.Duration
	MapsTimeout        time.Duration
	LLMTimeout         time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	return Config{
		Port:            getenv("PORT", "8080"),
		DatabasePath:    getenv("DATABASE_PATH", "data/prefer.db"),
		JWTSecret:       must("JWT_SECRET"),
		SessionTTL:      getduration("SESSION_TTL", 24*time.Hour),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),

		OpenAIAPIKey:  getenv("OPENAI_API_KEY", ""),
		OpenAIModel:   getenv("OPENAI_MODEL", "gpt-4-turbo"),
		OpenAIBaseURL: getenv("OPENAI_BASE_URL", ""),

		GoogleMapsAPIKey: getenv("GOOGLE_MAPS_API_KEY", ""),
		MapsBaseURL:      getenv("MAPS_BASE_URL", ""),

		GeolocationTimeout: getduration("GEOLOCATION_TIMEOUT", 10*time.Second),
		MapsTimeout:        getduration("MAPS_TIMEOUT", 10*time.Second),
		LLMTimeout:         getduration("LLM_TIMEOUT", 60*time.Second),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getduration(k string, d time.Duration) time.Duration {
	raw := os.Getenv(k)
	if raw == "" {
		return d
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		log.Printf("Warning: invalid %s %q, using %s", k, raw, d)
		return d
	}
	return parsed
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
