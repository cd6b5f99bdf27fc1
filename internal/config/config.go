package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	DatabaseURL string

	// HS256 secret shared with the identity provider; its session
	// tokens carry the external user id in the "sub" claim.
	IdentitySecret []byte
	// Signing secret for identity webhooks (user.created etc).
	WebhookSecret []byte

	AdminAPIKey string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string

	CDNBaseURL string
	CDNKey     string
	CDNSecret  string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v, using system environment", err)
	}

	cfg := &Config{
		ServiceName: envDefault("SERVICE_NAME", "vibecart"),
		ServerPort:  envIntDefault("SERVER_PORT", 8080),
		LogLevel:    envDefault("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		IdentitySecret: []byte(os.Getenv("IDENTITY_JWT_SECRET")),
		WebhookSecret:  []byte(os.Getenv("IDENTITY_WEBHOOK_SECRET")),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		KafkaBrokers: csv(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),

		CDNBaseURL: os.Getenv("CDN_BASE_URL"),
		CDNKey:     os.Getenv("CDN_API_KEY"),
		CDNSecret:  os.Getenv("CDN_API_SECRET"),
	}

	must(cfg.DatabaseURL, "DATABASE_URL")
	must(string(cfg.IdentitySecret), "IDENTITY_JWT_SECRET")

	return cfg
}

func must(v string, name string) {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
}

func csv(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
