package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds environment-based settings
type Config struct {
	Environment   string
	ServerAddress string
	LogLevel      string
	TemplatesGlob string

	// optional; the screens API is only mounted when set
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL     string
	MQTTClientID      string
	BroadcastInterval time.Duration

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	// calendar exports go to ExportsDir unless UseSpaces is set
	ExportsDir      string
	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string
}

// AdminEnabled reports whether the operator API can be mounted.
func (c *Config) AdminEnabled() bool {
	return c.DatabaseURL != ""
}

// Load reads configuration from .env (when present) and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	cfg := &Config{
		Environment:       getEnv("APP_ENV", "production"),
		ServerAddress:     getEnv("SERVER_ADDRESS", ":8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		TemplatesGlob:     getEnv("TEMPLATES_GLOB", "integrations/templates/*.html"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "./migrations"),
		RedisAddress:      getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisUsername:     os.Getenv("REDIS_USERNAME"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		MQTTBrokerURL:     os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:      getEnv("MQTT_CLIENT_ID", "vakit-server"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		ExportsDir:        getEnv("EXPORTS_DIR", "./exports"),
		UseSpaces:         os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint:    os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:      os.Getenv("SPACES_REGION"),
		SpacesBucket:      os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:      os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey:   os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey:   os.Getenv("SPACES_SECRET_KEY"),
	}

	interval, err := time.ParseDuration(getEnv("BROADCAST_INTERVAL", "1h"))
	if err != nil || interval <= 0 {
		return nil, fmt.Errorf("BROADCAST_INTERVAL must be a positive duration: %q", os.Getenv("BROADCAST_INTERVAL"))
	}
	cfg.BroadcastInterval = interval

	if cfg.UseSpaces && (cfg.SpacesBucket == "" || cfg.SpacesEndpoint == "" || cfg.SpacesCDNURL == "") {
		return nil, fmt.Errorf("SPACES_ENDPOINT, SPACES_BUCKET and SPACES_CDN_URL are required when USE_SPACES=true")
	}

	if cfg.AdminEnabled() {
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required when DATABASE_URL is set")
		}
		if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD_HASH are required when DATABASE_URL is set")
		}
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
