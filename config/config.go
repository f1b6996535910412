package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIOrigins     []string
	FrontendOrigin string
	ProbeTimeout   int // seconds
	ResolveTTL     int // seconds
	Debug          bool

	// Devserver settings
	ServerPort string
	JWTSecret  string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// Conventional local origins probed after the configured ones.
var localFallbacks = []string{
	"http://localhost:3001",
	"http://localhost:8080",
	"http://localhost:5000",
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		APIOrigins:     splitOrigins(getEnv("API_ORIGINS", "")),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		ProbeTimeout:   getEnvInt("PROBE_TIMEOUT_SECONDS", 3),
		ResolveTTL:     getEnvInt("RESOLVE_TTL_SECONDS", 30),
		Debug:          getEnvBool("DEBUG", false),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "lumenlearn"),
	}, nil
}

// CandidateOrigins returns configured origins first, then the fixed local
// fallbacks, with duplicates removed.
func (c *Config) CandidateOrigins() []string {
	seen := make(map[string]bool)
	var candidates []string
	for _, origin := range append(append([]string{}, c.APIOrigins...), localFallbacks...) {
		origin = strings.TrimRight(origin, "/")
		if origin == "" || seen[origin] {
			continue
		}
		seen[origin] = true
		candidates = append(candidates, origin)
	}
	return candidates
}

func splitOrigins(value string) []string {
	if value == "" {
		return nil
	}
	var origins []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
