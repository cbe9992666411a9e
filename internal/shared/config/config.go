package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port               string
	CORSAllowOrigin    []string
	Env                string
	APIKey             string
	DatabaseURL        string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CandidateCacheTTL  time.Duration
	ObjectStoreType    string
	LocalStoreDir      string
	PublicBaseURL      string
	AWSRegion          string
	S3Bucket           string
	S3ImagePrefix      string
	S3CompositePrefix  string
	LLMProvider        string
	LLMModel           string
	MaxPerCategory     int
	MaxRecommendations int
	FallbackOnLLMError bool
	RembgURL           string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}
	if env == "production" && os.Getenv("API_KEY") == "" {
		log.Printf("API_KEY is required in production")
	}

	return Config{
		Port:               getEnv("PORT", "8000"),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		Env:                env,
		APIKey:             getEnv("API_KEY", ""),
		DatabaseURL:        dbURL,
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		CandidateCacheTTL:  getEnvDuration("CANDIDATE_CACHE_TTL", 5*time.Minute),
		ObjectStoreType:    normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:      getEnv("LOCAL_STORE_DIR", "./outputs"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:8000/files"),
		AWSRegion:          getEnv("AWS_REGION", "ap-northeast-2"),
		S3Bucket:           getEnv("AWS_S3_BUCKET", ""),
		S3ImagePrefix:      getEnv("S3_IMAGE_PREFIX", "background-removed"),
		S3CompositePrefix:  getEnv("S3_COMPOSITE_PREFIX", "composites"),
		LLMProvider:        getEnv("LLM_PROVIDER", "openai"),
		LLMModel:           getEnv("LLM_MODEL", "gpt-3.5-turbo"),
		MaxPerCategory:     getEnvInt("MAX_PRODUCTS_PER_CATEGORY", 10),
		MaxRecommendations: getEnvInt("MAX_RECOMMENDATIONS", 3),
		FallbackOnLLMError: getEnvBool("FALLBACK_ON_LLM_ERROR", false),
		RembgURL:           getEnv("REMBG_URL", ""),
	}
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			log.Printf("config: load %s: %v", path, err)
		}
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return val
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("config: %s invalid bool %q, using %v", key, raw, def)
		return def
	}
	return val
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: %s invalid duration %q, using %s", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
