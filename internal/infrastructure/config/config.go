package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port             string
	MongoURI         string
	MongoDBName      string
	UseTransactions  bool
	RedisURL         string
	JWTSecret        string
	AppBaseURL       string
	PostsPerPage     int
	CommentsPerPage  int
	MaxUploadBytes   int64
	PostListCacheTTL time.Duration
	RateLimit        float64
	LogLevel         string
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGODB_URI", ""),
		MongoDBName:      getEnv("MONGODB_DB_NAME", ""),
		UseTransactions:  getEnvAsBool("MONGODB_TRANSACTIONS", true),
		RedisURL:         getEnv("REDIS_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		AppBaseURL:       getEnv("APP_BASE_URL", "http://localhost:8080"),
		PostsPerPage:     getEnvAsInt("POSTS_PER_PAGE", 10),
		CommentsPerPage:  getEnvAsInt("COMMENTS_PER_PAGE", 10),
		MaxUploadBytes:   int64(getEnvAsInt("MAX_UPLOAD_BYTES", 10<<20)), // 10 MiB
		PostListCacheTTL: time.Second * time.Duration(getEnvAsInt("POST_LIST_CACHE_TTL_SECONDS", 300)),
		RateLimit:        float64(getEnvAsInt("RATE_LIMIT_PER_SECOND", 10)),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	switch {
	case c.MongoURI == "":
		return errors.New("MONGODB_URI is not set")
	case c.MongoDBName == "":
		return errors.New("MONGODB_DB_NAME is not set")
	case c.JWTSecret == "":
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

func (c *Config) GetPostsPerPage() int {
	return c.PostsPerPage
}

func (c *Config) GetCommentsPerPage() int {
	return c.CommentsPerPage
}

// GetMaxUploadBytes returns the largest accepted upload in bytes.
func (c *Config) GetMaxUploadBytes() int64 {
	return c.MaxUploadBytes
}

// GetPostListCacheTTL returns how long a cached listing page lives.
func (c *Config) GetPostListCacheTTL() time.Duration {
	return c.PostListCacheTTL
}

// GetUseTransactions reports whether multi-document writes run in a transaction.
func (c *Config) GetUseTransactions() bool {
	return c.UseTransactions
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil && value > 0 {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
