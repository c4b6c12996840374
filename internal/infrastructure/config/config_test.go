package config_test

import (
	"testing"
	"time"

	"github.com/mikiasgoitom/Postboard/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "POSTS_PER_PAGE", "COMMENTS_PER_PAGE", "MAX_UPLOAD_BYTES", "POST_LIST_CACHE_TTL_SECONDS", "MONGODB_TRANSACTIONS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := config.NewConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.GetPostsPerPage())
	assert.Equal(t, 10, cfg.GetCommentsPerPage())
	assert.Equal(t, int64(10<<20), cfg.GetMaxUploadBytes())
	assert.Equal(t, 5*time.Minute, cfg.GetPostListCacheTTL())
	assert.True(t, cfg.GetUseTransactions())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("POSTS_PER_PAGE", "25")
	t.Setenv("COMMENTS_PER_PAGE", "not-a-number")
	t.Setenv("MONGODB_TRANSACTIONS", "false")
	t.Setenv("POST_LIST_CACHE_TTL_SECONDS", "30")

	cfg := config.NewConfig()
	assert.Equal(t, 25, cfg.GetPostsPerPage())
	assert.Equal(t, 10, cfg.GetCommentsPerPage())
	assert.False(t, cfg.GetUseTransactions())
	assert.Equal(t, 30*time.Second, cfg.GetPostListCacheTTL())
}

func TestConfig_Validate(t *testing.T) {
	cfg := &config.Config{MongoURI: "mongodb://localhost:27017", MongoDBName: "postboard"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.JWTSecret = "s3cret"
	assert.NoError(t, cfg.Validate())
}
