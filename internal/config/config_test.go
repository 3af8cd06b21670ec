package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.Equal(t, "local", cfg.MediaBackend)
	assert.Positive(t, cfg.MaxUploadBytes)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("DATABASE_URL", "/custom/mantenimiento.db")
	t.Setenv("MEDIA_BACKEND", "s3")
	t.Setenv("MEDIA_S3_BUCKET", "fotos")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/custom/mantenimiento.db", cfg.DatabaseURL)
	assert.Equal(t, "s3", cfg.MediaBackend)
	assert.Equal(t, "fotos", cfg.S3Bucket)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
}

func TestLoadBadUploadLimitFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg := Load()

	assert.Equal(t, int64(50*1024*1024), cfg.MaxUploadBytes)
}
