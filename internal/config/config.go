package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	DatabaseURL    string
	MediaBackend   string
	MediaPath      string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3UseSSL       bool
	MaxUploadBytes int64
	LogLevel       string
	LogFile        string
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first; missing keys fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", "mantenimiento.db"),
		MediaBackend:   getEnv("MEDIA_BACKEND", "local"),
		MediaPath:      getEnv("MEDIA_PATH", "media"),
		S3Endpoint:     getEnv("MEDIA_S3_ENDPOINT", ""),
		S3AccessKey:    getEnv("MEDIA_S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("MEDIA_S3_SECRET_KEY", ""),
		S3Bucket:       getEnv("MEDIA_S3_BUCKET", "mantenimiento-media"),
		S3UseSSL:       os.Getenv("MEDIA_S3_USE_SSL") == "1",
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 50*1024*1024),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
