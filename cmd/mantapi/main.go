package main

import (
	"log"

	"github.com/hvillega/mantenimiento-api/internal/config"
	"github.com/hvillega/mantenimiento-api/internal/db"
	"github.com/hvillega/mantenimiento-api/internal/logging"
	"github.com/hvillega/mantenimiento-api/internal/mediastore"
	"github.com/hvillega/mantenimiento-api/internal/mediastore/local"
	"github.com/hvillega/mantenimiento-api/internal/mediastore/s3"
	"github.com/hvillega/mantenimiento-api/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	media, err := newMediaStore(cfg)
	if err != nil {
		logger.Error("failed to initialize media store", "backend", cfg.MediaBackend, "error", err)
		return
	}
	logger.Info("media store ready", "backend", cfg.MediaBackend)

	server := web.NewServer(database, media, cfg.MaxUploadBytes, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newMediaStore(cfg *config.Config) (mediastore.MediaStore, error) {
	switch cfg.MediaBackend {
	case "s3":
		return s3.NewS3MediaStore(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	default:
		return local.NewLocalMediaStore(cfg.MediaPath)
	}
}
