package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	DBDSN       string
	MediaDir    string
	LogFile     string
	ImageAPIURL string
	ImageAPIKey string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "fixpos.db" // sqlite file in project root
	}
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./fixpos.log"
	}
	imageURL := os.Getenv("IMAGE_API_URL") // empty disables image generation
	imageKey := os.Getenv("IMAGE_API_KEY")

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, LogFile: logFile,
		ImageAPIURL: imageURL, ImageAPIKey: imageKey}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s IMAGE_API=%v",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.ImageAPIURL != "")
	return cfg
}
