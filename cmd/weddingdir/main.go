package main

import (
	"log"
	"net/http"
	"time"

	"weddingdir/internal/logging"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	handler := newHTTPHandler(cfg, logger)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info().Str("addr", cfg.Addr).Str("site_url", cfg.SiteURL).Msg("directory listening")
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
