package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"gridsift/adapters/excel"
	"gridsift/adapters/phone"
	"gridsift/adapters/report"
	"gridsift/app"
	"gridsift/internal/api"
	"gridsift/internal/config"
	"gridsift/ports"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	var normalizer ports.PhoneNormalizer = phone.NewDigitStrip()
	if cfg.Extract.PhoneE164 {
		normalizer = phone.NewE164Normalizer()
	}

	extract := app.NewExtractService(
		excel.NewDataReader(),
		normalizer,
		report.NewFactory(cfg.Extract.OutputRoot),
		cfg.Extract,
	)

	uploadsDir := filepath.Join(os.TempDir(), "gridsift_uploads")
	server := api.NewServer(extract, uploadsDir, cfg.Extract.OutputRoot)

	addr := ":" + cfg.Server.Port
	log.Printf("[API] listening on %s (output root %s)", addr, cfg.Extract.OutputRoot)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
