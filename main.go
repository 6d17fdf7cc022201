package main

import (
	"context"
	"log"
	"os"
	"time"

	"pdfchat/internal/api"
	"pdfchat/internal/config"
	"pdfchat/internal/extract"
	"pdfchat/internal/pipeline"
	"pdfchat/internal/service/ai"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for provider API keys.
	_ = godotenv.Load()

	cfgPath := os.Getenv("PDFCHAT_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	aiService, err := ai.NewService(cfg)
	if err != nil {
		log.Fatalf("init ai service: %v", err)
	}
	log.Printf("provider: %s", aiService.Provider())

	uploadDir := cfg.BasicConfig.UploadDir
	if uploadDir == "" {
		uploadDir = "./data/uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	timeout := time.Duration(cfg.BasicConfig.ProviderTimeout) * time.Second
	pipe := pipeline.New(extract.NewPDFExtractor(), aiService, timeout)

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	ttl := time.Duration(cfg.BasicConfig.TempFileTTL) * time.Minute
	interval := time.Duration(cfg.BasicConfig.TempCleanInterval) * time.Minute
	api.StartUploadSweeper(sweepCtx, uploadDir, ttl, interval)

	handlers := api.NewHandler(pipe, uploadDir, cfg.BasicConfig.MaxUploadBytes)

	router := gin.Default()
	router.Use(cors.Default())
	handlers.RegisterRoutes(router)

	addr := cfg.BasicConfig.ServerAddress
	if addr == "" {
		addr = ":3000"
	}

	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
