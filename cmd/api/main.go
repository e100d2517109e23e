package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/metehanbayar/orman/config"
	"github.com/metehanbayar/orman/internal/recommend"
	"github.com/metehanbayar/orman/internal/server"
	"github.com/metehanbayar/orman/internal/service"
	"github.com/metehanbayar/orman/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	switch {
	case config.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case config.IsTest():
		gin.SetMode(gin.TestMode)
	}

	// Redis is optional; the catalog falls back to plain file reads.
	var cache *store.Cache
	if cfg.Redis.Configured() {
		cache, err = store.NewCache(cfg.Redis)
		if err != nil {
			log.Printf("Redis unavailable, continuing without cache: %v", err)
			cache = nil
		}
	}

	catalog := store.NewCatalogStore(cfg.DataDir, cache)

	// The POS price database is optional too.
	var priceDB *store.PriceDB
	if cfg.PriceDB.Configured() {
		priceDB, err = store.NewPriceDB(cfg.PriceDB)
		if err != nil {
			log.Printf("Price database unavailable, price sync disabled: %v", err)
			priceDB = nil
		}
	}

	var s3Cfg *config.S3Config
	if os.Getenv("S3_BUCKET_NAME") != "" {
		s3Cfg, err = config.NewS3Config(context.Background())
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
	}

	engine := recommend.New()
	authSvc := service.NewAuthService(cfg)
	priceSvc := service.NewPriceService(priceDB, catalog)
	imageSvc := service.NewImageService(cfg.PublicDir, s3Cfg)

	srv := server.New(cfg, catalog, engine, authSvc, priceSvc, imageSvc)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", cfg.Addr())
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	if cache != nil {
		_ = cache.Close()
	}
	if priceDB != nil {
		_ = priceDB.Close()
	}
	log.Println("Server stopped")
}
