// Package server assembles the gin router and the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/metehanbayar/orman/config"
	"github.com/metehanbayar/orman/internal/api"
	"github.com/metehanbayar/orman/internal/middleware"
	"github.com/metehanbayar/orman/internal/recommend"
	"github.com/metehanbayar/orman/internal/service"
	"github.com/metehanbayar/orman/internal/store"
)

// Server wraps the gin router and the underlying HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the router with all middleware and routes registered.
func New(
	cfg *config.Config,
	catalog *store.CatalogStore,
	engine *recommend.Engine,
	authSvc *service.AuthService,
	priceSvc *service.PriceService,
	imageSvc *service.ImageService,
) *Server {
	router := gin.Default()

	router.Use(middleware.NoCache())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Static("/public", cfg.PublicDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.SetupAPI(router, catalog, engine, authSvc, priceSvc, imageSvc)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
