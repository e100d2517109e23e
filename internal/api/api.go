// Package api wires the HTTP handlers for the menu backend.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/metehanbayar/orman/internal/middleware"
	"github.com/metehanbayar/orman/internal/recommend"
	"github.com/metehanbayar/orman/internal/service"
	"github.com/metehanbayar/orman/internal/store"
)

// SetupAPI registers all /api/v1 routes on the router.
func SetupAPI(
	router *gin.Engine,
	catalog *store.CatalogStore,
	engine *recommend.Engine,
	authSvc *service.AuthService,
	priceSvc *service.PriceService,
	imageSvc *service.ImageService,
) {
	v1 := router.Group("/api/v1")
	authRequired := middleware.AuthMiddleware(authSvc)

	registerAuthRoutes(v1, authSvc)
	registerProductRoutes(v1, catalog, authRequired)
	registerCategoryRoutes(v1, catalog, authRequired)
	registerRecommendationRoutes(v1, catalog, engine)
	registerPriceRoutes(v1, priceSvc, authRequired)
	registerImageRoutes(v1, imageSvc, authRequired)
}
