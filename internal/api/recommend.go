package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metehanbayar/orman/internal/recommend"
	"github.com/metehanbayar/orman/internal/store"
)

type recommendHandler struct {
	catalog *store.CatalogStore
	engine  *recommend.Engine
}

func registerRecommendationRoutes(rg *gin.RouterGroup, catalog *store.CatalogStore, engine *recommend.Engine) {
	h := &recommendHandler{catalog: catalog, engine: engine}
	rg.POST("/recommendations", h.recommend)
}

type recommendationRequest struct {
	Preferences string `json:"preferences"`
}

func (h *recommendHandler) recommend(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	recommendation, err := h.engine.Recommend(products, req.Preferences)
	if err != nil {
		switch {
		case errors.Is(err, recommend.ErrEmptyCatalog):
			c.JSON(http.StatusBadRequest, gin.H{"error": "The menu has no products yet"})
		case errors.Is(err, recommend.ErrInsufficientCatalog):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build a recommendation"})
		}
		return
	}

	c.JSON(http.StatusOK, recommendation)
}
