package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metehanbayar/orman/internal/models"
	"github.com/metehanbayar/orman/internal/store"
)

type productHandler struct {
	catalog *store.CatalogStore
}

func registerProductRoutes(rg *gin.RouterGroup, catalog *store.CatalogStore, authRequired gin.HandlerFunc) {
	h := &productHandler{catalog: catalog}

	rg.GET("/products", h.list)
	rg.GET("/products/:id", h.get)
	rg.GET("/features", h.featureIcons)

	rg.POST("/products", authRequired, h.create)
	rg.PUT("/products/:id", authRequired, h.update)
	rg.DELETE("/products/:id", authRequired, h.delete)
}

func (h *productHandler) list(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *productHandler) get(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// featureIcons serves the fixed icon palette the admin panel offers when
// tagging products.
func (h *productHandler) featureIcons(c *gin.Context) {
	c.JSON(http.StatusOK, models.FeatureIcons)
}

func (h *productHandler) create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
		return
	}
	if product.Name == "" || product.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name and category are required"})
		return
	}

	created, err := h.catalog.CreateProduct(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *productHandler) update(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
		return
	}

	updated, err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *productHandler) delete(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
