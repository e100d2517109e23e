package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metehanbayar/orman/internal/models"
	"github.com/metehanbayar/orman/internal/store"
)

type categoryHandler struct {
	catalog *store.CatalogStore
}

func registerCategoryRoutes(rg *gin.RouterGroup, catalog *store.CatalogStore, authRequired gin.HandlerFunc) {
	h := &categoryHandler{catalog: catalog}

	rg.GET("/categories", h.list)

	rg.POST("/categories", authRequired, h.create)
	rg.PUT("/categories/:id", authRequired, h.update)
	rg.DELETE("/categories/:id", authRequired, h.delete)
}

func (h *categoryHandler) list(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *categoryHandler) create(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category payload"})
		return
	}
	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	created, err := h.catalog.CreateCategory(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, store.ErrCategoryExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *categoryHandler) update(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category payload"})
		return
	}

	updated, err := h.catalog.UpdateCategory(c.Request.Context(), c.Param("id"), category)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *categoryHandler) delete(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
