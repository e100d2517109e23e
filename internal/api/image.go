package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metehanbayar/orman/internal/service"
)

type imageHandler struct {
	images *service.ImageService
}

func registerImageRoutes(rg *gin.RouterGroup, images *service.ImageService, authRequired gin.HandlerFunc) {
	h := &imageHandler{images: images}

	rg.POST("/upload", authRequired, h.upload)
	rg.POST("/images", authRequired, h.download)
}

func (h *imageHandler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image file is required"})
		return
	}

	url, err := h.images.SaveUpload(c.Request.Context(), fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

type downloadImageRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	SavePath string `json:"savePath" binding:"required"`
}

func (h *imageHandler) download(c *gin.Context) {
	var req downloadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl and savePath are required"})
		return
	}

	url, err := h.images.DownloadImage(c.Request.Context(), req.ImageURL, req.SavePath)
	if err != nil {
		if errors.Is(err, service.ErrUnsafePath) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid save path"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
