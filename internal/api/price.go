package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metehanbayar/orman/internal/service"
)

type priceHandler struct {
	prices *service.PriceService
}

func registerPriceRoutes(rg *gin.RouterGroup, prices *service.PriceService, authRequired gin.HandlerFunc) {
	h := &priceHandler{prices: prices}

	rg.GET("/prices", authRequired, h.list)
	rg.POST("/prices/update", authRequired, h.sync)
	rg.GET("/prices/test", authRequired, h.health)
}

func (h *priceHandler) list(c *gin.Context) {
	rows, err := h.prices.FetchPrices(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch prices")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *priceHandler) sync(c *gin.Context) {
	result, err := h.prices.SyncPrices(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Price sync failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *priceHandler) health(c *gin.Context) {
	if err := h.prices.Ping(c.Request.Context()); err != nil {
		h.fail(c, err, "Price database unreachable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *priceHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, service.ErrPriceDBNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Price database is not configured"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
