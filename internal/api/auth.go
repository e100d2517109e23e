package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metehanbayar/orman/internal/middleware"
	"github.com/metehanbayar/orman/internal/service"
)

type authHandler struct {
	auth *service.AuthService
}

func registerAuthRoutes(rg *gin.RouterGroup, auth *service.AuthService) {
	h := &authHandler{auth: auth}
	rg.POST("/auth/login", h.login)
	rg.GET("/auth/logout", h.logout)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *authHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, 86400, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *authHandler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
