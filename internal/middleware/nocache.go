package middleware

import "github.com/gin-gonic/gin"

// NoCache tells browsers and intermediaries not to cache API responses.
// Menu data changes whenever the POS sync runs, so stale responses show
// diners outdated prices.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
