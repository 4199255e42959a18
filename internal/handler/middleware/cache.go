package middleware

import "github.com/gin-gonic/gin"

// NoStore keeps receipts and checkout results out of shared caches.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
	}
}
