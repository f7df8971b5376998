package middleware

import "github.com/gin-gonic/gin"

// Security sets common HTTP security headers on every response. HSTS is
// skipped for local so plain-http dev servers keep working in browsers.
func Security(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Cache-Control", "no-store")
		if env != "local" {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}
		c.Next()
	}
}
