package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// FrameAncestors allows the listed origins to embed the API's pages in an iframe.
// With no origins only same-origin framing is allowed.
func FrameAncestors(origins []string) gin.HandlerFunc {
	sources := "'self'"
	if len(origins) > 0 {
		sources += " " + strings.Join(origins, " ")
	}
	policy := "frame-ancestors " + sources

	return func(c *gin.Context) {
		c.Header("Content-Security-Policy", policy)
		c.Next()
	}
}
