package middleware

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/catalyst/internal/metrics"
	"github.com/linskybing/catalyst/pkg/types"
	"github.com/linskybing/catalyst/pkg/utils"
)

const anonymousActor = "anonymous"

// RequestMetaMiddleware attaches the caller's address and user agent to the
// request context for audit logging.
func RequestMetaMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := types.RequestMeta{
			Actor:     anonymousActor,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		c.Request = c.Request.WithContext(utils.WithRequestMeta(c.Request.Context(), meta))
		c.Next()
	}
}

// LoggingMiddleware logs each request and records it in the HTTP metrics
// under its route template.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		status := c.Writer.Status()
		metrics.ObserveHTTP(c.Request.Method, route, strconv.Itoa(status), elapsed)
		if status >= 500 {
			log.Printf("%s %s -> %d (%s) %s", c.Request.Method, c.Request.URL.Path, status, elapsed, c.Errors.String())
		}
	}
}

// CORSMiddleware allows origins that start with one of allowed, e.g.
// "http://localhost:" for any local port. Websocket upgrades skip CORS.
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return OriginAllowed(allowed, origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.ToLower(upgrade) == "websocket" {
			c.Next()
			return
		}
		corsHandler(c)
	}
}

func OriginAllowed(allowed []string, origin string) bool {
	for _, prefix := range allowed {
		if prefix == "*" || strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	return false
}
