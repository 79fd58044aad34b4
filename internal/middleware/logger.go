package middleware

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an X-Request-ID so a despacho's
// ingestion and its follow-up corrections can be traced across log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger writes one line per request. With format "json" the line is a
// machine-readable object; any other value gives the console layout.
// Requests that passed AuthMiddleware also carry the operator's id.
func Logger(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		requestID := c.GetString("request_id")
		operator := ""
		if id, ok := GetUserID(c); ok {
			operator = id.String()
		}

		if format == "json" {
			line, err := json.Marshal(gin.H{
				"request_id": requestID,
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"status":     c.Writer.Status(),
				"latency_ms": latency.Milliseconds(),
				"client_ip":  c.ClientIP(),
				"operator":   operator,
			})
			if err == nil {
				log.Print(string(line))
			}
			return
		}

		if operator != "" {
			log.Printf("[%s] %s %s %d %s %s operator=%s",
				requestID, c.Request.Method, c.Request.URL.Path,
				c.Writer.Status(), latency, c.ClientIP(), operator)
			return
		}
		log.Printf("[%s] %s %s %d %s %s",
			requestID, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), latency, c.ClientIP())
	}
}

// Recovery turns panics during extraction or persistence into a 500
// instead of dropping the connection.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
