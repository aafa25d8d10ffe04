package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/app"
	"github.com/muhammadolammi/aithera/internal/models"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	tokenHeader     = "X-Session-Token"

	stateKey = "session_state"
)

// requestLogger logs every request except health checks and scrapes, and
// makes sure each response carries a request id.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}
		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("request_id", requestID),
		}

		if len(c.Errors) > 0 {
			for _, ginErr := range c.Errors.ByType(gin.ErrorTypeAny) {
				log.Error("Request error", append(fields, zap.Error(ginErr.Err))...)
			}
			return
		}
		status := c.Writer.Status()
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Server error", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("Client error", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}

// requireSession resolves the login session named by the token header.
func (h *handler) requireSession(c *gin.Context) {
	st, err := h.sessions.Get(c.GetHeader(tokenHeader))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Set(stateKey, st)
	c.Next()
}

// requireRole rejects sessions whose user does not hold one of roles.
func requireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := sessionState(c)
		for _, r := range roles {
			if st.User.Role == r {
				c.Next()
				return
			}
		}
		abortWithError(c, app.ErrForbidden)
	}
}

func sessionState(c *gin.Context) app.State {
	return c.MustGet(stateKey).(app.State)
}
