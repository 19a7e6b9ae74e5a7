package stubserver

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	headerRequestID = "X-Request-ID"
	contextUserID   = "userID"
)

// requireAuth validates the bearer token and puts the caller's user id
// on the context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return fail(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return fail(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		userID, err := s.tokens.verify(tokenString)
		if err != nil {
			return fail(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		if _, exists := s.store.accountByID(userID); !exists {
			return fail(c, http.StatusUnauthorized, "Unknown account")
		}

		c.Set(contextUserID, userID)

		return next(c)
	}
}

// requestLog tags each request with its id (client-provided or fresh)
// and logs the outcome.
func (s *Server) requestLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response().Header().Set(headerRequestID, requestID)

		start := time.Now()
		err := next(c)

		level := slog.LevelInfo
		if c.Response().Status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		s.logger.Log(c.Request().Context(), level, "HTTP request",
			slog.String("request_id", requestID),
			slog.String("method", c.Request().Method),
			slog.String("uri", c.Request().URL.Path),
			slog.Int("status", c.Response().Status),
			slog.Duration("latency", time.Since(start)))

		return err
	}
}

func currentUserID(c echo.Context) string {
	userID, _ := c.Get(contextUserID).(string)

	return userID
}
