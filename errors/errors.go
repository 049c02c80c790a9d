package errors

import (
	"fmt"
	"net/http"

	"github.com/athh15/vef2-hop1/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrInvalidJSON    = New(http.StatusBadRequest, "Invalid json", nil)
	ErrInvalidToken   = New(http.StatusUnauthorized, "invalid token", nil)
	ErrExpiredToken   = New(http.StatusUnauthorized, "expired token", nil)
	ErrForbidden      = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrItemNotFound   = New(http.StatusNotFound, "Item not found", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// NotFoundHandler answers every unmatched route
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(ErrNotFound.Code, ErrNotFound)
	}
}

// Recovery converts panics into a generic 500 without leaking internals
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("Unhandled failure",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(ErrInternalServer.Code, ErrInternalServer)
	})
}

// Internal logs the underlying error server-side and answers with the
// generic 500 message
func Internal(c *gin.Context, err error) {
	logger.Log.Error("Internal error",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(ErrInternalServer.Code, ErrInternalServer)
}
