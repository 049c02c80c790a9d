package middleware

import (
	"errors"
	"strings"

	apierrors "github.com/athh15/vef2-hop1/errors"
	"github.com/athh15/vef2-hop1/models"
	"github.com/athh15/vef2-hop1/repository"
	"github.com/athh15/vef2-hop1/services"
	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key holding the authenticated user.
const UserKey = "user"

const bearerPrefix = "Bearer "

// RequireAuthentication verifies the bearer token, resolves the user it names
// and attaches it to the request context. An expired token is rejected with a
// distinct message from a structurally invalid one.
func RequireAuthentication(tokens *services.TokenService, users repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(apierrors.ErrInvalidToken.Code, apierrors.ErrInvalidToken)
			return
		}

		userID, err := tokens.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				c.AbortWithStatusJSON(apierrors.ErrExpiredToken.Code, apierrors.ErrExpiredToken)
				return
			}
			c.AbortWithStatusJSON(apierrors.ErrInvalidToken.Code, apierrors.ErrInvalidToken)
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			apierrors.Internal(c, err)
			c.Abort()
			return
		}
		if user == nil {
			// token names a user that no longer exists
			c.AbortWithStatusJSON(apierrors.ErrInvalidToken.Code, apierrors.ErrInvalidToken)
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects authenticated callers whose admin flag is false. It
// must run after RequireAuthentication.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.Admin {
			c.AbortWithStatusJSON(apierrors.ErrForbidden.Code, apierrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuthentication, nil when
// the request is unauthenticated.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(UserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
