package auth

import (
	"net/http"
	"strings"

	"Tasker/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextKeyUserID = "user_id"
	contextKeyEmail  = "user_email"

	requestIDHeader = "X-Request-ID"
)

// UserIDFromContext returns the current user ID set by RequireAuth. 0 if not set.
func UserIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// EmailFromContext returns the authenticated user's email, "" if not set.
func EmailFromContext(c *gin.Context) string {
	v, ok := c.Get(contextKeyEmail)
	if !ok {
		return ""
	}
	email, _ := v.(string)
	return email
}

// RequireAuth returns a middleware that validates the Bearer token and sets
// the current user in context. The user is re-looked-up in storage so tokens
// referencing deleted accounts fail. Every failure is the same 401: the
// caller learns nothing about why the token was rejected.
func RequireAuth(tokens *TokenService, users repo.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		ident, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		user, err := users.GetByID(c.Request.Context(), ident.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyUserID, user.ID)
		c.Set(contextKeyEmail, user.Email)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequestID tags every request with an id for log correlation, keeping a
// client-supplied one if present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
