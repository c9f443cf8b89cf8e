package middleware

import (
	"errors"
	"net/http"
	"strings"

	"carbooking/internal/domain"

	"github.com/gin-gonic/gin"
)

const adminKey = "admin"

// TokenVerifier turns a raw bearer token into the admin identity.
type TokenVerifier interface {
	Verify(token string) (domain.RequestContext, error)
}

// RequireAdmin rejects requests without a valid admin bearer token:
// 401 when the token is missing, 403 when it does not verify.
func RequireAdmin(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc, err := v.Verify(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			status := http.StatusForbidden
			msg := "Invalid token"
			if errors.Is(err, domain.ErrMissingToken) {
				status = http.StatusUnauthorized
				msg = "Access denied"
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error":      msg,
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(adminKey, rc)
		c.Next()
	}
}

// bearerToken takes the part after "Bearer ". A header without the scheme
// yields no token.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Admin returns the identity stored by RequireAdmin.
func Admin(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(adminKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	rc, ok := v.(domain.RequestContext)
	return rc, ok
}
