package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/auth"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/admin"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/response"
)

const principalKey = "principal"

// Principal parses the auth cookie once per request and stores the
// resulting admin.Principal in the gin context. A missing or invalid
// cookie leaves no principal; endpoints decide whether that matters.
func Principal(tokens *auth.TokenManager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil && token != "" {
			if p, err := tokens.Parse(token); err == nil {
				c.Set(principalKey, p)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless a principal was extracted.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if PrincipalFrom(c) == nil {
			response.UnauthorizedError(c, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin aborts with 403 unless the principal is a global
// administrator.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p == nil {
			response.UnauthorizedError(c, "Authentication required")
			c.Abort()
			return
		}
		if !p.IsSuper() {
			response.ForbiddenError(c, "Super admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the request's principal, or nil when the
// caller is unauthenticated.
func PrincipalFrom(c *gin.Context) *admin.Principal {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	p, ok := v.(*admin.Principal)
	if !ok {
		return nil
	}
	return p
}
