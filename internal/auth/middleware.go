package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxSellerID = "seller_id"
	ctxUserID   = "auth_user_id"
)

func bearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
}

// RequireSeller rejects requests without a valid seller token.
func RequireSeller(t *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearer(c)
		if raw == "" {
			abortUnauthorized(c, "Not authorized, no token provided")
			return
		}
		a, err := t.Verify(raw)
		if err != nil || a.Type != "seller" {
			abortUnauthorized(c, "Not authorized, token failed")
			return
		}
		c.Set(ctxSellerID, a.ID)
		c.Next()
	}
}

// OptionalSeller extracts the seller id when a valid token is present but
// lets anonymous requests through. Order creation uses it: guests may order,
// while an authenticated seller may exercise owner-only cart overrides.
func OptionalSeller(t *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearer(c); raw != "" {
			if a, err := t.Verify(raw); err == nil && a.Type == "seller" {
				c.Set(ctxSellerID, a.ID)
			}
		}
		c.Next()
	}
}

// RequireUser rejects requests without a valid customer token.
func RequireUser(t *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearer(c)
		if raw == "" {
			abortUnauthorized(c, "Not authorized, no token provided")
			return
		}
		a, err := t.Verify(raw)
		if err != nil || a.Type != "user" {
			abortUnauthorized(c, "Not authorized, token failed")
			return
		}
		c.Set(ctxUserID, a.ID)
		c.Next()
	}
}

func SellerID(c *gin.Context) string { return c.GetString(ctxSellerID) }
func UserID(c *gin.Context) string   { return c.GetString(ctxUserID) }
