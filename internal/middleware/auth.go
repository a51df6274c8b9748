package middleware

import (
	"net/http"
	"strings"

	"catalog/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token. Tokens
// are issued by the identity service; this API only verifies them.
// Permissions maps a resource to the actions the bearer may perform on it,
// e.g. {"Supplier": ["Add", "Edit"]}.
type JWTClaims struct {
	UserID      string              `json:"user_id"`
	Username    string              `json:"username"`
	Permissions map[string][]string `json:"permissions"`
	jwt.RegisteredClaims
}

// Can reports whether the claims grant action on resource.
func (c *JWTClaims) Can(resource, action string) bool {
	if c == nil {
		return false
	}
	for _, a := range c.Permissions[resource] {
		if a == action {
			return true
		}
	}
	return false
}

// JWTAuth validates the Bearer token on every protected route. An empty
// secret would verify tokens signed with an empty key, so it rejects every
// request instead.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication is not configured"))
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Invalid or expired token"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireClaim rejects requests whose token does not grant action on
// resource. It must run after JWTAuth.
func RequireClaim(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetClaims(c).Can(resource, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}
