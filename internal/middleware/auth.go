package middleware

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/airportservice/internal/auth"
	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

type TokenParser interface {
	Parse(raw string) (auth.Identity, error)
}

// Authenticate attaches the Bearer token's identity to the request.
// Requests without an Authorization header pass through anonymous; a bad token is rejected.
func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			abortError(c, http.StatusUnauthorized, "not_authenticated", "authorization header must be 'Bearer <token>'")
			return
		}

		id, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			abortError(c, http.StatusUnauthorized, "not_authenticated", "given token not valid")
			return
		}

		SetIdentity(c, id)
		c.Next()
	}
}

func SetIdentity(c *gin.Context, id auth.Identity) {
	c.Set(identityKey, id)
}

func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

// Gate lets authenticated callers read and only staff write.
func Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			abortError(c, http.StatusUnauthorized, "not_authenticated", domain.ErrUnauthorized.Error())
			return
		}
		if !id.IsStaff && !isSafeMethod(c.Request.Method) {
			abortError(c, http.StatusForbidden, "permission_denied", domain.ErrForbidden.Error())
			return
		}
		c.Next()
	}
}

// RequireIdentity only checks that the caller is authenticated.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); !ok {
			abortError(c, http.StatusUnauthorized, "not_authenticated", domain.ErrUnauthorized.Error())
			return
		}
		c.Next()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
