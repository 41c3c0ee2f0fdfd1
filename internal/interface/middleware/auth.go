package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tripora/tripora-api/pkg/helpers"
	"github.com/tripora/tripora-api/pkg/response"
)

// CtxUserIDKey is the Gin context key the auth middleware sets on success.
const CtxUserIDKey = "userID"

// bearerToken extracts the token from an `Authorization: Bearer <token>`
// header. Anything else is treated as a missing token.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// Auth rejects the request unless the Authorization header carries a valid
// bearer token; on success the decoded user id is attached to the context.
// Verification is stateless, so no shared state is touched per request.
func Auth(jwt *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "unauthorized: token missing")
			return
		}
		claims, err := jwt.Verify(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "unauthorized: invalid token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
