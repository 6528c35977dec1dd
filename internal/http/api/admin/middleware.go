package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lumen-studio/recruit-intake/internal/http/api/admin/handlers"
	"github.com/lumen-studio/recruit-intake/internal/security"
	log "github.com/sirupsen/logrus"
)

// adminAuthMiddleware verifies the bearer token and stores the admin identity
// in the gin context. Every failure yields the same 401 body.
func adminAuthMiddleware(tokens *security.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		identity, errVerify := tokens.Verify(token)
		if errVerify != nil {
			log.WithError(errVerify).Debug("admin token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(handlers.ContextAdminID, identity.AdminID)
		c.Set(handlers.ContextAdminUsername, identity.Username)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
