package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/service/auth"
)

// Auth turns bearer tokens into request actors and enforces role gates.
type Auth struct {
	auth   *auth.Service
	logger *zap.Logger
}

// NewAuth constructs the auth middleware.
func NewAuth(authSvc *auth.Service, logger *zap.Logger) *Auth {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auth{auth: authSvc, logger: logger}
}

// RequireAuth verifies the Authorization header and stores the resulting actor
// on the request context.
func (m *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no autorizado"})
			return
		}

		actor, err := m.auth.ParseToken(token)
		if err != nil {
			m.logger.Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no autorizado"})
			return
		}

		c.Request = c.Request.WithContext(identity.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the actor holds one of the given roles.
// It must run after RequireAuth.
func (m *Auth) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := identity.FromContext(c.Request.Context())
		if !ok || !actor.Is(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "acceso denegado"})
			return
		}
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}
