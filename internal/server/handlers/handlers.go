// Package handlers adapts the service layer to gin. Handlers bind payloads,
// pull the actor off the request context and translate service errors into
// short human-readable responses; internals are logged, never returned.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/identity"
	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/service/auth"
)

func actorFrom(c *gin.Context) identity.Actor {
	actor, _ := identity.FromContext(c.Request.Context())
	return actor
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthenticated), errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no autorizado"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "acceso denegado"})
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "el email ya está en uso"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no encontrado"})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno"})
	}
}
