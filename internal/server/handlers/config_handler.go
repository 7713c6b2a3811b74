package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/service/farm"
)

// ConfigHandler serves the farm-configuration singleton.
type ConfigHandler struct {
	svc    *farm.Service
	logger *zap.Logger
}

// NewConfigHandler constructs the configuration HTTP adapter.
func NewConfigHandler(svc *farm.Service, logger *zap.Logger) *ConfigHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigHandler{svc: svc, logger: logger}
}

// Get returns the configuration, creating defaults on first read.
func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.svc.GetOrInit(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Update replaces the configuration wholesale.
func (h *ConfigHandler) Update(c *gin.Context) {
	var input models.FarmConfigurationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos inválidos"})
		return
	}

	cfg, err := h.svc.Update(c.Request.Context(), actorFrom(c), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
