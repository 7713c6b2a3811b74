package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/service/ledger"
)

// LedgerHandler serves balance queries and manual movement entry.
type LedgerHandler struct {
	svc    *ledger.Service
	logger *zap.Logger
}

// NewLedgerHandler constructs the ledger HTTP adapter.
func NewLedgerHandler(svc *ledger.Service, logger *zap.Logger) *LedgerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerHandler{svc: svc, logger: logger}
}

// Balances returns per-ledger balances over a lookback window in days.
func (h *LedgerHandler) Balances(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("dias", "7"))

	summary, err := h.svc.Balances(c.Request.Context(), actorFrom(c), days)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type feedMovementRequest struct {
	Type       models.MovementType `json:"tipo" binding:"required"`
	Sex        models.Sex          `json:"sexo" binding:"required"`
	QuantityKg float64             `json:"cantidadKg" binding:"required"`
}

// AddFeed records a manual feed movement.
func (h *LedgerHandler) AddFeed(c *gin.Context) {
	var req feedMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos inválidos"})
		return
	}

	movement, err := h.svc.AddFeedMovement(c.Request.Context(), actorFrom(c), req.Type, req.Sex, req.QuantityKg)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

type birdMovementRequest struct {
	Type     models.MovementType `json:"tipo" binding:"required"`
	Sex      models.Sex          `json:"sexo" binding:"required"`
	Quantity int                 `json:"cantidad" binding:"required"`
}

// AddBirds records a manual bird movement. Supervisor-gated in the router.
func (h *LedgerHandler) AddBirds(c *gin.Context) {
	var req birdMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos inválidos"})
		return
	}

	movement, err := h.svc.AddBirdMovement(c.Request.Context(), actorFrom(c), req.Type, req.Sex, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

type eggMovementRequest struct {
	Type     models.MovementType `json:"tipo" binding:"required"`
	Category models.EggCategory  `json:"categoria" binding:"required"`
	Quantity int                 `json:"cantidad" binding:"required"`
}

// AddEggs records a manual egg movement.
func (h *LedgerHandler) AddEggs(c *gin.Context) {
	var req eggMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos inválidos"})
		return
	}

	movement, err := h.svc.AddEggMovement(c.Request.Context(), actorFrom(c), req.Type, req.Category, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}
