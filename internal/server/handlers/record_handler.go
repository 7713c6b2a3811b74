package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/service/records"
)

// RecordHandler serves production-record submission and listing.
type RecordHandler struct {
	svc    *records.Service
	logger *zap.Logger
}

// NewRecordHandler constructs the records HTTP adapter.
func NewRecordHandler(svc *records.Service, logger *zap.Logger) *RecordHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordHandler{svc: svc, logger: logger}
}

// Submit ingests a daily production record.
func (h *RecordHandler) Submit(c *gin.Context) {
	var input models.SubmitRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid record payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos inválidos"})
		return
	}

	record, err := h.svc.Submit(c.Request.Context(), actorFrom(c), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List returns records visible to the caller, paginated unless export is
// requested.
func (h *RecordHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	opts := records.ListOptions{
		Page:      page,
		Limit:     limit,
		Period:    models.Period(c.Query("period")),
		ExportAll: c.Query("export") == "1",
	}

	list, pagination, err := h.svc.List(c.Request.Context(), actorFrom(c), opts)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if list == nil {
		list = []models.ProductionRecord{}
	}

	resp := gin.H{"registros": list}
	if pagination != nil {
		resp["pagination"] = pagination
	}
	c.JSON(http.StatusOK, resp)
}
