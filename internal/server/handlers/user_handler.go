package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/domain/models"
	"github.com/jdcastellanos/granja/internal/service/users"
)

// UserHandler serves admin user management.
type UserHandler struct {
	svc    *users.Service
	logger *zap.Logger
}

// NewUserHandler constructs the users HTTP adapter.
func NewUserHandler(svc *users.Service, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{svc: svc, logger: logger}
}

// List returns all accounts with record counts.
func (h *UserHandler) List(c *gin.Context) {
	summaries, err := h.svc.List(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// Create registers a new account.
func (h *UserHandler) Create(c *gin.Context) {
	var input users.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos inválidos"})
		return
	}

	result, err := h.svc.Create(c.Request.Context(), actorFrom(c), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

type updateUserRequest struct {
	ID       string      `json:"id" binding:"required"`
	Name     string      `json:"nombre"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Active   *bool       `json:"activo"`
	Password string      `json:"password"`
}

// Update applies the changed fields to an account.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de usuario requerido"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de usuario inválido"})
		return
	}

	user, err := h.svc.Update(c.Request.Context(), actorFrom(c), users.UpdateUserInput{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Active:   req.Active,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes an account, or deactivates it when it owns records.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de usuario requerido"})
		return
	}

	result, err := h.svc.Delete(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
