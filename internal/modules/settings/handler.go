package settings

import (
	"net/http"

	"frontdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.Get)
}

func (h *Handler) RegisterManagerRoutes(rg *gin.RouterGroup) {
	rg.PUT("/settings", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	st, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": st})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	st, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Check-in/check-out must be HH:MM and timezone must be a valid IANA name")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": st})
}
