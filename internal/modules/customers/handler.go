package customers

import (
	"net/http"
	"strconv"

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
	rg.GET("/customers", h.List)
	rg.POST("/customers", h.Create)
	rg.GET("/customers/:id", h.Get)
	rg.PUT("/customers/:id", h.Update)
	rg.DELETE("/customers/:id", h.Delete)
}

// List returns all customers, or a ranked fuzzy match when q is given.
func (h *Handler) List(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		ranked, err := h.service.Search(c.Request.Context(), q)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search customers")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"customers": ranked})
		return
	}

	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get customers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customers": customers})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	cust, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"customer": cust})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cust, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	cust, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondCustomerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func respondCustomerError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer data")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
