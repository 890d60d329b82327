package catalog

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

// RegisterRoutes mounts the read side. Write routes are mounted
// separately so the manager-only guard can wrap them.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/room-types", h.ListRoomTypes)
	rg.GET("/room-types/:id", h.GetRoomType)
	rg.GET("/rooms", h.ListRooms)
}

func (h *Handler) RegisterManagerRoutes(rg *gin.RouterGroup) {
	rg.POST("/room-types", h.CreateRoomType)
	rg.PUT("/room-types/:id", h.UpdateRoomType)
	rg.DELETE("/room-types/:id", h.DeleteRoomType)
	rg.POST("/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
}

/* ---------- ROOM TYPE HANDLERS ---------- */

func (h *Handler) ListRoomTypes(c *gin.Context) {
	types, err := h.service.ListRoomTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get room types")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_types": types})
}

func (h *Handler) GetRoomType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.service.GetRoomType(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_type": t})
}

func (h *Handler) CreateRoomType(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	t, err := h.service.CreateRoomType(c.Request.Context(), req)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room_type": t})
}

func (h *Handler) UpdateRoomType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	t, err := h.service.UpdateRoomType(c.Request.Context(), id, req)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_type": t})
}

func (h *Handler) DeleteRoomType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoomType(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- ROOM HANDLERS ---------- */

func (h *Handler) ListRooms(c *gin.Context) {
	if v := c.Query("room_type_id"); v != "" {
		roomTypeID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room_type_id")
			return
		}
		rooms, err := h.service.ListRoomsByType(c.Request.Context(), roomTypeID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get rooms")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
		return
	}

	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func respondCatalogError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid catalog data")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Catalog record not found")
	case ErrTypeInUse:
		response.Error(c, http.StatusConflict, "TYPE_IN_USE", "Room type still has rooms assigned")
	case ErrDuplicateName:
		response.Error(c, http.StatusConflict, "DUPLICATE_NAME", "A room type with this name already exists")
	case ErrDuplicateNumber:
		response.Error(c, http.StatusConflict, "DUPLICATE_NUMBER", "A room with this number already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
