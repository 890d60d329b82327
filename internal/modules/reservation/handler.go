package reservation

import (
	"net/http"
	"strconv"

	"frontdesk/internal/domain"
	"frontdesk/internal/pkg/response"
	"frontdesk/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.Create)
	rg.GET("/reservations", h.List)
	rg.GET("/reservations/:id", h.Get)
	rg.PUT("/reservations/:id", h.Update)
	rg.POST("/reservations/:id/check-in", h.CheckIn)
	rg.POST("/reservations/:id/check-out", h.CheckOut)
	rg.POST("/reservations/:id/cancel", h.Cancel)
	rg.GET("/reservations/:id/card", h.Card)

	rg.POST("/availability/check", h.CheckAvailability)
	rg.GET("/availability/rooms", h.RoomsAvailable)
	rg.GET("/availability/next-date", h.NextDate)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, nights, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(nights) > 0 {
		response.ErrorWithDetails(c, http.StatusConflict, "CAPACITY_CONFLICT",
			"Not enough rooms of this type for every night of the stay",
			gin.H{"nights": nights})
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reservation": res})
}

func (h *Handler) List(c *gin.Context) {
	f, ok := parseListFilter(c)
	if !ok {
		return
	}
	rows, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": rows})
}

func (h *Handler) Get(c *gin.Context) {
	d, err := h.service.Describe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": d})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, nights, err := h.service.UpdateStay(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(nights) > 0 {
		response.ErrorWithDetails(c, http.StatusConflict, "CAPACITY_CONFLICT",
			"Not enough rooms of this type for every night of the stay",
			gin.H{"nights": nights})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": d})
}

func (h *Handler) CheckIn(c *gin.Context) {
	d, err := h.service.CheckIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": d})
}

func (h *Handler) CheckOut(c *gin.Context) {
	d, err := h.service.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": d})
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}
	d, err := h.service.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": d})
}

func (h *Handler) Card(c *gin.Context) {
	body, filename, err := h.service.RegistrationCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.PDF(c, filename, body)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	nights, err := h.service.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"available": len(nights) == 0,
		"nights":    nights,
	})
}

func (h *Handler) RoomsAvailable(c *gin.Context) {
	roomTypeID, err := strconv.ParseInt(c.Query("room_type_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_type_id")
		return
	}
	rooms, err := h.service.RoomsAvailable(c.Request.Context(),
		roomTypeID, c.Query("check_in_date"), c.Query("check_out_date"), c.Query("exclude_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) NextDate(c *gin.Context) {
	roomTypeID, err := strconv.ParseInt(c.Query("room_type_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_type_id")
		return
	}
	nights, err := strconv.Atoi(c.DefaultQuery("nights", "1"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid nights")
		return
	}
	date, found, err := h.service.NextDate(c.Request.Context(),
		roomTypeID, nights, c.Query("from"), c.Query("exclude_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"found": found,
		"date":  date,
	})
}

func parseListFilter(c *gin.Context) (repository.ListFilter, bool) {
	var f repository.ListFilter

	if status := c.Query("status"); status != "" {
		st := domain.ReservationStatus(status)
		if !st.Valid() {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status")
			return f, false
		}
		f.Status = st
	}
	if v := c.Query("room_type_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_type_id")
			return f, false
		}
		f.RoomTypeID = id
	}
	if v := c.Query("customer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer_id")
			return f, false
		}
		f.CustomerID = id
	}

	f.Limit = 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			f.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Offset = n
		}
	}
	return f, true
}

func respondServiceError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation data")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reservation not found")
	case ErrCustomerNotFound:
		response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found")
	case ErrRoomTypeNotFound:
		response.Error(c, http.StatusNotFound, "ROOM_TYPE_NOT_FOUND", "Room type not found")
	case ErrRoomNotFound:
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case ErrRoomMismatch:
		response.Error(c, http.StatusBadRequest, "ROOM_TYPE_MISMATCH", "Room does not belong to the requested room type")
	case ErrRoomUnavailable:
		response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not available for the stay")
	case ErrNoRoomFree:
		response.Error(c, http.StatusConflict, "NO_ROOM_FREE", "No room of this type is free for the stay")
	case ErrDuplicateReference:
		response.Error(c, http.StatusConflict, "DUPLICATE_REFERENCE", "A reservation with this reference already exists")
	case ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation status does not allow this operation")
	case ErrStaleStatus:
		response.Error(c, http.StatusConflict, "STALE_STATUS", "Reservation changed concurrently, reload and retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
