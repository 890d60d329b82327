package catalog

// ---------- ROOM TYPES ----------

type CreateRoomTypeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	NightlyRate float64  `json:"nightly_rate" binding:"required,gt=0"`
	Amenities   []string `json:"amenities,omitempty"`
}

type UpdateRoomTypeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	NightlyRate float64  `json:"nightly_rate" binding:"required,gt=0"`
	Amenities   []string `json:"amenities,omitempty"`
}

// ---------- ROOMS ----------

type CreateRoomRequest struct {
	Number     string `json:"number" binding:"required"`
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
	Floor      int    `json:"floor"`
	Notes      string `json:"notes"`
}

// UpdateRoomRequest keeps Active as a pointer so "leave unchanged" and
// "set false" stay distinguishable.
type UpdateRoomRequest struct {
	Number     string `json:"number" binding:"required"`
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
	Floor      int    `json:"floor"`
	Active     *bool  `json:"active,omitempty"`
	Notes      string `json:"notes"`
}
