package feed

import (
	"sync"
	"time"

	"frontdesk/internal/availability"
	"frontdesk/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is one reservation lifecycle change pushed to every connected
// front-desk client.
type Event struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	Status        string    `json:"status"`
	RoomTypeID    int64     `json:"room_type_id"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	At            time.Time `json:"at"`
}

type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(staffID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[staffID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[staffID] = conn
}

func (h *Hub) Unregister(staffID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[staffID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, staffID)
	}
}

// Broadcast pushes the event to every client. Clients whose write
// fails are dropped; they reconnect on their own.
func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	var dead []int64
	for staffID, conn := range h.connections {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			dead = append(dead, staffID)
		}
	}
	h.mutex.RUnlock()

	for _, staffID := range dead {
		h.Unregister(staffID)
	}
}

// PublishReservation adapts the hub to the reservation module's
// publisher interface.
func (h *Hub) PublishReservation(event string, r domain.Reservation) {
	h.Broadcast(Event{
		Type:          event,
		ReservationID: r.ID,
		Status:        string(r.Status),
		RoomTypeID:    r.RoomTypeID,
		CheckInDate:   r.CheckInDate.Format(availability.DateLayout),
		CheckOutDate:  r.CheckOutDate.Format(availability.DateLayout),
		At:            time.Now(),
	})
}

func (h *Hub) GetOnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for staffID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, staffID)
	}
}
