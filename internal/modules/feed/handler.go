package feed

import (
	"log"
	"net/http"

	"frontdesk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers cannot set headers on websocket requests, so the origin
	// check is left to the CORS layer in front.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
	jwt *jwt.Service
}

func NewHandler(hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{hub: hub, jwt: jwtService}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed/ws", h.Serve)
}

// Serve upgrades GET /feed/ws?token=JWT to a websocket and streams
// reservation events until the client goes away. The token travels as
// a query parameter because websocket clients cannot set headers.
func (h *Handler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Token is required. Use ?token=YOUR_JWT_TOKEN",
			},
		})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			},
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("feed upgrade failed staff_id=%d err=%v", claims.StaffID, err)
		return
	}

	h.hub.Register(claims.StaffID, conn)
	defer h.hub.Unregister(claims.StaffID)

	// Drain the connection; the feed is one-way, so any read error
	// just means the client left.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
