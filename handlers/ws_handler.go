package handlers

import (
	"net/http"

	"github.com/campusgig/platform-go/response"
	"github.com/campusgig/platform-go/services"
	"github.com/campusgig/platform-go/utils"
	ws "github.com/campusgig/platform-go/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	chat *services.ChatService
	hub  *ws.Hub
}

func NewWSHandler(chat *services.ChatService, hub *ws.Hub) *WSHandler {
	return &WSHandler{chat: chat, hub: hub}
}

// Subscribe streams new messages in a thread to the connected client.
// The connection is held open until the peer goes away; inbound frames
// are discarded (sending happens over the REST endpoint).
func (h *WSHandler) Subscribe(c *gin.Context) {
	threadID := c.Param("thread")

	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	if err := h.chat.Authorize(threadID, uid); err != nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	h.hub.Subscribe(threadID, conn)
	defer func() {
		h.hub.Unsubscribe(threadID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
