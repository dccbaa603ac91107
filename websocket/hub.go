package websocket

import (
	"encoding/json"
	"sync"

	"github.com/campusgig/platform-go/models"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Hub fans chat messages out to websocket subscribers, keyed by
// thread id. Delivery is best-effort; a dead connection is dropped.
type Hub struct {
	mu    sync.RWMutex
	conns map[string][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string][]*websocket.Conn)}
}

func (h *Hub) Subscribe(threadID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[threadID] = append(h.conns[threadID], conn)
}

func (h *Hub) Unsubscribe(threadID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := h.conns[threadID]
	for i, c := range subs {
		if c == conn {
			h.conns[threadID] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(h.conns[threadID]) == 0 {
		delete(h.conns, threadID)
	}
}

func (h *Hub) Broadcast(msg models.ChatMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	subs := append([]*websocket.Conn(nil), h.conns[msg.ThreadID]...)
	h.mu.RUnlock()

	for _, conn := range subs {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logrus.WithField("thread_id", msg.ThreadID).WithError(err).Debug("dropping dead chat subscriber")
			conn.Close()
			h.Unsubscribe(msg.ThreadID, conn)
		}
	}
}

// DefaultHub is shared by the chat handler and the notification
// side-effector.
var DefaultHub = NewHub()
