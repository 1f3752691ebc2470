package handler

import (
	"net/http"
	"time"

	"minecoin/internal/notify"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// EventsHandler bridges order alerts to websocket clients.
type EventsHandler struct {
	watcher notify.OrderWatcher
}

func NewEventsHandler(watcher notify.OrderWatcher) *EventsHandler {
	return &EventsHandler{watcher: watcher}
}

// Orders streams "new order" alerts to an admin client. The subscription is
// torn down when the socket closes, so no callback outlives the connection.
// @Router /events/orders [get]
func (h *EventsHandler) Orders(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	alerts, cancel := h.watcher.Subscribe()
	defer cancel()

	// Read pump: only to detect the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case alert, ok := <-alerts:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(alert); err != nil {
				return
			}
		}
	}
}
