package http

import (
	"net/http"

	"docshare/internal/modules/events/infrastructure/websocket"
)

type EventsHandler struct {
	hub *websocket.Hub
}

func NewEventsHandler(hub *websocket.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Subscribe handles GET /ws. An optional ?username= query restricts the
// feed to that owner's events.
func (h *EventsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	websocket.ServeWs(h.hub, w, r, username)
}
