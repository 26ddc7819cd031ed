package events

import (
	"docshare/internal/modules/events/application"
	"docshare/internal/modules/events/infrastructure/websocket"
	events_http "docshare/internal/modules/events/interfaces/http"
)

type Module struct {
	service *application.EventService
	handler *events_http.EventsHandler
	hub     *websocket.Hub
}

func NewModule() *Module {
	hub := websocket.NewHub()
	go hub.Run()

	service := application.NewEventService(hub)
	handler := events_http.NewEventsHandler(hub)

	return &Module{
		service: service,
		handler: handler,
		hub:     hub,
	}
}

func (m *Module) HTTPHandler() *events_http.EventsHandler {
	return m.handler
}

// Publisher returns the event service for use by other modules
func (m *Module) Publisher() *application.EventService {
	return m.service
}

// Stop shuts the hub down and disconnects all subscribers
func (m *Module) Stop() {
	m.hub.Stop()
}
