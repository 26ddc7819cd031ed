package application

import (
	"encoding/json"
	"log"

	"docshare/internal/modules/events/infrastructure/websocket"
)

// Event types pushed to subscribers.
const (
	TypeFileUploaded = "file.uploaded"
	TypeFileDeleted  = "file.deleted"
)

// FileEvent is the JSON payload delivered over the websocket feed
type FileEvent struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Filename string `json:"filename"`
}

// EventService publishes file lifecycle events to the hub.
// Implements the files module's domain.EventPublisher.
type EventService struct {
	hub *websocket.Hub
}

// NewEventService creates a new event service
func NewEventService(hub *websocket.Hub) *EventService {
	return &EventService{hub: hub}
}

// FileUploaded publishes a file.uploaded event
func (s *EventService) FileUploaded(username, storedName string) {
	s.emit(FileEvent{Type: TypeFileUploaded, Username: username, Filename: storedName})
}

// FileDeleted publishes a file.deleted event
func (s *EventService) FileDeleted(username, storedName string) {
	s.emit(FileEvent{Type: TypeFileDeleted, Username: username, Filename: storedName})
}

func (s *EventService) emit(ev FileEvent) {
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[EventService] marshal failed for %s: %v", ev.Type, err)
		return
	}
	s.hub.Publish(ev.Username, b)
}
