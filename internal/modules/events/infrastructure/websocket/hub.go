package websocket

import (
	"log"
	"sync"
)

// Event is one outbound message plus the owner it concerns
type Event struct {
	Username string
	Message  []byte
}

// Hub maintains the set of active clients and fans events out to them.
// A client subscribed without a username receives every event; a client
// subscribed with a username receives only that owner's events.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound file events.
	publish chan Event

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Channel to signal termination
	stop     chan struct{}
	stopOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		publish:    make(chan Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),

		clients: make(map[*Client]bool),
		stop:    make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("[Events Hub] Client registered (filter: %q)", client.username)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[Events Hub] Client unregistered (filter: %q)", client.username)
			}
		case ev := <-h.publish:
			for client := range h.clients {
				if client.username != "" && client.username != ev.Username {
					continue
				}
				select {
				case client.send <- ev.Message:
				default:
					// Slow consumer, drop it.
					close(client.send)
					delete(h.clients, client)
				}
			}
		case <-h.stop:
			log.Println("[Events Hub] Stopping hub")
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		}
	}
}

// Publish delivers message to every client whose filter matches
// username. Best effort: returns immediately once the hub accepted it.
func (h *Hub) Publish(username string, message []byte) {
	select {
	case h.publish <- Event{Username: username, Message: message}:
	case <-h.stop:
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}
