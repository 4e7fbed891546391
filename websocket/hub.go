package websocket

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Topics clients can subscribe to. One topic per collection; every successful
// write to a collection broadcasts an event on its topic.
const (
	TopicJobCards  = "jobcards"
	TopicCustomers = "customers"
)

type EventType string

const (
	EventJobCardCreated  EventType = "JOBCARD_CREATED"
	EventJobCardUpdated  EventType = "JOBCARD_UPDATED"
	EventJobCardDeleted  EventType = "JOBCARD_DELETED"
	EventCustomerCreated EventType = "CUSTOMER_CREATED"
	EventCustomerUpdated EventType = "CUSTOMER_UPDATED"
	EventCustomerDeleted EventType = "CUSTOMER_DELETED"
	EventError           EventType = "ERROR"
)

// Event is what goes over the wire. Payload carries the affected record (or
// just its id for deletes); clients merge by identifier, last write observed
// wins. No version or ordering reconciliation is attempted.
type Event struct {
	Type      EventType   `json:"type"`
	Topic     string      `json:"topic"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type Client struct {
	ID     uuid.UUID
	Staff  string
	Conn   *websocket.Conn
	Hub    *Hub
	Send   chan Event
	topics map[string]bool
	mu     sync.RWMutex
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.broadcastToTopic(event)
		}
	}
}

// Broadcast queues an event for every client subscribed to its topic.
func (h *Hub) Broadcast(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	h.broadcast <- event
}

func (h *Hub) broadcastToTopic(event Event) {
	// Full lock: a client with a saturated send buffer gets dropped here.
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if !client.IsSubscribed(event.Topic) {
			continue
		}
		select {
		case client.Send <- event:
		default:
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Subscribe adds a topic to the client's subscriptions.
func (c *Client) Subscribe(topic string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.topics == nil {
		c.topics = make(map[string]bool)
	}
	c.topics[topic] = true
}

// Unsubscribe removes a topic from the client's subscriptions.
func (c *Client) Unsubscribe(topic string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.topics, topic)
}

// IsSubscribed checks whether the client listens on a topic.
func (c *Client) IsSubscribed(topic string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.topics[topic]
}
