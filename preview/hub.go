package preview

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/utils"
)

// Event types
const (
	EventRendered = "preview_rendered"
	EventError    = "preview_error"
)

type Message struct {
	Event string      `json:"event"`
	Slug  string      `json:"slug,omitempty"`
	Data  interface{} `json:"data"`
}

// Conn is the part of *websocket.Conn the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one open preview socket. Writes are serialised per connection.
type Client struct {
	conn   Conn
	slug   string
	userID uint
	mu     sync.Mutex
}

func (c *Client) Slug() string { return c.slug }

func (c *Client) UserID() uint { return c.userID }

// Send menulis satu pesan ke client ini saja.
func (c *Client) Send(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub menampung semua client preview, dikelompokkan per slug menu.
type Hub struct {
	clients map[*Client]struct{}
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Register -> menambahkan connection untuk menu slug
func (h *Hub) Register(conn Conn, slug string, userID uint) *Client {
	c := &Client{conn: conn, slug: slug, userID: userID}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[c] = struct{}{}
	return c
}

// Unregister -> melepaskan connection
func (h *Hub) Unregister(c *Client) {
	h.mutex.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mutex.Unlock()
	if ok {
		c.conn.Close()
	}
}

// Count returns the number of open previews of slug.
func (h *Hub) Count(slug string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	n := 0
	for c := range h.clients {
		if c.slug == slug {
			n++
		}
	}
	return n
}

// Broadcast sends an event to every preview of slug and returns how many
// clients received it.
func (h *Hub) Broadcast(slug, event string, data interface{}) int {
	h.mutex.Lock()
	targets := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		if c.slug == slug {
			targets = append(targets, c)
		}
	}
	h.mutex.Unlock()

	sent := 0
	for _, c := range targets {
		if err := c.Send(Message{Event: event, Slug: slug, Data: data}); err != nil {
			utils.Error(logrus.Fields{"slug": slug, "event": event, "error": err}).Error("preview broadcast failed")
			continue
		}
		sent++
	}
	utils.Info(logrus.Fields{"slug": slug, "event": event, "clients": sent}).Debug("preview broadcast")
	return sent
}
