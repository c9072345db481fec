package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
	"tush00nka/studybud/internal/model"

	"github.com/gorilla/websocket"
	"go.uber.org/atomic"
)

const (
	writeWait          = 10 * time.Second
	pongWait           = 60 * time.Second
	pingPeriod         = (pongWait * 9) / 10
	maxMessageSize     = 4 * 1024
	maxSendChannelSize = 256
	defaultRoomSize    = 100
	roomIdleTimeout    = time.Hour
)

// Event types
const (
	EventTypeMessage        = "message"
	EventTypeMessageDeleted = "message_deleted"
	EventTypeRoomInfo       = "room_info"
	EventTypeError          = "error"
)

type OutEvent struct {
	Type      string    `json:"type"`
	RoomID    uint      `json:"room_id"`
	Message   any       `json:"message,omitempty"`
	MessageID uint      `json:"message_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// InEvent is what a client may send. The feed is read-only, so anything but
// a ping is answered with an error event.
type InEvent struct {
	Type string `json:"type"`
}

// MessagePayload is the wire form of a posted message.
type MessagePayload struct {
	ID       uint      `json:"id"`
	RoomID   uint      `json:"room"`
	UserID   uint      `json:"user"`
	Username string    `json:"username"`
	Body     string    `json:"body"`
	Updated  time.Time `json:"updated"`
	Created  time.Time `json:"created"`
}

func NewMessagePayload(m *model.Message) MessagePayload {
	p := MessagePayload{
		ID:      m.ID,
		RoomID:  m.RoomID,
		UserID:  m.UserID,
		Body:    m.Body,
		Updated: m.UpdatedAt,
		Created: m.CreatedAt,
	}
	if m.User != nil {
		p.Username = m.User.Username
	}
	return p
}

type HubOptions struct {
	MaxRoomSize     int
	CleanupInterval time.Duration
}

// Stats is a snapshot of hub counters.
type Stats struct {
	Rooms       int64
	Connections int64
	EventsSent  int64
}

// Hub fans room activity out to websocket clients watching that room.
type Hub struct {
	mu       sync.RWMutex
	rooms    map[uint]*Room
	options  HubOptions
	shutdown chan struct{}

	connections atomic.Int64
	eventsSent  atomic.Int64
}

func NewHub(options ...HubOptions) *Hub {
	opts := HubOptions{
		MaxRoomSize:     defaultRoomSize,
		CleanupInterval: 5 * time.Minute,
	}
	if len(options) > 0 {
		opts = options[0]
	}

	hub := &Hub{
		rooms:    make(map[uint]*Room),
		options:  opts,
		shutdown: make(chan struct{}),
	}

	go hub.cleanupLoop()

	return hub
}

// Join registers client with the feed of its room. Rooms are only shut down
// under the hub lock, so the room handed out here is live when the client is
// queued. It returns false when the room cannot take more registrations.
func (h *Hub) Join(client *Client) (*Room, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, exists := h.rooms[client.RoomID]
	if !exists {
		room = NewRoom(h, client.RoomID, h.options.MaxRoomSize)
		h.rooms[client.RoomID] = room
	}
	return room, room.RegisterClient(client)
}

func (h *Hub) getRoomSafe(roomID uint) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room, exists := h.rooms[roomID]
	return room, exists
}

func (h *Hub) broadcast(roomID uint, ev OutEvent) {
	room, exists := h.getRoomSafe(roomID)
	if !exists {
		return
	}

	ev.RoomID = roomID
	ev.Timestamp = time.Now()
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("hub: failed to marshal %s event: %v", ev.Type, err)
		return
	}

	room.Broadcast(data)
}

// MessagePosted sends a stored message to everyone watching its room.
func (h *Hub) MessagePosted(message *model.Message) {
	h.broadcast(message.RoomID, OutEvent{
		Type:    EventTypeMessage,
		Message: NewMessagePayload(message),
	})
}

func (h *Hub) MessageDeleted(roomID, messageID uint) {
	h.broadcast(roomID, OutEvent{
		Type:      EventTypeMessageDeleted,
		MessageID: messageID,
	})
}

// RoomDeleted disconnects everyone watching a deleted room.
func (h *Hub) RoomDeleted(roomID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, exists := h.rooms[roomID]; exists {
		room.Shutdown()
		delete(h.rooms, roomID)
	}
}

func (h *Hub) Stats() Stats {
	h.mu.RLock()
	rooms := int64(len(h.rooms))
	h.mu.RUnlock()

	return Stats{
		Rooms:       rooms,
		Connections: h.connections.Load(),
		EventsSent:  h.eventsSent.Load(),
	}
}

func (h *Hub) Shutdown() {
	close(h.shutdown)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, room := range h.rooms {
		room.Shutdown()
	}
	h.rooms = make(map[uint]*Room)
}

func (h *Hub) cleanupLoop() {
	ticker := time.NewTicker(h.options.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.shutdown:
			return
		case <-ticker.C:
			h.cleanupInactiveRooms()
		}
	}
}

func (h *Hub) cleanupInactiveRooms() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for roomID, room := range h.rooms {
		if room.IsEmpty() && room.IsInactive() {
			room.Shutdown()
			delete(h.rooms, roomID)
		}
	}
}

type RoomInfo struct {
	RoomID        uint      `json:"room_id"`
	ActiveClients int       `json:"active_clients"`
	LastActivity  time.Time `json:"last_activity"`
}

// Room owns the clients watching one room. All membership changes and
// broadcasts go through its run loop.
type Room struct {
	hub        *Hub
	roomID     uint
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	shutdown   chan struct{}
	closeOnce  sync.Once
	lastActive atomic.Time
	maxSize    int
	active     atomic.Int32
	// pending counts queued registrations not yet handled by run
	pending    atomic.Int32
}

func NewRoom(hub *Hub, roomID uint, maxSize int) *Room {
	room := &Room{
		hub:        hub,
		roomID:     roomID,
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, maxSendChannelSize),
		register:   make(chan *Client, maxSize),
		unregister: make(chan *Client, maxSize),
		shutdown:   make(chan struct{}),
		maxSize:    maxSize,
	}
	room.lastActive.Store(time.Now())

	go room.run()

	return room
}

func (r *Room) run() {
	defer func() {
		for client := range r.clients {
			r.drop(client)
		}
		// registrations queued after shutdown never reach the loop
		for {
			select {
			case client := <-r.register:
				r.pending.Dec()
				client.Close()
			default:
				return
			}
		}
	}()

	for {
		select {
		case <-r.shutdown:
			return
		case client := <-r.register:
			r.handleRegister(client)
		case client := <-r.unregister:
			if _, ok := r.clients[client]; ok {
				r.drop(client)
			}
		case message := <-r.broadcast:
			for client := range r.clients {
				if client.SendRaw(message) {
					r.hub.eventsSent.Inc()
				}
			}
			r.lastActive.Store(time.Now())
		}
	}
}

func (r *Room) drop(client *Client) {
	delete(r.clients, client)
	r.active.Dec()
	r.hub.connections.Dec()
	client.Close()
	r.lastActive.Store(time.Now())
}

func (r *Room) handleRegister(client *Client) {
	defer r.pending.Dec()

	if len(r.clients) >= r.maxSize {
		client.SendJSON(OutEvent{Type: EventTypeError, RoomID: r.roomID, Message: "room is full", Timestamp: time.Now()})
		client.CloseAfterFlush()
		return
	}

	r.clients[client] = struct{}{}
	r.active.Inc()
	r.hub.connections.Inc()
	r.lastActive.Store(time.Now())

	client.SendJSON(OutEvent{
		Type:   EventTypeRoomInfo,
		RoomID: r.roomID,
		Message: RoomInfo{
			RoomID:        r.roomID,
			ActiveClients: int(r.active.Load()),
			LastActivity:  r.lastActive.Load(),
		},
		Timestamp: time.Now(),
	})
}

// RegisterClient adds a client; it returns false when the room is overloaded
// or already shut down.
func (r *Room) RegisterClient(client *Client) bool {
	if r.isShutdown() {
		return false
	}

	r.pending.Inc()
	select {
	case r.register <- client:
	default:
		r.pending.Dec()
		return false
	}

	return true
}

func (r *Room) isShutdown() bool {
	select {
	case <-r.shutdown:
		return true
	default:
		return false
	}
}

func (r *Room) UnregisterClient(client *Client) {
	select {
	case r.unregister <- client:
	case <-r.shutdown:
	}
}

func (r *Room) Broadcast(message []byte) {
	select {
	case r.broadcast <- message:
	case <-r.shutdown:
	}
}

func (r *Room) IsEmpty() bool {
	return r.active.Load() == 0 && r.pending.Load() == 0
}

func (r *Room) IsInactive() bool {
	return time.Since(r.lastActive.Load()) > roomIdleTimeout
}

func (r *Room) Shutdown() {
	r.closeOnce.Do(func() { close(r.shutdown) })
}

// Client is one websocket connection watching a room.
type Client struct {
	UserID uint
	RoomID uint
	ctx    context.Context
	cancel context.CancelFunc
	conn   *websocket.Conn
	send   chan []byte

	mu       sync.RWMutex
	isClosed bool
	flushed  chan struct{}
}

// NewClient wraps a connection. UserID is 0 for anonymous viewers.
func NewClient(ctx context.Context, conn *websocket.Conn, userID, roomID uint) *Client {
	ctx, cancel := context.WithCancel(ctx)

	return &Client{
		UserID:  userID,
		RoomID:  roomID,
		ctx:     ctx,
		cancel:  cancel,
		conn:    conn,
		send:    make(chan []byte, maxSendChannelSize),
		flushed: make(chan struct{}),
	}
}

func (c *Client) ReadPump(handleIncoming func(*Client, InEvent)) {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				websocket.CloseAbnormalClosure) {
				log.Printf("ws: client read error in room %d: %v", c.RoomID, err)
			}
			return
		}

		if c.ctx.Err() != nil {
			return
		}

		var ev InEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			c.SendJSON(OutEvent{Type: EventTypeError, RoomID: c.RoomID, Message: "malformed event", Timestamp: time.Now()})
			continue
		}

		handleIncoming(c, ev)
	}
}

// WritePump writes queued events, one frame per event, and keeps the
// connection alive with pings.
func (c *Client) WritePump() error {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return nil
		case <-c.flushed:
			c.drain()
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "room is full"))
			return nil
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return err
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func (c *Client) drain() {
	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (c *Client) SendJSON(v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("ws: client marshal error: %v", err)
		return false
	}

	return c.SendRaw(data)
}

// SendRaw queues data without blocking. Slow clients lose events.
func (c *Client) SendRaw(data []byte) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.isClosed {
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// CloseAfterFlush asks the write pump to send what is queued and then close.
func (c *Client) CloseAfterFlush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isClosed {
		return
	}
	select {
	case <-c.flushed:
	default:
		close(c.flushed)
	}
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isClosed {
		return
	}

	c.isClosed = true
	c.cancel()
	c.conn.Close()
}

func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isClosed
}
