package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/agbru/scoreboard/internal/logging"
	"github.com/agbru/scoreboard/internal/scoreboard"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Clients only send control frames.
	maxMessageSize = 512

	// Outbound buffer per client. A client that falls this far behind is dropped.
	sendBufferSize = 16
)

// MessageTypeSummary tags live-feed messages carrying the ranked summary.
const MessageTypeSummary = "summary"

// LiveMessage is the JSON document pushed to live-feed clients.
type LiveMessage struct {
	Type   string            `json:"type"`
	Seq    uint64            `json:"seq"`
	Games  []scoreboard.Game `json:"games"`
	SentAt time.Time         `json:"sent_at"`
}

// Summarizer supplies the summary the hub broadcasts.
type Summarizer interface {
	Summary() []scoreboard.Game
}

// Hub fans the scoreboard summary out to WebSocket clients. It implements
// scoreboard.Observer: accepted mutations mark the summary dirty and the Run
// loop broadcasts a fresh snapshot. Bursts of mutations coalesce into one
// broadcast.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan struct{}
	done       chan struct{}

	seq         uint64
	clientCount atomic.Int64
	logger      logging.Logger
	checkOrigin func(*http.Request) bool
}

// NewHub creates a Hub. Call Run to start it.
func NewHub(logger logging.Logger) *Hub {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Hub{
		clients:     make(map[*client]struct{}),
		register:    make(chan *client),
		unregister:  make(chan *client),
		broadcast:   make(chan struct{}, 1),
		done:        make(chan struct{}),
		logger:      logger,
		checkOrigin: func(*http.Request) bool { return true },
	}
}

// Observe implements scoreboard.Observer. It never blocks.
func (h *Hub) Observe(ev scoreboard.Event) {
	if !ev.Accepted() {
		return
	}
	select {
	case h.broadcast <- struct{}{}:
	default:
		// A broadcast is already pending and will carry this change.
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	return int(h.clientCount.Load())
}

// Run serves registrations and broadcasts until ctx is canceled, then
// disconnects every client. It must be called exactly once.
func (h *Hub) Run(ctx context.Context, source Summarizer) error {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return nil

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.clientCount.Store(int64(len(h.clients)))
			h.logger.Debug("live client connected", logging.String("client", c.id))
			if msg, ok := h.encode(source.Summary()); ok && !c.trySend(msg) {
				h.drop(c)
			}

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.logger.Debug("live client disconnected", logging.String("client", c.id))
			}

		case <-h.broadcast:
			msg, ok := h.encode(source.Summary())
			if !ok {
				continue
			}
			h.logger.Debug("broadcasting summary",
				logging.Uint64("seq", h.seq),
				logging.Int("clients", len(h.clients)))
			for c := range h.clients {
				if !c.trySend(msg) {
					h.logger.Debug("dropping slow live client", logging.String("client", c.id))
					h.drop(c)
				}
			}
		}
	}
}

// drop removes c and closes its send channel, which makes its write pump
// send a close frame.
func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.clientCount.Store(int64(len(h.clients)))
}

func (h *Hub) encode(games []scoreboard.Game) ([]byte, bool) {
	if games == nil {
		games = []scoreboard.Game{}
	}
	h.seq++
	msg, err := json.Marshal(LiveMessage{Type: MessageTypeSummary, Seq: h.seq, Games: games, SentAt: time.Now().UTC()})
	if err != nil {
		h.logger.Error("encoding live summary", err)
		return nil, false
	}
	return msg, true
}

// ServeWS upgrades the request to a WebSocket and attaches it to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		h.logger.Debug("websocket upgrade failed", logging.Err(err))
		return
	}

	c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBufferSize)}
	select {
	case h.register <- c:
	case <-h.done:
		closeGoingAway(conn)
		return
	case <-r.Context().Done():
		closeGoingAway(conn)
		return
	}

	go c.writePump()
	go c.readPump(h)
}

func closeGoingAway(conn *websocket.Conn) {
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
	_ = conn.Close()
}

// client is one live-feed connection.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

func (c *client) trySend(msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// readPump discards inbound messages and detects disconnects.
func (c *client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("live client read error", logging.String("client", c.id), logging.Err(err))
			}
			return
		}
	}
}

// writePump sends queued messages and keep-alive pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
