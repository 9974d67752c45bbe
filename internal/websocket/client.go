// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package websocket

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 16
)

// clientIDCounter gives clients a stable delivery order.
var clientIDCounter atomic.Uint64

// ClientMessage is an inbound frame.
type ClientMessage struct {
	Type string `json:"type,omitempty"`
	K    int    `json:"k"`
}

// Handler answers a request frame for userID.
type Handler interface {
	HandleMessage(ctx context.Context, userID string, msg ClientMessage) Message
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, userID string, msg ClientMessage) Message

// HandleMessage calls f.
func (f HandlerFunc) HandleMessage(ctx context.Context, userID string, msg ClientMessage) Message {
	return f(ctx, userID, msg)
}

// Client is a middleman between the websocket connection and the hub
type Client struct {
	id      uint64
	userID  string
	hub     *Hub
	conn    *websocket.Conn
	handler Handler

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	send   chan Message
	closed bool
}

// NewClient creates a client for userID. ctx carries request-scoped logging
// values and bounds every handler call; it is canceled when the client stops.
// Client logs go to the hub's logger tagged with client_id.
func NewClient(ctx context.Context, hub *Hub, conn *websocket.Conn, userID string, handler Handler) *Client {
	id := clientIDCounter.Add(1)
	ctx = logging.ContextWithLogger(ctx, hub.logger.With().Uint64("client_id", id).Logger())
	ctx, cancel := context.WithCancel(ctx)
	return &Client{
		id:      id,
		userID:  userID,
		hub:     hub,
		conn:    conn,
		handler: handler,
		ctx:     ctx,
		cancel:  cancel,
		send:    make(chan Message, sendBuffer),
	}
}

// ID returns the client's unique identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// UserID returns the user the connection belongs to.
func (c *Client) UserID() string {
	return c.userID
}

// trySend queues msg without blocking. False means the queue is full or closed.
func (c *Client) trySend(msg Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// readPump answers inbound frames until the connection fails.
func (c *Client) readPump() {
	defer func() {
		c.cancel()
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Ctx(c.ctx).Warn().Err(err).Msg("unexpected websocket close")
			}
			return
		}
		metrics.RecordWSMessage("in")

		reply := c.answer(data)
		if !c.trySend(reply) {
			logging.Ctx(c.ctx).Warn().Uint64("client_id", c.id).Msg("websocket send queue full, dropping reply")
		}
	}
}

func (c *Client) answer(data []byte) Message {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{
			Type: MessageTypeError,
			Data: ErrorData{Code: "VALIDATION_ERROR", Message: "Frame must be a JSON object such as {\"k\":5}"},
		}
	}
	if msg.Type == MessageTypePing {
		return Message{Type: MessageTypePong}
	}
	return c.handler.HandleMessage(c.ctx, c.userID, msg)
}

// writePump writes queued frames and keepalive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			data, err := json.Marshal(message)
			if err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Str("type", message.Type).Msg("failed to encode websocket frame")
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
			metrics.RecordWSMessage("out")

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start registers the client and begins reading and writing.
func (c *Client) Start() {
	c.hub.Register(c)
	go c.writePump()
	go c.readPump()
}
