// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/metrics"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal graceful path (SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline means the context deadline was exceeded.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types for WebSocket communication
const (
	MessageTypeRecommendations    = "recommendations"
	MessageTypeError              = "error"
	MessageTypePing               = "ping"
	MessageTypePong               = "pong"
	MessageTypePreferencesUpdated = "preferences_updated"
)

// notifyBuffer bounds queued user notices.
const notifyBuffer = 256

// Message is an outbound frame.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// ErrorData is the payload of an error frame.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PreferencesUpdatedData is the payload of a preferences_updated frame.
type PreferencesUpdatedData struct {
	Likes int `json:"likes"`
}

// userMessage is a notice addressed to every connection of one user.
type userMessage struct {
	userID  string
	message Message
}

// Hub maintains the set of active clients and routes user notices to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	notify  chan userMessage
	logger  zerolog.Logger
}

// NewHub creates a new Hub
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		notify:  make(chan userMessage, notifyBuffer),
		logger:  logger.With().Str("component", "websocket-hub").Logger(),
	}
}

// Register adds a client.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	metrics.TrackWSConnection(true)
	h.logger.Info().Str("user_id", c.userID).Int("total_clients", total).Msg("websocket client connected")
}

// Unregister removes a client and closes its send queue. Safe to call twice.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		c.closeSend()
	}
	total := len(h.clients)
	h.mu.Unlock()

	if ok {
		metrics.TrackWSConnection(false)
		h.logger.Info().Str("user_id", c.userID).Int("total_clients", total).Msg("websocket client disconnected")
	}
}

// Serve implements suture.Service.
func (h *Hub) Serve(ctx context.Context) error {
	return h.RunWithContext(ctx)
}

func (h *Hub) String() string {
	return "websocket-hub"
}

// RunWithContext delivers user notices until ctx is done, then closes
// every client and returns ctx.Err().
//
// Shutdown is checked before each notice so a busy queue cannot delay it.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case um := <-h.notify:
			h.deliver(um)
		}
	}
}

func (h *Hub) shutdown(ctx context.Context) {
	count := h.ClientCount()
	h.closeAllClients()

	// ctx.Err() is expected here and not logged as an error.
	h.logger.Info().
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", count).
		Msg("websocket hub stopped")
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	if ctx.Err() == context.DeadlineExceeded {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// sortedClients returns clients in id order. Callers hold h.mu.
func (h *Hub) sortedClients(match func(*Client) bool) []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		if match == nil || match(c) {
			clients = append(clients, c)
		}
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	return clients
}

// deliver sends um to the user's clients in id order. A client whose queue
// is full is dropped.
func (h *Hub) deliver(um userMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.sortedClients(func(c *Client) bool { return c.userID == um.userID }) {
		if !c.trySend(um.message) {
			h.logger.Warn().Uint64("client_id", c.id).Msg("websocket client queue full, dropping client")
			delete(h.clients, c)
			c.closeSend()
			metrics.TrackWSConnection(false)
		}
	}
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.sortedClients(nil) {
		c.closeSend()
		delete(h.clients, c)
		metrics.TrackWSConnection(false)
	}
}

// NotifyUser queues a notice for every open connection of userID. The
// notice is dropped when the queue is full.
func (h *Hub) NotifyUser(userID, messageType string, data interface{}) {
	select {
	case h.notify <- userMessage{userID: userID, message: Message{Type: messageType, Data: data}}:
	default:
		h.logger.Warn().Str("message_type", messageType).Msg("notify channel full, dropping message")
	}
}

// NotifyPreferencesUpdated tells the user's connections their likes changed.
func (h *Hub) NotifyPreferencesUpdated(userID string, likes int) {
	h.NotifyUser(userID, MessageTypePreferencesUpdated, PreferencesUpdatedData{Likes: likes})
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// UserClientCount returns the number of connections open for userID.
func (h *Hub) UserClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for c := range h.clients {
		if c.userID == userID {
			n++
		}
	}
	return n
}
