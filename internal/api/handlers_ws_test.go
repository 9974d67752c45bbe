// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/recommend"
	ws "github.com/ShreyamPatel22/PersonalizedRecommendations/internal/websocket"
)

type rawFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func dialWS(t *testing.T, server *httptest.Server, userID string, header http.Header) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/recommendations/" + userID
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) rawFrame {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	var f rawFrame
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("decode frame %s: %v", data, err)
	}
	return f
}

func TestWebSocketRecommendations(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	server := httptest.NewServer(env.handler)
	t.Cleanup(server.Close)

	conn := dialWS(t, server, "alice", nil)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"k":2}`)); err != nil {
		t.Fatal(err)
	}
	f := readFrame(t, conn)
	if f.Type != ws.MessageTypeError || !strings.Contains(string(f.Data), "NO_PREFERENCES") {
		t.Fatalf("frame = %s %s, want NO_PREFERENCES error", f.Type, f.Data)
	}

	// Adding a like over HTTP pushes a notice to the open socket.
	rec := env.do(t, http.MethodPost, "/preferences/alice", models.PreferenceRequest{MovieID: 1}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d", rec.Code)
	}
	f = readFrame(t, conn)
	if f.Type != ws.MessageTypePreferencesUpdated {
		t.Fatalf("frame type = %s, want %s", f.Type, ws.MessageTypePreferencesUpdated)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"k":2}`)); err != nil {
		t.Fatal(err)
	}
	f = readFrame(t, conn)
	if f.Type != ws.MessageTypeRecommendations {
		t.Fatalf("frame type = %s, data %s", f.Type, f.Data)
	}
	var resp recommend.Response
	if err := json.Unmarshal(f.Data, &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != 3 {
		t.Errorf("items = %+v", resp.Items)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"k":-3}`)); err != nil {
		t.Fatal(err)
	}
	if f = readFrame(t, conn); f.Type != ws.MessageTypeError {
		t.Errorf("negative k frame type = %s", f.Type)
	}
}

func TestWebSocketRejectsForeignOrigin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, withOrigins("https://app.example.com"))
	server := httptest.NewServer(env.handler)
	t.Cleanup(server.Close)

	header := http.Header{}
	header.Set("Origin", "https://evil.example.com")
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/recommendations/alice"
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err == nil {
		_ = conn.Close()
		t.Fatal("Dial() succeeded for a foreign origin")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("response = %+v, want 403", resp)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
}

func TestWebSocketRequiresToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, withAuth())
	server := httptest.NewServer(env.handler)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/recommendations/alice"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Dial() succeeded without a token")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("response = %+v, want 401", resp)
	}
	_ = resp.Body.Close()

	token, err := env.jwt.GenerateToken("alice")
	if err != nil {
		t.Fatal(err)
	}
	header := http.Header{}
	header.Set("Cookie", "token="+token)
	conn := dialWS(t, server, "alice", header)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)); err != nil {
		t.Fatal(err)
	}
	if f := readFrame(t, conn); f.Type != ws.MessageTypePong {
		t.Errorf("frame type = %s, want pong", f.Type)
	}
}
