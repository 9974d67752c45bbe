// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package websocket serves live recommendations over gorilla/websocket connections.

Key Components:

  - Hub: tracks open connections per user and pushes user-scoped notices
  - Client: one connection with a read goroutine and a write goroutine
  - Message: typed outbound frame

Protocol:

Each inbound text frame is a JSON object. A frame {"k":N} is answered with a
recommendations frame for the connection's user; {"type":"ping"} is answered
with a pong. Outbound frames are

	{"type":"recommendations","data":{...}}
	{"type":"error","data":{"code":"NO_PREFERENCES","message":"..."}}
	{"type":"preferences_updated","data":{"likes":3}}
	{"type":"pong","data":null}

preferences_updated is pushed by the hub when the user's likes change through
the HTTP API, so a client can ask for fresh recommendations.

Each client has two goroutines:
  - readPump: reads frames, answers them through the Handler
  - writePump: writes queued frames and keepalive pings
*/
package websocket
