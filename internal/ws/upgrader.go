package ws

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
)

// NewUpgrader returns an upgrader accepting the given origins. In
// development every origin is accepted, as is a "*" entry. Requests without
// an Origin header come from non-browser clients and are let through.
func NewUpgrader(allowedOrigins []string, development bool) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if development || origin == "" {
				return true
			}
			if slices.Contains(allowedOrigins, "*") {
				return true
			}
			return slices.Contains(allowedOrigins, origin)
		},
	}
}
