package handler

import (
	"log"
	"net/http"
	"tush00nka/studybud/internal/pkg/httputils"
	"tush00nka/studybud/internal/service"
	"tush00nka/studybud/internal/ws"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// FeedHandler upgrades room page visitors to a live websocket feed.
type FeedHandler struct {
	roomService service.RoomService
	hub         *ws.Hub
	upgrader    *websocket.Upgrader
}

func NewFeedHandler(roomService service.RoomService, hub *ws.Hub, upgrader *websocket.Upgrader) *FeedHandler {
	return &FeedHandler{roomService: roomService, hub: hub, upgrader: upgrader}
}

func (h *FeedHandler) RegisterRoutes(router *mux.Router, mw *AuthMiddleware) {
	router.Handle("/ws/room/{id:[0-9]+}", mw.RequireAuth(h.serveRoom)).Methods("GET")
}

// @Summary Live room feed
// @Description Websocket streaming message and message_deleted events of a room
// @Tags rooms
// @Param id path int true "Room ID"
// @Success 101
// @Success 302
// @Failure 404 {object} response.ErrorResponse
// @Router /ws/room/{id} [get]
func (h *FeedHandler) serveRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(r)
	if !ok {
		httputils.ResponseError(w, http.StatusNotFound, "Room not found")
		return
	}

	if _, err := h.roomService.GetRoom(r.Context(), roomID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade failed for room %d: %v", roomID, err)
		return
	}

	client := ws.NewClient(r.Context(), conn, CurrentUserID(r.Context()), roomID)
	room, ok := h.hub.Join(client)
	if !ok {
		client.SendJSON(ws.OutEvent{Type: ws.EventTypeError, RoomID: roomID, Message: "room is busy"})
		client.CloseAfterFlush()
		client.WritePump()
		return
	}

	go func() {
		if err := client.WritePump(); err != nil {
			log.Printf("ws: write to user %d in room %d failed: %v", client.UserID, roomID, err)
		}
	}()

	client.ReadPump(func(c *ws.Client, ev ws.InEvent) {
		if ev.Type != "ping" {
			c.SendJSON(ws.OutEvent{Type: ws.EventTypeError, RoomID: roomID, Message: "the feed is read-only"})
		}
	})
	room.UnregisterClient(client)
}
