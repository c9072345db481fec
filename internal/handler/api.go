package handler

import (
	"net/http"
	"time"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/pkg/httputils"
	"tush00nka/studybud/internal/repository"
	"tush00nka/studybud/internal/service"

	"github.com/gorilla/mux"
)

// APIHandler serves the read-only JSON API under /api.
type APIHandler struct {
	roomService service.RoomService
}

func NewAPIHandler(roomService service.RoomService) *APIHandler {
	return &APIHandler{roomService: roomService}
}

var apiRoutes = []string{
	"GET /api",
	"GET /api/rooms",
	"GET /api/rooms/:id",
}

func (h *APIHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("", h.getRoutes).Methods("GET", "OPTIONS")
	api.HandleFunc("/", h.getRoutes).Methods("GET", "OPTIONS")
	api.HandleFunc("/rooms", h.getRooms).Methods("GET", "OPTIONS")
	api.HandleFunc("/rooms/{id:[0-9]+}", h.getRoom).Methods("GET", "OPTIONS")
	api.HandleFunc("/room/{id:[0-9]+}", h.getRoom).Methods("GET", "OPTIONS")
}

// RoomResponse is the flat API form of a room: related records are ids.
type RoomResponse struct {
	ID           uint      `json:"id"`
	Host         *uint     `json:"host"`
	Topic        *uint     `json:"topic"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Participants []uint    `json:"participants"`
	Updated      time.Time `json:"updated"`
	Created      time.Time `json:"created"`
}

func NewRoomResponse(room *model.Room) RoomResponse {
	return RoomResponse{
		ID:           room.ID,
		Host:         room.HostID,
		Topic:        room.TopicID,
		Name:         room.Name,
		Description:  room.Description,
		Participants: room.ParticipantIDs(),
		Updated:      room.UpdatedAt,
		Created:      room.CreatedAt,
	}
}

// @Summary API routes
// @Description List the read-only API routes
// @Tags api
// @Produce json
// @Success 200 {object} []string
// @Router /api [get]
func (h *APIHandler) getRoutes(w http.ResponseWriter, r *http.Request) {
	httputils.ResponseJSON(w, http.StatusOK, apiRoutes)
}

// @Summary List rooms
// @Description All rooms, most recently updated first
// @Tags api
// @Produce json
// @Success 200 {object} []RoomResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/rooms [get]
func (h *APIHandler) getRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomService.ListRooms(r.Context(), repository.RoomFilter{})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		resp = append(resp, NewRoomResponse(&rooms[i]))
	}

	httputils.ResponseJSON(w, http.StatusOK, resp)
}

// @Summary Get room
// @Description A single room; also served under /api/room/{id}
// @Tags api
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} RoomResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/rooms/{id} [get]
func (h *APIHandler) getRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(r)
	if !ok {
		httputils.ResponseError(w, http.StatusNotFound, "Room not found")
		return
	}

	room, err := h.roomService.GetRoom(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, NewRoomResponse(room))
}
