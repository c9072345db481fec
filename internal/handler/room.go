package handler

import (
	"net/http"
	"strconv"
	"strings"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/pkg/httputils"
	"tush00nka/studybud/internal/repository"
	"tush00nka/studybud/internal/service"

	"github.com/gorilla/mux"
)

const homeTopicCount = 5

type RoomHandler struct {
	roomService    service.RoomService
	messageService service.MessageService
	topicService   service.TopicService
}

func NewRoomHandler(roomService service.RoomService, messageService service.MessageService, topicService service.TopicService) *RoomHandler {
	return &RoomHandler{
		roomService:    roomService,
		messageService: messageService,
		topicService:   topicService,
	}
}

func (h *RoomHandler) RegisterRoutes(router *mux.Router, mw *AuthMiddleware) {
	router.HandleFunc("/", h.home).Methods("GET", "OPTIONS")
	router.HandleFunc("/room/{id:[0-9]+}", h.getRoom).Methods("GET", "OPTIONS")
	router.Handle("/create-room", mw.RequireAuth(h.createRoomForm)).Methods("GET")
	router.Handle("/create-room", mw.RequireAuth(h.createRoom)).Methods("POST", "OPTIONS")
	router.Handle("/update-room/{id:[0-9]+}", mw.RequireAuth(h.updateRoomForm)).Methods("GET")
	router.Handle("/update-room/{id:[0-9]+}", mw.RequireAuth(h.updateRoom)).Methods("POST", "OPTIONS")
	router.Handle("/delete-room/{id:[0-9]+}", mw.RequireAuth(h.deleteRoom)).Methods("POST", "OPTIONS")
	router.HandleFunc("/topics", h.listTopics).Methods("GET", "OPTIONS")
	router.HandleFunc("/activities", h.listActivities).Methods("GET", "OPTIONS")
}

type HomeResponse struct {
	Rooms     []model.Room           `json:"rooms"`
	RoomCount int64                  `json:"room_count"`
	Topics    []model.TopicWithCount `json:"topics"`
	Messages  []model.Message        `json:"messages"`
}

// @Summary Home
// @Description Rooms matching q (topic, name or description), the first topics and recent activity
// @Tags rooms
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} HomeResponse
// @Failure 500 {object} response.ErrorResponse
// @Router / [get]
func (h *RoomHandler) home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	filter := repository.RoomFilter{Query: q}

	rooms, err := h.roomService.ListRooms(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	count, err := h.roomService.CountRooms(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	topics, err := h.topicService.ListTopics(r.Context(), "", homeTopicCount)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	messages, err := h.messageService.ListMessages(r.Context(), repository.MessageFilter{Query: q})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, HomeResponse{
		Rooms:     rooms,
		RoomCount: count,
		Topics:    topics,
		Messages:  messages,
	})
}

type RoomPageResponse struct {
	Room         *model.Room     `json:"room"`
	Messages     []model.Message `json:"messages"`
	Participants []model.User    `json:"participants"`
}

// @Summary Get room
// @Description A room with its messages, newest first, and participants
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} RoomPageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /room/{id} [get]
func (h *RoomHandler) getRoom(w http.ResponseWriter, r *http.Request) {
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

	messages, err := h.messageService.ListMessages(r.Context(), repository.MessageFilter{
		RoomID:            room.ID,
		NewestPostedFirst: true,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	participants := room.Participants
	if participants == nil {
		participants = []model.User{}
	}

	httputils.ResponseJSON(w, http.StatusOK, RoomPageResponse{
		Room:         room,
		Messages:     messages,
		Participants: participants,
	})
}

type RoomRequest struct {
	Name        string `json:"name"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

func (req RoomRequest) input() service.RoomInput {
	return service.RoomInput{Name: req.Name, Topic: req.Topic, Description: req.Description}
}

type RoomFormResponse struct {
	Room   *model.Room            `json:"room,omitempty"`
	Topics []model.TopicWithCount `json:"topics"`
}

// @Summary Room form
// @Description Topics to choose from when creating a room
// @Tags rooms
// @Produce json
// @Success 200 {object} RoomFormResponse
// @Success 302
// @Router /create-room [get]
func (h *RoomHandler) createRoomForm(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicService.ListTopics(r.Context(), "", 0)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, RoomFormResponse{Topics: topics})
}

// @Summary Create room
// @Description Create a room hosted by the logged in user. The topic is created if it does not exist.
// @Tags rooms
// @Accept json
// @Produce json
// @Param roomData body RoomRequest true "Room data"
// @Success 201 {object} model.Room
// @Success 302
// @Failure 400 {object} response.ErrorResponse
// @Router /create-room [post]
func (h *RoomHandler) createRoom(w http.ResponseWriter, r *http.Request) {
	var request RoomRequest
	if err := httputils.DecodeJSON(r, &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	room, err := h.roomService.CreateRoom(r.Context(), CurrentUserID(r.Context()), request.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, room)
}

// @Summary Room edit form
// @Description The room and the topics to choose from. Only the host may open it.
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} RoomFormResponse
// @Success 302
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /update-room/{id} [get]
func (h *RoomHandler) updateRoomForm(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(r)
	if !ok {
		httputils.ResponseError(w, http.StatusNotFound, "Room not found")
		return
	}

	room, err := h.roomService.GetRoomForEdit(r.Context(), CurrentUserID(r.Context()), roomID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	topics, err := h.topicService.ListTopics(r.Context(), "", 0)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, RoomFormResponse{Room: room, Topics: topics})
}

// @Summary Update room
// @Description Change name, topic and description. Only the host may do so.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param roomData body RoomRequest true "Room data"
// @Success 200 {object} model.Room
// @Success 302
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /update-room/{id} [post]
func (h *RoomHandler) updateRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(r)
	if !ok {
		httputils.ResponseError(w, http.StatusNotFound, "Room not found")
		return
	}

	var request RoomRequest
	if err := httputils.DecodeJSON(r, &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	room, err := h.roomService.UpdateRoom(r.Context(), CurrentUserID(r.Context()), roomID, request.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, room)
}

// @Summary Delete room
// @Description Delete a room and its messages. Only the host may do so.
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} StatusResponse
// @Success 302
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /delete-room/{id} [post]
func (h *RoomHandler) deleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(r)
	if !ok {
		httputils.ResponseError(w, http.StatusNotFound, "Room not found")
		return
	}

	if err := h.roomService.DeleteRoom(r.Context(), CurrentUserID(r.Context()), roomID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, StatusResponse{Message: "Room deleted"})
}

// @Summary List topics
// @Description Topics whose name contains q, with their room counts
// @Tags topics
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} []model.TopicWithCount
// @Router /topics [get]
func (h *RoomHandler) listTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicService.ListTopics(r.Context(), r.URL.Query().Get("q"), 0)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, topics)
}

// @Summary Recent activity
// @Description The latest messages across all rooms
// @Tags rooms
// @Produce json
// @Param limit query int false "At most this many messages (default 50, max 200)"
// @Success 200 {object} []model.Message
// @Failure 400 {object} response.ErrorResponse
// @Router /activities [get]
func (h *RoomHandler) listActivities(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httputils.ResponseError(w, http.StatusBadRequest, "Limit must be a positive number")
			return
		}
		limit = n
	}

	messages, err := h.messageService.RecentMessages(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, messages)
}
