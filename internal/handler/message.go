package handler

import (
	"net/http"
	"tush00nka/studybud/internal/pkg/httputils"
	"tush00nka/studybud/internal/service"

	"github.com/gorilla/mux"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) RegisterRoutes(router *mux.Router, mw *AuthMiddleware) {
	router.Handle("/room/{id:[0-9]+}", mw.RequireAuth(h.postMessage)).Methods("POST", "OPTIONS")
	router.Handle("/delete-message/{id:[0-9]+}", mw.RequireAuth(h.deleteMessage)).Methods("POST", "OPTIONS")
}

type PostMessageRequest struct {
	Body string `json:"body"`
}

// @Summary Post message
// @Description Post a message in a room. The author becomes a participant.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param messageData body PostMessageRequest true "Message"
// @Success 201 {object} model.Message
// @Success 302
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /room/{id} [post]
func (h *MessageHandler) postMessage(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(r)
	if !ok {
		httputils.ResponseError(w, http.StatusNotFound, "Room not found")
		return
	}

	var request PostMessageRequest
	if err := httputils.DecodeJSON(r, &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	message, err := h.messageService.PostMessage(r.Context(), CurrentUserID(r.Context()), roomID, request.Body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, message)
}

type DeleteMessageResponse struct {
	Message string `json:"message"`
	RoomID  uint   `json:"room_id"`
}

// @Summary Delete message
// @Description Delete a message. Only its author may do so.
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} DeleteMessageResponse
// @Success 302
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /delete-message/{id} [post]
func (h *MessageHandler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := pathID(r)
	if !ok {
		httputils.ResponseError(w, http.StatusNotFound, "Message not found")
		return
	}

	message, err := h.messageService.DeleteMessage(r.Context(), CurrentUserID(r.Context()), messageID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, DeleteMessageResponse{Message: "Message deleted", RoomID: message.RoomID})
}
