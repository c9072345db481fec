package handler

import (
	"net/http"
	"tush00nka/studybud/internal/pkg/httputils"
)

type PongResponse struct {
	Message string `json:"message"`
}

// StatusResponse acknowledges an action that has no other result.
type StatusResponse struct {
	Message string `json:"message"`
}

// Ping
// @Summary Ping the server
// @Description Health check
// @Tags system
// @Produce json
// @Success 200 {object} PongResponse
// @Router /ping [get]
func Ping(w http.ResponseWriter, r *http.Request) {
	httputils.ResponseJSON(w, 200, PongResponse{Message: "Pong"})
}
