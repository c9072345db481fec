package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"tush00nka/studybud/internal/pkg/httputils"
	"tush00nka/studybud/internal/service"

	"github.com/gorilla/mux"
)

// writeServiceError maps service errors to status codes. The text of
// expected errors is shown to the client; anything else is logged and
// hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		httputils.ResponseError(w, http.StatusNotFound, capitalize(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		httputils.ResponseError(w, http.StatusForbidden, capitalize(service.ErrForbidden.Error()))
	case errors.Is(err, service.ErrUnauthenticated):
		httputils.ResponseError(w, http.StatusUnauthorized, capitalize(detail(err, service.ErrUnauthenticated)))
	case errors.Is(err, service.ErrValidation):
		httputils.ResponseError(w, http.StatusBadRequest, capitalize(detail(err, service.ErrValidation)))
	case errors.Is(err, service.ErrConflict):
		httputils.ResponseError(w, http.StatusConflict, capitalize(err.Error()))
	case errors.Is(err, service.ErrUnavailable):
		httputils.ResponseError(w, http.StatusServiceUnavailable, capitalize(err.Error()))
	default:
		log.Printf("handler: %s %s failed: %v", r.Method, r.URL.Path, err)
		httputils.ResponseError(w, http.StatusInternalServerError, "Something went wrong")
	}
}

// detail strips the "<sentinel>: " prefix added when wrapping.
func detail(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
