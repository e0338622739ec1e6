package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/tendant/notion-content/pkg/notioncontent"
)

// ErrorResponse is the canonical error envelope returned by the gateway.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StatusForError converts an accessor error kind into an HTTP status.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, notioncontent.ErrInvalidInput),
		errors.Is(err, notioncontent.ErrNotADirectory):
		return http.StatusBadRequest
	case errors.Is(err, notioncontent.ErrPermissionDenied):
		return http.StatusUnauthorized
	case errors.Is(err, notioncontent.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, notioncontent.ErrUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func errorName(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_input"
	case http.StatusUnauthorized:
		return "permission_denied"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusNotImplemented:
		return "unsupported"
	default:
		return "internal_error"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusForError(err)
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: errorName(status), Message: err.Error()})
}

func writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: errorName(status), Message: message})
}
