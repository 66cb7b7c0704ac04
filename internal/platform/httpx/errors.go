package httpx

import (
	"errors"
	"net/http"

	"github.com/bayside-hms/bayside-hms/internal/shared"
)

// RespondError maps domain errors to HTTP responses. Duplicate keys and state
// conflicts answer 400 rather than 409; the dashboard treats every 4xx the
// same way and the API has always used 400 for both. Unmapped errors answer a
// generic 500 so internal detail never reaches the client.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrDuplicate):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrConflict):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
