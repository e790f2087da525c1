package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-management/internal/domain/apperror"
	"hospital-management/pkg/response"

	"github.com/gorilla/mux"
)

// writeError maps domain errors onto HTTP status codes. Anything it does not
// recognise is reported as a 500 with the given fallback message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, apperror.ErrConflict):
		response.Conflict(w, err.Error())
	case errors.Is(err, apperror.ErrInvalidArgument):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func parseID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidArgument(name, "must be a positive integer")
	}
	return id, nil
}
