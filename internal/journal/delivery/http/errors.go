package http

import (
	"errors"
	"net/http"

	"timetracker/internal/journal"
	"timetracker/pkg/response"
)

// mapError translates journal errors into HTTP errors. Anything unknown is
// reported as 500 with the detail kept out of the response body.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, journal.ErrValidation):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, journal.ErrMalformedData):
		return response.NewHTTPError(http.StatusBadRequest, "decrypted data is not a journal")
	case errors.Is(err, journal.ErrDecrypt):
		return response.NewHTTPError(http.StatusUnauthorized, "could not decrypt data: check the passphrase")
	case errors.Is(err, journal.ErrTaskNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, journal.ErrModeRequired), errors.Is(err, journal.ErrInitialised),
		errors.Is(err, journal.ErrUnreadable):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, journal.ErrLocked):
		return response.NewHTTPError(http.StatusLocked, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
