// ABOUTME: Maps typed pipeline errors onto HTTP status codes
// ABOUTME: Keeps the handlers free of status-picking conditionals

package handlers

import (
	"net/http"

	coreerrors "football-news-api/core/errors"
)

// statusForError picks the HTTP status for a typed error.
func statusForError(err error) int {
	switch {
	case coreerrors.IsValidation(err):
		return http.StatusBadRequest
	case coreerrors.IsNotFound(err):
		return http.StatusNotFound
	case coreerrors.IsExternalAPI(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeTypedError renders a typed error with its mapped status.
func writeTypedError(w http.ResponseWriter, err error) {
	writeError(w, statusForError(err), err.Error())
}
