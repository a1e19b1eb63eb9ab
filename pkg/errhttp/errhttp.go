// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/worktrack/pkg/httpx"
	workitemdomain "github.com/ghuser/worktrack/services/workitem/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, workitemdomain.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, workitemdomain.ErrInvalidTenant):
		return http.StatusBadRequest // 400
	case errors.Is(err, workitemdomain.ErrWorkItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, workitemdomain.ErrInvalidTransition):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}
