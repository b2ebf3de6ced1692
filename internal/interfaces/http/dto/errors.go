package dto

import (
	"errors"
	"net/http"

	"github.com/rmc/backend/internal/domain/shared"
)

// statusByCode maps the domain error taxonomy onto HTTP statuses
var statusByCode = map[string]int{
	"NOT_FOUND":           http.StatusNotFound,
	"DUPLICATE_ENTRY":     http.StatusConflict,
	"REFERENCE_VIOLATION": http.StatusBadRequest,
	"VALIDATION_ERROR":    http.StatusBadRequest,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
}

// ClassifyError maps an error onto an HTTP status and the failure envelope.
// Unknown errors collapse to a generic 500; internal details never leak to
// clients.
func ClassifyError(err error) (int, Response) {
	var derr *shared.DomainError
	if errors.As(err, &derr) {
		if status, ok := statusByCode[derr.Code]; ok {
			return status, NewErrorResponse(derr.Message)
		}
	}
	return http.StatusInternalServerError, NewErrorResponse(shared.ErrInternal.Message)
}
