package api

import (
	"net/http"
	"strconv"

	"github.com/caseflow/task-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts an integer ID from the URL path parameters.
// It parses and validates the value, handling common error cases.
//
// Returns:
//   - (id, nil): The parsed ID if valid
//   - (0, error): Zero and an appropriate error if the parameter is missing or invalid
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
