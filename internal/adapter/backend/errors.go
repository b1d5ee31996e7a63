package backend

import (
	"fmt"
	"net/http"

	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
)

// APIError is a non-OK answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend error: %d %s", e.Status, e.Message)
}

// Is maps HTTP statuses onto domain sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case domainErrors.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case domainErrors.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domainErrors.ErrInvalidInput:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	}
	return false
}
