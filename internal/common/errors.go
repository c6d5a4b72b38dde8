package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Error taxonomy for the messaging core. Wrap these with fmt.Errorf and
// %w; callers classify with errors.Is at the action boundary.
var (
	// ErrValidation marks malformed input rejected before any write.
	ErrValidation = errors.New("validation failed")

	// ErrPermissionDenied marks an action the caller is not allowed to
	// perform. Rejected with no side effects.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound marks a referenced entity that does not exist or is
	// not visible to the caller.
	ErrNotFound = errors.New("not found")
)

// ValidationError builds a ErrValidation with a reason.
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// HTTPStatus maps a core error to a response status. PermissionDenied on
// visibility-sensitive routes is reported as 404 by the handler layer so
// private conversations do not leak their existence; this mapping is the
// plain one.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
