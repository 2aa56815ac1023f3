package api

import (
	"fmt"

	"inkwell/internal/errors"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" && e.Details != e.Message {
		return fmt.Sprintf("%s (%d %s): %s", e.Message, e.Status, e.Code, e.Details)
	}

	return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
}

// HasCode reports whether err carries the given business error code.
func HasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
