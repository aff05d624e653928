package backend

import (
	"errors"
	"fmt"
	"strings"
)

// TransportError reports a call that failed before a usable body was read:
// a network failure (Status 0) or a non-2xx response.
type TransportError struct {
	Path   string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("HTTP error! status: %d", e.Status)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request failed"
}

func (e *TransportError) Unwrap() error { return e.Err }

// AppError is a 2xx response whose body reported a logical failure.
type AppError struct {
	Messages []string
	Fallback string
}

func (e *AppError) Error() string {
	if joined := strings.Join(e.Messages, ", "); joined != "" {
		return joined
	}
	return e.Fallback
}

// StatusCode returns the HTTP status carried by err, or 0 when none.
func StatusCode(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Status
	}
	return 0
}
