package host

import (
	"errors"
	"net/http"
)

// stoppedError signals a Start after Stop; the stream cannot be re-armed.
type stoppedError struct{}

func (stoppedError) Error() string { return "service already stopped" }

// StatusCode maps to 409 Conflict for the HTTP layer.
func (stoppedError) StatusCode() int { return http.StatusConflict }

// ErrStopped is returned by Start once Stop has been called.
var ErrStopped error = stoppedError{}

// IsStopped reports whether err indicates the service was already stopped.
func IsStopped(err error) bool { return errors.Is(err, ErrStopped) }
