//go:build !swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
)

// MountSwagger leaves /swagger unrouted in default builds so the control
// surface carries no UI assets. Build with -tags=swagger to serve it.
func MountSwagger(r chi.Router) {}
