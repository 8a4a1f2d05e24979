package httpapi

import "time"

// stopTimeout bounds how long POST /stop waits for the generation loop.
// Zero means only the request and server contexts apply.
var stopTimeout time.Duration

// SetStopTimeout sets the /stop join timeout (<=0 disables).
func SetStopTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	stopTimeout = d
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}
