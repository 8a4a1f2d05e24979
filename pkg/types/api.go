package types

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Host lifecycle state (idle, running, stopping, stopped).
	// example: running
	State string `json:"state" example:"running"`
	// Logical point name stamped on every envelope.
	// example: SimulatedPoint
	SourceName string `json:"source_name" example:"SimulatedPoint"`
	// Identifier of the current or most recent generation run.
	// example: 0f8e7a4c-3b1d-4c55-9a7e-2f6d1b0c9e11
	RunID string `json:"run_id,omitempty" example:"0f8e7a4c-3b1d-4c55-9a7e-2f6d1b0c9e11"`
	// Whether a generation loop is active.
	// example: true
	Running bool `json:"running" example:"true"`
	// Whether cancellation has been requested.
	// example: false
	Stopped bool `json:"stopped" example:"false"`
	// Total envelopes delivered to observers.
	// example: 42
	Emitted uint64 `json:"emitted" example:"42"`
	// Kind of the last terminal notification (completed, error).
	// example: completed
	LastTerminal string `json:"last_terminal,omitempty" example:"completed"`
	// Error carried by the last OnError notification, if any.
	LastError string `json:"last_error,omitempty"`
	// Pacing interval between envelopes in milliseconds.
	// example: 1000
	IntervalMS int64 `json:"interval_ms" example:"1000"`
	// Uptime of the host in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// ControlResponse is returned by POST /start and POST /stop.
type ControlResponse struct {
	// Resulting host state.
	// example: running
	State string `json:"state" example:"running"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: service already stopped
	Error string `json:"error" example:"service already stopped"`
	// HTTP status code.
	// example: 409
	Code int `json:"code" example:"409"`
}
