// Package host runs a pipe.Stream as a long-lived service with Start/Stop
// hooks, the shape expected by service managers and the HTTP control surface.
//
// Stop cancels the stream, joins its generation loop within the caller's
// deadline and then runs the configured cleanup action exactly once.
package host
