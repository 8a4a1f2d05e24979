package host

import (
	"github.com/rs/zerolog"

	"datapipe/internal/pipe"
)

// NewLogObserver returns an observer that writes each float envelope and the
// terminal notification to log. onDone, if set, runs after the terminal call.
// A non-float payload is returned from OnNext as a *pipe.NarrowingError.
func NewLogObserver(log zerolog.Logger, onDone func(err error)) pipe.Observer {
	return pipe.ObserverFuncs{
		Next: func(env pipe.Envelope) error {
			e, err := pipe.Narrow[pipe.Float](env)
			if err != nil {
				return err
			}
			log.Info().
				Str("action", e.Action.String()).
				Str("point", e.SourceName).
				Float64("value", float64(e.Value)).
				Str("status", e.Status).
				Time("timestamp", e.Timestamp).
				Msg("event")
			return nil
		},
		Error: func(err error) {
			log.Error().Err(err).Msg("stream error")
			if onDone != nil {
				onDone(err)
			}
		},
		Completed: func() {
			log.Info().Msg("stream completed")
			if onDone != nil {
				onDone(nil)
			}
		},
	}
}
