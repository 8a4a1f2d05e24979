package pipe

import (
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultInterval = time.Second
)

// Config encapsulates all tunables for Stream construction.
type Config struct {
	// SourceName is stamped on every envelope. Empty means DefaultSourceName.
	SourceName string
	// Interval is the pacing delay between envelopes. Zero means one second.
	Interval time.Duration
	// Now supplies envelope timestamps; defaults to time.Now in UTC.
	Now func() time.Time
	// Logger receives lifecycle and fault logs; nil disables logging.
	Logger *zerolog.Logger
	// Publisher receives lifecycle events; nil drops them.
	Publisher EventPublisher
}

func (c Config) withDefaults() Config {
	if c.SourceName == "" {
		c.SourceName = DefaultSourceName
	}
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
	if c.Now == nil {
		c.Now = func() time.Time { return time.Now().UTC() }
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	if c.Publisher == nil {
		c.Publisher = noopPublisher{}
	}
	return c
}
