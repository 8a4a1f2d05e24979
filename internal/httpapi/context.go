package httpapi

import (
	"context"
)

// shutdownCtx is canceled when the serve command begins its graceful
// shutdown, so a /stop request still waiting on the generation loop gives up
// with the process instead of holding the listener open.
var shutdownCtx = context.Background()

// SetBaseContext installs the serve command's shutdown context. A nil ctx
// restores context.Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	shutdownCtx = ctx
}

// joinContexts derives the context for a control request: it ends when the
// client goes away (req), the process shuts down (base), or the caller
// releases it with the returned cancel.
func joinContexts(req, base context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(req)
	stop := context.AfterFunc(base, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
