// Package daemon detaches the clock from its terminal and turns shutdown
// signals into context cancellation.
package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	godaemon "github.com/sevlyar/go-daemon"
)

// ShutdownSignals end the render loop.
var ShutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// IsDetached reports whether this process is the detached child.
func IsDetached() bool { return godaemon.WasReborn() }

// NotifyContext returns a context that is cancelled by the first shutdown
// signal. The notification is single-shot: once the context is done the
// default signal behavior is restored.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, ShutdownSignals...)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}
