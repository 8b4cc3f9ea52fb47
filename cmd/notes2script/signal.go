package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals stop a running batch. Windows never delivers SIGTERM,
// so there only Ctrl+C applies.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// notifyContext derives a context canceled on the first shutdown signal.
// The returned stop releases the signal handler.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
