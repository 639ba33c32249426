package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is implemented by the HTTP server.
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer is implemented by the database pool.
type Closer interface {
	Close()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	DB     Closer
}

// GracefulShutdown stops the HTTP server first so in-flight requests can
// finish against a live pool, then closes the pool.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DB != nil {
		slog.Info(LogMsgClosingDatabasePool)
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
