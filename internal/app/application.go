package app

import (
	"context"
	"log/slog"

	"techexpo.dev/landing/internal/appconf"
	"techexpo.dev/landing/internal/docstore"
)

// Store is the shared document store handle as the handlers see it.
// *docstore.Client satisfies it.
type Store interface {
	Name() string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	// Store is nil when the startup connection attempt failed.
	Store Store
}

// IsDevelopment reports whether debug surfaces may be exposed.
func (a *Application) IsDevelopment() bool {
	return a.Config.Env() != appconf.Production
}

// StoreName is the database the handle points at, or "" without a handle.
func (a *Application) StoreName() string {
	if a.Store == nil {
		return ""
	}
	return a.Store.Name()
}

// PingStore reports whether the document store is reachable.
func (a *Application) PingStore(ctx context.Context) error {
	if a.Store == nil {
		return docstore.ErrNotConnected
	}
	return a.Store.Ping(ctx)
}

// CloseStore disconnects the handle, if any.
func (a *Application) CloseStore(ctx context.Context) error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close(ctx)
}
