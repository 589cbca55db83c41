package internal

import "github.com/avendel/folio/internal/persist"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	clipboard persist.Clipboard
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithClipboard overrides the system clipboard used by the persistence
// bridge. Intended for tests.
func WithClipboard(clip persist.Clipboard) Option {
	return func(a *application) {
		a.clipboard = clip
	}
}
