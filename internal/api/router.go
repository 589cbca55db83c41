package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/avendel/folio/internal/persist"
	"github.com/avendel/folio/internal/savestatus"
	"github.com/avendel/folio/internal/sse"
	"github.com/avendel/folio/internal/store"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// events, if non-nil, is also mounted at GET /events inside the auth group.
func NewRouter(st *store.Store, bridge *persist.Bridge, status *savestatus.Tracker, events *sse.Broker, authEnabled bool, token string) chi.Router {
	h := NewHandler(st, bridge, status, events)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Snapshot + editor operations.
	r.Get("/portfolio", h.GetPortfolio)
	r.Put("/portfolio/personal", h.UpdatePersonal)
	r.Post("/portfolio/{collection}", h.AddItem)
	r.Patch("/portfolio/{collection}/{id}", h.UpdateItem)
	r.Delete("/portfolio/{collection}/{id}", h.DeleteItem)

	// Persistence.
	r.Post("/save", h.Save)
	r.Get("/save/status", h.SaveStatus)
	r.Post("/save/dismiss", h.DismissSave)

	// SSE endpoint (protected by same auth middleware).
	if events != nil {
		r.Get("/events", events.ServeHTTP)
	}

	return r
}
