package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avendel/folio/internal/persist"
	"github.com/avendel/folio/internal/savestatus"
	"github.com/avendel/folio/internal/sse"
	"github.com/avendel/folio/internal/store"
)

// Collection path segments.
const (
	collectionProjects   = "projects"
	collectionExperience = "experience"
	collectionSkills     = "skills"
)

// Handler holds API route handlers.
type Handler struct {
	store  *store.Store
	bridge *persist.Bridge
	status *savestatus.Tracker
	events *sse.Broker
}

// NewHandler creates a new Handler.
func NewHandler(st *store.Store, bridge *persist.Bridge, status *savestatus.Tracker, events *sse.Broker) *Handler {
	return &Handler{store: st, bridge: bridge, status: status, events: events}
}

func (h *Handler) publishEdit() {
	if h.events != nil {
		h.events.PublishEdit()
	}
}

// GetPortfolio handles GET /api/portfolio.
func (h *Handler) GetPortfolio(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// UpdatePersonal handles PUT /api/portfolio/personal.
func (h *Handler) UpdatePersonal(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req UpdatePersonalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Field == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("field is required"))
		return
	}
	// Unknown fields are a no-op, not an error: the panel sends free-form
	// field names and the editor must never hard-fail mid-edit.
	if h.store.UpdatePersonalInfo(req.Field, req.Value) {
		h.publishEdit()
	}
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// AddItem handles POST /api/portfolio/{collection}.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var id string
	switch chi.URLParam(r, "collection") {
	case collectionProjects:
		id = h.store.AddProject()
	case collectionExperience:
		id = h.store.AddExperience()
	case collectionSkills:
		id = h.store.AddSkill()
	default:
		writeJSON(w, http.StatusNotFound, errorBody("unknown collection"))
		return
	}
	h.publishEdit()
	writeJSON(w, http.StatusCreated, AddItemResponse{ID: id})
}

// UpdateItem handles PATCH /api/portfolio/{collection}/{id}.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	id := chi.URLParam(r, "id")

	switch chi.URLParam(r, "collection") {
	case collectionProjects:
		var patch store.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
			return
		}
		h.store.UpdateProject(id, patch)
	case collectionExperience:
		var patch store.ExperiencePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
			return
		}
		h.store.UpdateExperience(id, patch)
	case collectionSkills:
		var patch store.SkillPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
			return
		}
		h.store.UpdateSkill(id, patch)
	default:
		writeJSON(w, http.StatusNotFound, errorBody("unknown collection"))
		return
	}
	h.publishEdit()
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// DeleteItem handles DELETE /api/portfolio/{collection}/{id}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	switch chi.URLParam(r, "collection") {
	case collectionProjects:
		h.store.DeleteProject(id)
	case collectionExperience:
		h.store.DeleteExperience(id)
	case collectionSkills:
		h.store.DeleteSkill(id)
	default:
		writeJSON(w, http.StatusNotFound, errorBody("unknown collection"))
		return
	}
	h.publishEdit()
	w.WriteHeader(http.StatusNoContent)
}

// Save handles POST /api/save: serialize the snapshot and persist it through
// the bridge. Transport failures surface as the clipboard result; only a
// failed clipboard write is reported as an error.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	h.status.Begin()
	if h.events != nil {
		h.events.PublishSave("started", nil)
	}

	res, err := h.bridge.Save(r.Context(), h.store.Snapshot())
	if err != nil {
		slog.Error("save failed", slog.String("error", err.Error()))
		h.status.Fail("save failed: start the save server and retry")
		if h.events != nil {
			h.events.PublishSave("failed", map[string]string{"error": err.Error()})
		}
		writeJSON(w, http.StatusBadGateway, errorBody("save failed: start the save server and retry"))
		return
	}

	h.status.Succeed(res == persist.SavedToFile)
	if h.events != nil {
		h.events.PublishSave("completed", map[string]string{"result": string(res)})
	}
	writeJSON(w, http.StatusOK, SaveResponse{Result: string(res)})
}

// SaveStatus handles GET /api/save/status.
func (h *Handler) SaveStatus(w http.ResponseWriter, _ *http.Request) {
	state, message := h.status.Status()
	writeJSON(w, http.StatusOK, SaveStatusResponse{State: string(state), Message: message})
}

// DismissSave handles POST /api/save/dismiss: clears a failed save state.
func (h *Handler) DismissSave(w http.ResponseWriter, _ *http.Request) {
	h.status.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}
