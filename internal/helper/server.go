// Package helper implements the save server: the minimal local process that
// accepts serialized portfolio text from the editor and overwrites the data
// file on disk with it, verbatim.
package helper

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avendel/folio/internal/storage"
)

// saveRequest mirrors the editor's request body.
type saveRequest struct {
	Content string `json:"content"`
}

// Handler writes incoming content to the data file.
type Handler struct {
	file        *storage.DataFile
	allowOrigin string
}

// NewHandler creates a save handler writing to file. allowOrigin is sent as
// the CORS origin; the editor page runs on a different local port.
func NewHandler(file *storage.DataFile, allowOrigin string) *Handler {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return &Handler{file: file, allowOrigin: allowOrigin}
}

// NewRouter creates the save-server router.
func NewRouter(file *storage.DataFile, allowOrigin string) chi.Router {
	h := NewHandler(file, allowOrigin)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.cors)

	r.Post("/api/save-portfolio-data", h.Save)
	r.Options("/api/save-portfolio-data", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func (h *Handler) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.allowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// Save handles POST /api/save-portfolio-data: overwrite the data file with
// the request's content, byte for byte.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no content provided"})
		return
	}

	if err := h.file.Write([]byte(req.Content)); err != nil {
		slog.Error("save server: write failed",
			slog.String("path", h.file.Path()),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save file"})
		return
	}

	slog.Info("portfolio data saved", slog.String("path", h.file.Path()))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}
