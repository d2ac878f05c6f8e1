package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Pinger is the subset of *sql.DB the health check needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler exposes the root and store-health endpoints.
type Handler struct{ db Pinger }

func NewHandler(db Pinger) *Handler { return &Handler{db: db} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/", h.root)
	r.Get("/db/status", h.dbStatus)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

func (h *Handler) dbStatus(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"db": "unreachable"})
		return
	}
	respond(w, http.StatusOK, map[string]string{"db": "ok"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
