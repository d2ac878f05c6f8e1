package product

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes product master HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/products/{code}", h.getProduct)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	p, err := h.service.GetProductByCode(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": "product not found"})
	case errors.Is(err, ErrStoreUnavailable):
		respond(w, http.StatusInternalServerError, map[string]string{"error": "store unavailable"})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
