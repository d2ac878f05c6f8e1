package transaction

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes sale transaction HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", h.createTransaction)
		r.Get("/{id}", h.getTransaction)
		r.Post("/{id}/details", h.addDetails)
	})
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}
	t, err := h.service.CreateTransaction(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusCreated, t)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	trdID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "transaction id must be an integer"})
		return
	}
	t, err := h.service.GetTransaction(r.Context(), trdID)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, t)
}

// addDetails accepts either a single detail object or a list of them and
// answers in the same shape the caller used.
func (h *Handler) addDetails(w http.ResponseWriter, r *http.Request) {
	trdID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "transaction id must be an integer"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	var reqs []AddDetailRequest
	batch := isJSONArray(body)
	if batch {
		err = json.Unmarshal(body, &reqs)
	} else {
		var single AddDetailRequest
		if err = json.Unmarshal(body, &single); err == nil {
			reqs = []AddDetailRequest{single}
		}
	}
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	details, err := h.service.AddDetails(r.Context(), trdID, reqs)
	if err != nil {
		writeError(w, err)
		return
	}
	if batch {
		respond(w, http.StatusCreated, details)
		return
	}
	respond(w, http.StatusCreated, details[0])
}

func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": "transaction not found"})
	case errors.Is(err, ErrProductNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": "product not found"})
	case errors.Is(err, ErrInvalidData):
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
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
