package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/store"
)

// BindingHandler handles HTTP requests for intent-to-plugin bindings.
type BindingHandler struct {
	store *store.Store
}

// NewBindingHandler creates a new BindingHandler.
func NewBindingHandler(s *store.Store) *BindingHandler {
	return &BindingHandler{store: s}
}

// ServeHTTP routes requests to collection and item endpoints.
func (h *BindingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/bindings or /api/bindings/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/bindings")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case http.MethodDelete:
		h.delete(w, r, path)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type bindingRequest struct {
	Direction  string          `json:"direction"`
	PluginName string          `json:"plugin_name"`
	ActionName string          `json:"action_name"`
	Config     json.RawMessage `json:"config"`
	Enabled    *bool           `json:"enabled"`
}

func (h *BindingHandler) list(w http.ResponseWriter, r *http.Request) {
	bindings, err := h.store.Bindings().List()
	if err != nil {
		http.Error(w, "Failed to list bindings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, bindings)
}

func (h *BindingHandler) create(w http.ResponseWriter, r *http.Request) {
	var req bindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Direction != "advance" && req.Direction != "retreat" {
		http.Error(w, "Direction must be advance or retreat", http.StatusBadRequest)
		return
	}
	if req.PluginName == "" || req.ActionName == "" {
		http.Error(w, "Plugin name and action name are required", http.StatusBadRequest)
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	binding := &store.Binding{
		ID:         uuid.NewString(),
		Direction:  req.Direction,
		PluginName: req.PluginName,
		ActionName: req.ActionName,
		Config:     req.Config,
		Enabled:    enabled,
	}

	if err := h.store.Bindings().Create(binding); err != nil {
		http.Error(w, "Failed to create binding", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, binding)
}

func (h *BindingHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Bindings().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Binding not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete binding", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
