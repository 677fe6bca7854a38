// Package api provides the HTTP API handlers for the mudra control system.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/store"
)

// CatalogReloader is notified after catalog mutations so the live cursor
// can be resized.
type CatalogReloader interface {
	LoadCatalog() error
}

// CatalogHandler handles HTTP requests for catalog item resources.
type CatalogHandler struct {
	store    *store.Store
	reloader CatalogReloader
}

// NewCatalogHandler creates a new CatalogHandler. reloader may be nil.
func NewCatalogHandler(s *store.Store, reloader CatalogReloader) *CatalogHandler {
	return &CatalogHandler{store: s, reloader: reloader}
}

// ServeHTTP routes requests to collection and item endpoints.
func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/catalog or /api/catalog/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/catalog")
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

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type itemRequest struct {
	Name     string          `json:"name"`
	Payload  json.RawMessage `json:"payload"`
	Position int             `json:"position"`
}

type itemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Payload  json.RawMessage `json:"payload"`
	Position int             `json:"position"`
}

func toItemResponse(it *store.Item) itemResponse {
	return itemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Payload:  it.Payload,
		Position: it.Position,
	}
}

func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.Items().List()
	if err != nil {
		http.Error(w, "Failed to list items", http.StatusInternalServerError)
		return
	}

	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = toItemResponse(it)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	item := &store.Item{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Payload:  req.Payload,
		Position: req.Position,
	}

	if err := h.store.Items().Create(item); err != nil {
		http.Error(w, "Failed to create item", http.StatusInternalServerError)
		return
	}

	h.reload()
	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

func (h *CatalogHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	item, err := h.store.Items().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

func (h *CatalogHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item := &store.Item{
		ID:       id,
		Name:     req.Name,
		Payload:  req.Payload,
		Position: req.Position,
	}

	if err := h.store.Items().Update(item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update item", http.StatusInternalServerError)
		return
	}

	h.reload()
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

func (h *CatalogHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Items().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete item", http.StatusInternalServerError)
		return
	}

	h.reload()
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) reload() {
	if h.reloader == nil {
		return
	}
	if err := h.reloader.LoadCatalog(); err != nil {
		log.Printf("Failed to reload catalog: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
