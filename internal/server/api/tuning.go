package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/intent"
)

// TuningTarget exposes the live tuning values of the control pipeline.
type TuningTarget interface {
	Tuning() (control.Tuning, intent.Config)
	SetTuning(control.Tuning, intent.Config) error
}

// TuningHandler handles HTTP requests for control and intent tuning.
type TuningHandler struct {
	target TuningTarget
}

// NewTuningHandler creates a new TuningHandler over the given target.
func NewTuningHandler(target TuningTarget) *TuningHandler {
	return &TuningHandler{target: target}
}

type tuningPayload struct {
	Control control.Tuning `json:"control"`
	Intent  intent.Config  `json:"intent"`
}

// ServeHTTP handles GET and PUT requests to /api/tuning.
func (h *TuningHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		t, ic := h.target.Tuning()
		writeJSON(w, http.StatusOK, tuningPayload{Control: t, Intent: ic})
	case http.MethodPut:
		// Start from the current values so a partial body only
		// overrides the fields it names.
		t, ic := h.target.Tuning()
		payload := tuningPayload{Control: t, Intent: ic}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := h.target.SetTuning(payload.Control, payload.Intent); err != nil {
			http.Error(w, "Failed to save tuning", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, payload)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
