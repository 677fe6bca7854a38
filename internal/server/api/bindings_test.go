package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayusman/mudra/internal/store"
)

func TestBindingHandler_CreateAndList(t *testing.T) {
	h := NewBindingHandler(newTestStore(t))

	body := `{"direction":"advance","plugin_name":"announce","action_name":"speak","config":{"voice":"Alex"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/bindings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created store.Binding
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated ID")
	}
	if !created.Enabled {
		t.Error("expected binding enabled by default")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/bindings", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var bindings []store.Binding
	if err := json.Unmarshal(rec.Body.Bytes(), &bindings); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(bindings) != 1 || bindings[0].PluginName != "announce" {
		t.Errorf("unexpected list: %+v", bindings)
	}
}

func TestBindingHandler_RejectsBadDirection(t *testing.T) {
	h := NewBindingHandler(newTestStore(t))

	body := `{"direction":"sideways","plugin_name":"announce","action_name":"speak"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bindings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestBindingHandler_Delete(t *testing.T) {
	s := newTestStore(t)
	h := NewBindingHandler(s)

	b := &store.Binding{ID: "b-1", Direction: "advance", PluginName: "announce", ActionName: "speak", Enabled: true}
	if err := s.Bindings().Create(b); err != nil {
		t.Fatalf("failed to seed binding: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/bindings/b-1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/bindings/b-1", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 on double delete, got %d", rec.Code)
	}
}
