package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
)

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()

	s, err := store.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	application := app.New(app.Config{
		Store:        s,
		PluginDir:    filepath.Join(tmpDir, "plugins"),
		MotionThresh: 1.0,
	})
	application.SetDetector(detector.NewMockDetector())

	srv := server.New(server.Config{Store: s, App: application})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	t.Run("SeedCatalog", func(t *testing.T) {
		if err := application.LoadCatalog(); err != nil {
			t.Fatalf("LoadCatalog() error = %v", err)
		}
		if application.Catalog().Len() != 3 {
			t.Fatalf("expected 3 seeded items, got %d", application.Catalog().Len())
		}
	})

	var createdID string
	t.Run("CreateItem", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/catalog",
			"application/json",
			strings.NewReader(`{"name": "Torus", "payload": {"shape": "torus"}, "position": 3}`),
		)
		if err != nil {
			t.Fatalf("create item error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}

		var created struct {
			ID string `json:"id"`
		}
		json.NewDecoder(resp.Body).Decode(&created)
		createdID = created.ID

		// The mutation reloads the live catalog
		if application.Catalog().Len() != 4 {
			t.Errorf("expected live catalog resized to 4, got %d", application.Catalog().Len())
		}
	})

	t.Run("NavigateBySwipe", func(t *testing.T) {
		// Drive the session directly with a rightward swipe
		first := detector.OpenPalmLandmarks()
		second := detector.Translated(first, 0.08, 0, 0)

		session := application.Session()
		session.Process(&first, 0)
		state, ev := session.Process(&second, 100)

		if ev.IsNone() {
			t.Fatal("expected the swipe to fire an intent")
		}
		if state.CurrentIndex != 1 {
			t.Errorf("expected cursor at 1, got %d", state.CurrentIndex)
		}
	})

	t.Run("CreateBinding", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/bindings",
			"application/json",
			strings.NewReader(`{"direction": "advance", "plugin_name": "announce", "action_name": "speak"}`),
		)
		if err != nil {
			t.Fatalf("create binding error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}
	})

	t.Run("ReadTuning", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/tuning")
		if err != nil {
			t.Fatalf("get tuning error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var payload struct {
			Control struct {
				ZoomAlpha float64 `json:"zoomAlpha"`
			} `json:"control"`
		}
		json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Control.ZoomAlpha <= 0 {
			t.Errorf("expected a positive zoom alpha, got %f", payload.Control.ZoomAlpha)
		}
	})

	t.Run("DeleteItem", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/catalog/"+createdID, nil)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("delete item error = %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNoContent)
		}
		if application.Catalog().Len() != 3 {
			t.Errorf("expected live catalog back to 3, got %d", application.Catalog().Len())
		}
	})

	t.Run("APIStillWorks", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health check error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Error("health check failed after app operations")
		}
	})
}
