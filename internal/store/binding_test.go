package store

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestBindingRepository_CreateAndList(t *testing.T) {
	s := newTestStore(t)
	repo := s.Bindings()

	b := &Binding{
		ID:         "b-1",
		Direction:  "advance",
		PluginName: "announce",
		ActionName: "speak",
		Config:     json.RawMessage(`{"voice":"Alex"}`),
		Enabled:    true,
	}
	if err := repo.Create(b); err != nil {
		t.Fatalf("failed to create binding: %v", err)
	}

	bindings, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list bindings: %v", err)
	}
	if len(bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(bindings))
	}
	if bindings[0].PluginName != "announce" || !bindings[0].Enabled {
		t.Errorf("unexpected binding: %+v", bindings[0])
	}
}

func TestBindingRepository_ListByDirection(t *testing.T) {
	s := newTestStore(t)
	repo := s.Bindings()

	for _, b := range []*Binding{
		{ID: "b-1", Direction: "advance", PluginName: "announce", ActionName: "speak", Enabled: true},
		{ID: "b-2", Direction: "retreat", PluginName: "announce", ActionName: "speak", Enabled: true},
		{ID: "b-3", Direction: "advance", PluginName: "media-keys", ActionName: "step", Enabled: false},
	} {
		if err := repo.Create(b); err != nil {
			t.Fatalf("failed to create binding: %v", err)
		}
	}

	// Disabled bindings are filtered out
	bindings, err := repo.ListByDirection("advance")
	if err != nil {
		t.Fatalf("failed to list bindings: %v", err)
	}
	if len(bindings) != 1 {
		t.Fatalf("expected 1 enabled advance binding, got %d", len(bindings))
	}
	if bindings[0].ID != "b-1" {
		t.Errorf("expected binding b-1, got %s", bindings[0].ID)
	}
}

func TestBindingRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Bindings()

	b := &Binding{ID: "b-1", Direction: "advance", PluginName: "announce", ActionName: "speak", Enabled: true}
	if err := repo.Create(b); err != nil {
		t.Fatalf("failed to create binding: %v", err)
	}

	if err := repo.Delete("b-1"); err != nil {
		t.Fatalf("failed to delete binding: %v", err)
	}

	if err := repo.Delete("b-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestBindingRepository_RejectsBadDirection(t *testing.T) {
	s := newTestStore(t)

	b := &Binding{ID: "b-1", Direction: "sideways", PluginName: "announce", ActionName: "speak", Enabled: true}
	if err := s.Bindings().Create(b); err == nil {
		t.Error("expected the direction CHECK constraint to reject the insert")
	}
}
