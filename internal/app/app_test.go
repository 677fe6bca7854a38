package app

import (
	"path/filepath"
	"testing"

	"github.com/ayusman/mudra/internal/catalog"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/intent"
	"github.com/ayusman/mudra/internal/store"
)

func newTestApp(t *testing.T) (*App, *store.Store) {
	t.Helper()

	tmpDir := t.TempDir()
	s, err := store.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a := New(Config{
		Store:        s,
		PluginDir:    tmpDir,
		CameraID:     0,
		MotionThresh: 1.0,
	})
	a.SetDetector(detector.NewMockDetector())

	return a, s
}

func TestApp_LoadCatalogSeedsDefaults(t *testing.T) {
	a, s := newTestApp(t)

	if err := a.LoadCatalog(); err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	if a.Catalog().Len() != 3 {
		t.Fatalf("expected 3 seeded items, got %d", a.Catalog().Len())
	}

	// A second load must not seed again
	if err := a.LoadCatalog(); err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	n, err := s.Items().Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 items after reload, got %d", n)
	}

	first, ok := a.CurrentItem()
	if !ok {
		t.Fatal("expected an item under the cursor")
	}
	if first.Name != "Sphere" {
		t.Errorf("expected cursor on Sphere, got %q", first.Name)
	}
}

func TestApp_ProcessFrameTracksAndNavigates(t *testing.T) {
	a, _ := newTestApp(t)
	if err := a.LoadCatalog(); err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	var changedTo []string
	a.OnChange(func(item catalog.Item, state control.ControlState) {
		changedTo = append(changedTo, item.Name)
	})

	open := detector.OpenPalmLandmarks()
	a.processFrame(&open, []detector.HandLandmarks{open}, 0)

	snap := a.Snapshot()
	if !snap.Tracking {
		t.Error("expected tracking snapshot with a hand present")
	}
	if len(snap.Hands) != 1 {
		t.Errorf("expected 1 hand in snapshot, got %d", len(snap.Hands))
	}

	// A fast rightward displacement reads as a swipe and advances the cursor
	moved := detector.Translated(detector.OpenPalmLandmarks(), 0.08, 0, 0)
	a.processFrame(&moved, []detector.HandLandmarks{moved}, 100)

	snap = a.Snapshot()
	if snap.State.CurrentIndex != 1 {
		t.Errorf("expected cursor at 1 after swipe, got %d", snap.State.CurrentIndex)
	}
	if len(changedTo) != 1 || changedTo[0] != "Nebula" {
		t.Errorf("expected change callback with Nebula, got %v", changedTo)
	}

	// Hand gone: snapshot flips to not tracking, state survives
	a.processFrame(nil, nil, 200)
	snap = a.Snapshot()
	if snap.Tracking {
		t.Error("expected non-tracking snapshot without a hand")
	}
	if snap.State.CurrentIndex != 1 {
		t.Errorf("cursor moved during absence: %d", snap.State.CurrentIndex)
	}
}

func TestApp_SetTuningPersists(t *testing.T) {
	a, s := newTestApp(t)

	tuning := control.DefaultTuning()
	tuning.ZoomAlpha = 0.1
	ic := intent.DefaultConfig()
	ic.SwingEnabled = true

	if err := a.SetTuning(tuning, ic); err != nil {
		t.Fatalf("SetTuning() error = %v", err)
	}

	// A fresh app over the same store picks the values up
	b := New(Config{Store: s})
	if err := b.LoadTuning(); err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}

	gotTuning, gotIC := b.Tuning()
	if gotTuning.ZoomAlpha != 0.1 {
		t.Errorf("expected persisted zoom alpha 0.1, got %f", gotTuning.ZoomAlpha)
	}
	if !gotIC.SwingEnabled {
		t.Error("expected persisted swing enablement")
	}
}

func TestApp_EnableToggle(t *testing.T) {
	a, _ := newTestApp(t)

	if a.IsEnabled() {
		t.Error("expected app disabled by default")
	}
	a.SetEnabled(true)
	if !a.IsEnabled() {
		t.Error("expected app enabled after SetEnabled(true)")
	}
}
