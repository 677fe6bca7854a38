// Package app wires the capture, detection and control layers into the
// per-frame pipeline and exposes snapshots to the server and tray.
package app

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/catalog"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/feature"
	"github.com/ayusman/mudra/internal/intent"
	"github.com/ayusman/mudra/internal/plugin"
	"github.com/ayusman/mudra/internal/store"
	"github.com/google/uuid"
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	PluginDir    string
	CameraID     int
	MotionThresh float64
}

// Snapshot is the read-only per-frame view handed to external consumers:
// the control state for the renderer plus the raw hands and pinch history
// for display.
type Snapshot struct {
	State        control.ControlState     `json:"state"`
	Tracking     bool                     `json:"tracking"`
	Hands        []detector.HandLandmarks `json:"hands"`
	PinchHistory []feature.PinchSample    `json:"pinchHistory"`
	TimestampMs  int64                    `json:"timestamp_ms"`
}

// App is the main application orchestrating the gesture control pipeline.
type App struct {
	config     Config
	camera     capture.Camera
	gate       *capture.Gate
	detector   detector.Detector
	session    *control.Session
	catalog    *catalog.Catalog
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor

	enabled  bool
	snapshot Snapshot
	onChange func(item catalog.Item, state control.ControlState)
	mu       sync.RWMutex
	stopCh   chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		gate:       capture.NewGate(config.MotionThresh),
		session:    control.NewSession(control.DefaultTuning(), intent.DefaultConfig(), 0),
		catalog:    catalog.New(nil),
		pluginMgr:  plugin.NewManager(config.PluginDir),
		pluginExec: plugin.NewExecutor(5000), // 5 second timeout for plugin execution
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables gesture control.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnChange registers a callback fired after the catalog cursor moves.
func (a *App) OnChange(fn func(item catalog.Item, state control.ControlState)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onChange = fn
}

// defaultItems seeds the catalog on first run. Payloads are opaque
// renderer hints.
var defaultItems = []struct {
	name    string
	payload string
}{
	{"Sphere", `{"shape":"sphere"}`},
	{"Nebula", `{"shape":"irregular"}`},
	{"Ellipsoid", `{"shape":"ellipsoid"}`},
}

// LoadCatalog loads catalog items from the database, seeding the defaults
// on first run, and sizes the session cursor accordingly.
func (a *App) LoadCatalog() error {
	if a.config.Store == nil {
		return nil
	}

	repo := a.config.Store.Items()

	n, err := repo.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		for i, d := range defaultItems {
			item := &store.Item{
				ID:       uuid.NewString(),
				Name:     d.name,
				Payload:  json.RawMessage(d.payload),
				Position: i,
			}
			if err := repo.Create(item); err != nil {
				return err
			}
		}
	}

	items, err := repo.List()
	if err != nil {
		return err
	}

	catItems := make([]catalog.Item, len(items))
	for i, it := range items {
		catItems[i] = catalog.Item{
			ID:       it.ID,
			Name:     it.Name,
			Payload:  it.Payload,
			Position: it.Position,
		}
	}

	a.mu.Lock()
	a.catalog = catalog.New(catItems)
	a.session.SetCatalogLen(a.catalog.Len())
	a.mu.Unlock()

	log.Printf("Loaded %d catalog items from database", len(catItems))
	return nil
}

// LoadTuning applies persisted tuning settings, if any.
func (a *App) LoadTuning() error {
	if a.config.Store == nil {
		return nil
	}

	settings := a.config.Store.Settings()

	var tuning control.Tuning
	switch err := settings.GetJSON(store.SettingControlTuning, &tuning); err {
	case nil:
		a.mu.Lock()
		a.session.SetTuning(tuning)
		a.mu.Unlock()
	case store.ErrNotFound:
	default:
		return err
	}

	var ic intent.Config
	switch err := settings.GetJSON(store.SettingIntentConfig, &ic); err {
	case nil:
		a.mu.Lock()
		a.session.SetIntentConfig(ic)
		a.mu.Unlock()
	case store.ErrNotFound:
	default:
		return err
	}

	return nil
}

// DiscoverPlugins scans the plugin directory and loads available plugins.
func (a *App) DiscoverPlugins() error {
	return a.pluginMgr.Discover()
}

// Start begins the control pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(capture.IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Control pipeline started")
	return nil
}

// Stop halts the control pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.gate.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Control pipeline stopped")
}

// Snapshot returns the latest per-frame snapshot.
func (a *App) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// CurrentItem returns the catalog item under the cursor.
func (a *App) CurrentItem() (catalog.Item, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog.At(a.session.State().CurrentIndex)
}

// Catalog returns the loaded catalog.
func (a *App) Catalog() *catalog.Catalog {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog
}

// Session returns the control session. The pipeline goroutine is the only
// writer; external callers must go through App accessors.
func (a *App) Session() *control.Session {
	return a.session
}

// Tuning returns the active control tuning and intent configuration.
func (a *App) Tuning() (control.Tuning, intent.Config) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session.Tuning(), a.session.IntentConfig()
}

// SetTuning applies and persists new tuning values.
func (a *App) SetTuning(t control.Tuning, ic intent.Config) error {
	a.mu.Lock()
	a.session.SetTuning(t)
	a.session.SetIntentConfig(ic)
	a.mu.Unlock()

	if a.config.Store == nil {
		return nil
	}
	settings := a.config.Store.Settings()
	if err := settings.SetJSON(store.SettingControlTuning, t); err != nil {
		return err
	}
	return settings.SetJSON(store.SettingIntentConfig, ic)
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Gate returns the motion gate instance.
func (a *App) Gate() *capture.Gate {
	return a.gate
}

// PluginManager returns the plugin manager.
func (a *App) PluginManager() *plugin.Manager {
	return a.pluginMgr
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
