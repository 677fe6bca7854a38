package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/intent"
	"github.com/ayusman/mudra/internal/plugin"
)

// runPipeline is the per-frame loop. One goroutine owns the whole path
// from camera read to control-state mutation, so the session sees frames
// strictly in order and never concurrently.
//
// Per tick:
//  1. Read a frame with its monotonic timestamp.
//  2. Motion gate decides idle vs active frame rate.
//  3. Hand detection (active mode only).
//  4. Session.Process applies continuous deltas and at most one intent.
//  5. Publish the snapshot; fire plugin bindings on accepted intents.
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	frameInterval := time.Second / time.Duration(capture.IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, ts, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			active, _ := a.gate.Update(frame)

			if active != activeMode {
				activeMode = active
				fps := capture.IdleFPS
				if active {
					fps = capture.ActiveFPS
				}
				a.camera.SetFPS(fps)
				frameInterval = time.Second / time.Duration(fps)
				ticker.Reset(frameInterval)
				if active {
					log.Println("Switched to active mode")
				} else {
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode || a.detector == nil {
				frame.Close()
				// No detection while idle: treat as an absent hand so
				// stale previous-frame references never survive an idle
				// stretch.
				a.processFrame(nil, nil, ts)
				continue
			}

			hands, err := a.detector.Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			var primary *detector.HandLandmarks
			if len(hands) > 0 {
				primary = &hands[0]
			}

			a.processFrame(primary, hands, ts)
		}
	}
}

// processFrame runs one session step and publishes the snapshot. hand is
// nil when no hand is present.
func (a *App) processFrame(hand *detector.HandLandmarks, hands []detector.HandLandmarks, ts int64) {
	a.mu.Lock()
	state, ev := a.session.Process(hand, ts)
	a.snapshot = Snapshot{
		State:        state,
		Tracking:     a.session.Phase() == control.Tracking,
		Hands:        hands,
		PinchHistory: a.session.PinchHistory(),
		TimestampMs:  ts,
	}
	item, haveItem := a.catalog.At(state.CurrentIndex)
	onChange := a.onChange
	a.mu.Unlock()

	if ev.IsNone() {
		return
	}

	log.Printf("Intent %s from %s (magnitude %.2f) -> index %d",
		ev.Direction, ev.Source, ev.Magnitude, state.CurrentIndex)

	if haveItem {
		if onChange != nil {
			onChange(item, state)
		}
		go a.fireBindings(ev, item.Name, state.CurrentIndex)
	}
}

// fireBindings executes the plugin bindings registered for the intent
// direction. Runs off the pipeline goroutine; a slow plugin must never
// stall frame processing.
func (a *App) fireBindings(ev intent.Event, object string, index int) {
	if a.config.Store == nil {
		return
	}

	bindings, err := a.config.Store.Bindings().ListByDirection(ev.Direction.String())
	if err != nil {
		log.Printf("Failed to load bindings: %v", err)
		return
	}

	for _, b := range bindings {
		p, err := a.pluginMgr.Get(b.PluginName)
		if err != nil {
			log.Printf("Binding %s references unknown plugin %q", b.ID, b.PluginName)
			continue
		}

		req := &plugin.Request{
			Action:    b.ActionName,
			Direction: ev.Direction.String(),
			Object:    object,
			Index:     index,
			Config:    b.Config,
		}

		resp, err := a.pluginExec.Execute(p, req)
		if err != nil {
			log.Printf("Plugin %s failed: %v", b.PluginName, err)
			continue
		}
		if !resp.Success {
			log.Printf("Plugin %s reported error: %s", b.PluginName, resp.Error)
		}
	}
}
