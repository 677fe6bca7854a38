package control

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/feature"
)

// handAt builds a feature frame with the given non-thumb extension and
// wrist position. The index tip rides a fixed offset from the wrist.
func handAt(ext, wx, wy float64) feature.Features {
	var f feature.Features
	for finger := feature.Thumb; finger < feature.NumFingers; finger++ {
		f.Extension[finger] = ext
	}
	f.Wrist = detector.Point3D{X: wx, Y: wy}
	f.IndexTip = detector.Point3D{X: wx + 0.05, Y: wy - 0.3}
	return f
}

func TestMapper_ZoomStaysInRange(t *testing.T) {
	m := NewMapper(DefaultTuning())

	exts := []float64{0, 1, 0.5, 0, 0, 1, 1, 0.2, 0.9, 0}
	for i := 0; i < 500; i++ {
		out := m.Step(handAt(exts[i%len(exts)], 0.5, 0.5))
		if out.Zoom < ZoomMin || out.Zoom > ZoomMax {
			t.Fatalf("frame %d: zoom %f outside [%f, %f]", i, out.Zoom, ZoomMin, ZoomMax)
		}
	}
}

func TestMapper_ZoomStepBounded(t *testing.T) {
	// Smoothing caps the per-frame zoom change even when the target jumps
	// between the extremes.
	m := NewMapper(DefaultTuning())
	maxStep := (ZoomMax - ZoomMin) * DefaultTuning().ZoomAlpha

	prev := m.Zoom()
	for i := 0; i < 100; i++ {
		ext := 0.0
		if i%2 == 0 {
			ext = 1.0
		}
		out := m.Step(handAt(ext, 0.5, 0.5))
		if d := math.Abs(out.Zoom - prev); d > maxStep+1e-9 {
			t.Fatalf("frame %d: zoom jumped by %f, max allowed %f", i, d, maxStep)
		}
		prev = out.Zoom
	}
}

func TestMapper_ClosedHandZoomsIn(t *testing.T) {
	// A held fist eases zoom monotonically toward the maximum without
	// overshooting.
	m := NewMapper(DefaultTuning())

	prev := m.Zoom()
	var last float64
	for i := 0; i < 200; i++ {
		out := m.Step(handAt(0, 0.5, 0.5))
		if out.Zoom < prev-1e-12 {
			t.Fatalf("frame %d: zoom moved backwards: %f -> %f", i, prev, out.Zoom)
		}
		if out.Zoom > ZoomMax {
			t.Fatalf("frame %d: zoom overshot to %f", i, out.Zoom)
		}
		prev = out.Zoom
		last = out.Zoom
	}

	if last < 1.9 {
		t.Errorf("expected zoom to approach %f, got %f", ZoomMax, last)
	}
}

func TestMapper_FirstFrameHasNoRotation(t *testing.T) {
	m := NewMapper(DefaultTuning())

	out := m.Step(handAt(1, 0.7, 0.3))
	if out.DeltaX != 0 || out.DeltaY != 0 || out.DeltaZ != 0 {
		t.Errorf("expected zero rotation deltas on first frame, got %+v", out)
	}
}

func TestMapper_WristMotionRotates(t *testing.T) {
	m := NewMapper(DefaultTuning())

	m.Step(handAt(1, 0.5, 0.5))
	out := m.Step(handAt(1, 0.52, 0.5))

	if out.DeltaY <= 0 {
		t.Errorf("expected positive Y rotation for rightward motion, got %f", out.DeltaY)
	}
	if out.DeltaZ != 0 {
		t.Errorf("expected no Z rotation without orientation change, got %f", out.DeltaZ)
	}
}

func TestMapper_FistBoostsWristLayer(t *testing.T) {
	// The same wrist displacement rotates more with a closed hand.
	open := NewMapper(DefaultTuning())
	open.Step(handAt(1, 0.5, 0.5))
	openOut := open.Step(handAt(1, 0.52, 0.5))

	closed := NewMapper(DefaultTuning())
	closed.Step(handAt(0, 0.5, 0.5))
	closedOut := closed.Step(handAt(0, 0.52, 0.5))

	if closedOut.DeltaY <= openOut.DeltaY {
		t.Errorf("expected fist boost: closed %f should exceed open %f",
			closedOut.DeltaY, openOut.DeltaY)
	}
}

func TestMapper_OrientationDeadZone(t *testing.T) {
	m := NewMapper(DefaultTuning())

	f1 := handAt(1, 0.5, 0.5)
	f1.Orientation = feature.Orientation{Roll: 10}
	f2 := f1
	f2.Orientation = feature.Orientation{Roll: 10.5}

	m.Step(f1)
	if out := m.Step(f2); out.DeltaZ != 0 {
		t.Errorf("0.5 degree roll should fall in the dead zone, got DeltaZ %f", out.DeltaZ)
	}

	f3 := f1
	f3.Orientation = feature.Orientation{Roll: 16}
	if out := m.Step(f3); out.DeltaZ <= 0 {
		t.Errorf("expected positive DeltaZ for a 5.5 degree roll, got %f", out.DeltaZ)
	}
}

func TestMapper_HeadingWrapNoSpike(t *testing.T) {
	// Crossing the 0/360 boundary is a small rotation, not a full turn.
	m := NewMapper(DefaultTuning())

	f1 := handAt(1, 0.5, 0.5)
	f1.Orientation = feature.Orientation{Heading: 359}
	f2 := f1
	f2.Orientation = feature.Orientation{Heading: 2}

	m.Step(f1)
	out := m.Step(f2)

	// Shortest path is +3 degrees; 0.8 sensitivity and 0.25 smoothing keep
	// the first-frame output well under a degree.
	if math.Abs(out.DeltaY) > 3 {
		t.Errorf("heading wrap produced a %f degree spike", out.DeltaY)
	}
}

func TestMapper_ResetKeepsZoom(t *testing.T) {
	m := NewMapper(DefaultTuning())

	for i := 0; i < 50; i++ {
		m.Step(handAt(0, 0.5, 0.5))
	}
	zoomBefore := m.Zoom()
	if zoomBefore <= DefaultZoom {
		t.Fatalf("expected zoom above default before reset, got %f", zoomBefore)
	}

	m.Reset()

	if m.Zoom() != zoomBefore {
		t.Errorf("reset changed zoom: %f -> %f", zoomBefore, m.Zoom())
	}

	// The frame after a reset has no previous sample, so a large jump in
	// position produces no rotation.
	out := m.Step(handAt(0, 0.9, 0.1))
	if out.DeltaX != 0 || out.DeltaY != 0 || out.DeltaZ != 0 {
		t.Errorf("expected zero deltas on first frame after reset, got %+v", out)
	}
}
