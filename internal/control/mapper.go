package control

import (
	"math"

	"github.com/ayusman/mudra/internal/feature"
)

// Continuous is the per-frame output of the mapper: the smoothed absolute
// zoom plus rotation deltas in degrees for the three axes.
type Continuous struct {
	Zoom   float64
	DeltaX float64
	DeltaY float64
	DeltaZ float64
}

// smoother is a one-value exponential moving average.
type smoother struct {
	v float64
}

func (s *smoother) step(raw, alpha float64) float64 {
	s.v += (raw - s.v) * alpha
	return s.v
}

func (s *smoother) reset() {
	s.v = 0
}

// Mapper converts features and their frame-to-frame deltas into continuous
// control values. Rotation is the sum of three independently smoothed
// layers: fingertip movement for fine control, wrist translation for
// coarse control, and palm-orientation change. The layers are never
// re-normalized against each other, so fine and coarse control coexist.
type Mapper struct {
	tuning Tuning

	zoom float64

	fingerX, fingerY          smoother
	wristX, wristY            smoother
	orientX, orientY, orientZ smoother

	prev    feature.Features
	hasPrev bool
}

// NewMapper creates a Mapper starting at the default zoom level.
func NewMapper(t Tuning) *Mapper {
	return &Mapper{tuning: t, zoom: DefaultZoom}
}

// SetTuning replaces the mapping constants.
func (m *Mapper) SetTuning(t Tuning) {
	m.tuning = t
}

// Tuning returns the active mapping constants.
func (m *Mapper) Tuning() Tuning {
	return m.tuning
}

// Step maps one frame of features. On the first frame after the hand
// reappears there is no previous sample, so every rotation delta is zero;
// zoom still eases toward its target since it is not delta-based.
func (m *Mapper) Step(f feature.Features) Continuous {
	t := m.tuning

	// Zoom: open hand = zoomed out, closed hand = zoomed in, smoothed so
	// per-frame extension noise never shows up as a jump.
	avgExt := f.Extension.AvgNonThumb()
	target := ZoomMin + (ZoomMax-ZoomMin)*(1-avgExt)
	m.zoom += (target - m.zoom) * t.ZoomAlpha

	out := Continuous{Zoom: m.zoom}

	if m.hasPrev {
		// Fine layer: index fingertip movement.
		fdx := f.IndexTip.X - m.prev.IndexTip.X
		fdy := f.IndexTip.Y - m.prev.IndexTip.Y
		out.DeltaY += m.fingerY.step(fdx*t.FingerSensitivity, t.FingerSmoothing)
		out.DeltaX += m.fingerX.step(fdy*t.FingerSensitivity, t.FingerSmoothing)

		// Coarse layer: wrist translation, boosted as the hand closes so a
		// clenched-fist drag rotates faster than an open-hand drag.
		boost := 1 + (t.FistBoost-1)*(1-avgExt)
		wdx := f.Wrist.X - m.prev.Wrist.X
		wdy := f.Wrist.Y - m.prev.Wrist.Y
		out.DeltaY += m.wristY.step(wdx*t.WristSensitivity*boost, t.WristSmoothing)
		out.DeltaX += m.wristX.step(wdy*t.WristSensitivity*boost, t.WristSmoothing)

		// Orientation layer: shortest-path attitude deltas through a dead
		// zone. Heading and roll wrap, so raw subtraction is never used.
		dh := deadZone(feature.DeltaDegrees(m.prev.Orientation.Heading, f.Orientation.Heading), t.OrientDeadZoneDeg)
		dp := deadZone(f.Orientation.Pitch-m.prev.Orientation.Pitch, t.OrientDeadZoneDeg)
		dr := deadZone(feature.DeltaDegrees(m.prev.Orientation.Roll, f.Orientation.Roll), t.OrientDeadZoneDeg)
		out.DeltaY += m.orientY.step(dh*t.OrientSensitivity, t.OrientSmoothing)
		out.DeltaX += m.orientX.step(dp*t.OrientSensitivity, t.OrientSmoothing)
		out.DeltaZ += m.orientZ.step(dr*t.OrientSensitivity, t.OrientSmoothing)
	}

	m.prev = f
	m.hasPrev = true

	return out
}

// Zoom returns the current smoothed zoom level.
func (m *Mapper) Zoom() float64 {
	return m.zoom
}

// Reset drops the previous-frame reference and the per-layer smoothing
// state. Zoom keeps its value: losing the hand must not move the camera.
func (m *Mapper) Reset() {
	m.hasPrev = false
	m.fingerX.reset()
	m.fingerY.reset()
	m.wristX.reset()
	m.wristY.reset()
	m.orientX.reset()
	m.orientY.reset()
	m.orientZ.reset()
}

// deadZone zeroes values whose magnitude is below the threshold.
func deadZone(v, threshold float64) float64 {
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}
