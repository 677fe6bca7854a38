package feature

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Extraction constants.
const (
	// ExtensionSensitivity scales the baseline-relative extension estimate
	// before clamping. ~1.2 lets a fully straight finger saturate at 1.0
	// even with slightly foreshortened landmarks.
	ExtensionSensitivity = 1.2

	// extensionCurlOffset is the fraction of the knuckle-to-wrist baseline
	// a fully curled fingertip still keeps from the wrist.
	extensionCurlOffset = 0.4

	// PinchDistanceThreshold is the 2-D thumb-to-fingertip distance at
	// which pinch strength reaches zero. Image-normalized units.
	PinchDistanceThreshold = 0.08
)

// fingerPoints maps each finger to its tip and base-knuckle landmark.
var fingerPoints = [NumFingers]struct{ tip, base int }{
	Thumb:  {detector.ThumbTip, detector.ThumbMCP},
	Index:  {detector.IndexTip, detector.IndexMCP},
	Middle: {detector.MiddleTip, detector.MiddleMCP},
	Ring:   {detector.RingTip, detector.RingMCP},
	Pinky:  {detector.PinkyTip, detector.PinkyMCP},
}

// Extract computes the per-frame feature set from raw landmarks. It is a
// pure function: no state, no error conditions. Malformed frames are
// rejected upstream and never reach here.
func Extract(h *detector.HandLandmarks) Features {
	var f Features

	wrist := h.Points[detector.Wrist]
	f.Wrist = wrist
	f.IndexTip = h.Points[detector.IndexTip]

	// Finger extension: distance from tip to wrist, relative to the
	// knuckle-to-wrist baseline. Being baseline-relative keeps the
	// estimate stable as the hand moves toward or away from the camera.
	for finger := Thumb; finger < NumFingers; finger++ {
		tip := h.Points[fingerPoints[finger].tip]
		base := h.Points[fingerPoints[finger].base]

		baseDist := dist3(base, wrist)
		if baseDist < 1e-9 {
			continue
		}
		tipDist := dist3(tip, wrist)

		raw := (tipDist - extensionCurlOffset*baseDist) / baseDist
		f.Extension[finger] = clamp01(raw * ExtensionSensitivity)
	}

	f.Orientation = palmOrientation(h)

	// Pinch: 2-D thumb-to-tip distances; strength is derived from the
	// thumb+index pair only.
	thumbTip := h.Points[detector.ThumbTip]
	for finger := Thumb; finger < NumFingers; finger++ {
		f.Pinch.TipDistances[finger] = dist2(thumbTip, h.Points[fingerPoints[finger].tip])
	}
	f.Pinch.Distance = f.Pinch.TipDistances[Index]
	f.Pinch.Strength = clamp01(1 - f.Pinch.Distance/PinchDistanceThreshold)

	return f
}

// palmOrientation derives heading/pitch/roll from the palm-plane normal,
// computed as the cross product of the wrist→index-knuckle and
// wrist→pinky-knuckle vectors.
func palmOrientation(h *detector.HandLandmarks) Orientation {
	wrist := h.Points[detector.Wrist]
	a := sub(h.Points[detector.IndexMCP], wrist)
	b := sub(h.Points[detector.PinkyMCP], wrist)

	n := cross(a, b)
	norm := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if norm < 1e-9 {
		return Orientation{}
	}
	n.X /= norm
	n.Y /= norm
	n.Z /= norm

	heading := math.Atan2(n.X, n.Z) * 180 / math.Pi
	if heading < 0 {
		heading += 360
	}

	pitch := math.Asin(clamp(n.Y, -1, 1)) * 180 / math.Pi
	roll := math.Atan2(n.X, n.Z) * 180 / math.Pi

	return Orientation{Heading: heading, Pitch: pitch, Roll: roll}
}

func sub(a, b detector.Point3D) detector.Point3D {
	return detector.Point3D{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func cross(a, b detector.Point3D) detector.Point3D {
	return detector.Point3D{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func dist3(a, b detector.Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func dist2(a, b detector.Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
