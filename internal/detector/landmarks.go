// Package detector provides hand pose detection interfaces and landmark types.
package detector

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a single landmark position. X and Y are image-normalized to
// [0,1]; Z is relative depth as reported by the pose estimator.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is one detected hand: 21 landmarks plus detection metadata.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Frame is one detection result with its capture timestamp. TimestampMs is
// monotonic milliseconds supplied by the capture layer; downstream delta and
// cooldown logic depends on it, never on wall-clock reads.
type Frame struct {
	Hands       []HandLandmarks `json:"hands"`
	TimestampMs int64           `json:"timestamp_ms"`
}

// Primary returns the first detected hand, or nil when no hand is present.
// Only the primary hand drives control.
func (f *Frame) Primary() *HandLandmarks {
	if f == nil || len(f.Hands) == 0 {
		return nil
	}
	return &f.Hands[0]
}
