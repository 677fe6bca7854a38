package intent

import "github.com/ayusman/mudra/internal/feature"

// Config holds all recognizer thresholds and cooldowns. Distances are in
// image-normalized units, velocities in normalized units per second, times
// in milliseconds.
type Config struct {
	// FistExtensionMax classifies the hand as a fist when all four
	// non-thumb extensions fall below it. A fist suppresses every
	// recognizer: it is reserved for continuous zoom-in and sits too close
	// to a single-finger pinch geometrically to allow navigation.
	FistExtensionMax float64 `json:"fistExtensionMax"`

	// OtherFingerMin is the extension the three non-pinching fingers must
	// keep for a pinch crossing to count.
	OtherFingerMin float64 `json:"otherFingerMin"`

	// PinchDistance is the thumb-to-fingertip distance a pinch must cross
	// below.
	PinchDistance float64 `json:"pinchDistance"`

	// DoublePinchWindowMs is the time allowed between the first and second
	// crossing of the same finger.
	DoublePinchWindowMs int64 `json:"doublePinchWindowMs"`

	// DoublePinchCooldownMs suppresses re-firing after a double pinch.
	DoublePinchCooldownMs int64 `json:"doublePinchCooldownMs"`

	SwipeMinDistance float64 `json:"swipeMinDistance"`
	SwipeMinVelocity float64 `json:"swipeMinVelocity"`
	SwipeCooldownMs  int64   `json:"swipeCooldownMs"`

	// SwingEnabled gates the vertical-swing recognizer, which ships as an
	// alternate control and is off by default.
	SwingEnabled     bool    `json:"swingEnabled"`
	SwingMinDistance float64 `json:"swingMinDistance"`
	SwingMinVelocity float64 `json:"swingMinVelocity"`
	SwingCooldownMs  int64   `json:"swingCooldownMs"`

	RollSnapMinDegrees float64 `json:"rollSnapMinDegrees"`
	RollSnapCooldownMs int64   `json:"rollSnapCooldownMs"`

	// MaxSampleGapMs discards delta samples whose inferred frame gap is
	// wider than this: a huge gap means the hand vanished and reappeared,
	// not a genuinely fast motion.
	MaxSampleGapMs int64 `json:"maxSampleGapMs"`
}

// DefaultConfig returns the tuned recognizer thresholds.
func DefaultConfig() Config {
	return Config{
		FistExtensionMax:      0.28,
		OtherFingerMin:        0.35,
		PinchDistance:         feature.PinchDistanceThreshold,
		DoublePinchWindowMs:   600,
		DoublePinchCooldownMs: 400,
		SwipeMinDistance:      0.04,
		SwipeMinVelocity:      0.6,
		SwipeCooldownMs:       150,
		SwingEnabled:          false,
		SwingMinDistance:      0.05,
		SwingMinVelocity:      0.6,
		SwingCooldownMs:       300,
		RollSnapMinDegrees:    25,
		RollSnapCooldownMs:    300,
		MaxSampleGapMs:        500,
	}
}
