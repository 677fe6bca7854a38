// Package control maps per-frame hand features onto the camera control
// state: a smoothed zoom level, three accumulated rotation axes and the
// catalog cursor.
package control

// Zoom limits and the session default.
const (
	ZoomMin     = 0.5
	ZoomMax     = 2.0
	DefaultZoom = 1.0
)

// Tuning holds the continuous-mapping constants. Sensitivities convert
// image-normalized displacement (or degrees, for the orientation layer)
// into degrees of rotation; smoothing factors are per-frame EMA
// coefficients in (0,1].
type Tuning struct {
	// ZoomAlpha is the exponential smoothing factor pulling zoom toward
	// its target. Small on purpose: extension estimates are noisy and the
	// zoom must never jump.
	ZoomAlpha float64 `json:"zoomAlpha"`

	// Finger layer: index-fingertip movement, precise and slow.
	FingerSensitivity float64 `json:"fingerSensitivity"`
	FingerSmoothing   float64 `json:"fingerSmoothing"`

	// Wrist layer: whole-hand translation, coarse and fast. FistBoost
	// multiplies sensitivity as the hand closes, up to the full factor for
	// a clenched fist.
	WristSensitivity float64 `json:"wristSensitivity"`
	WristSmoothing   float64 `json:"wristSmoothing"`
	FistBoost        float64 `json:"fistBoost"`

	// Orientation layer: palm attitude change. Deltas below the dead zone
	// are zeroed to suppress sensor jitter.
	OrientSensitivity float64 `json:"orientSensitivity"`
	OrientSmoothing   float64 `json:"orientSmoothing"`
	OrientDeadZoneDeg float64 `json:"orientDeadZoneDeg"`
}

// DefaultTuning returns the tuned mapping constants.
func DefaultTuning() Tuning {
	return Tuning{
		ZoomAlpha:         0.06,
		FingerSensitivity: 300,
		FingerSmoothing:   0.35,
		WristSensitivity:  600,
		WristSmoothing:    0.30,
		FistBoost:         2.5,
		OrientSensitivity: 0.8,
		OrientSmoothing:   0.25,
		OrientDeadZoneDeg: 1.2,
	}
}
