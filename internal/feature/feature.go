// Package feature derives semantic hand features from raw landmarks:
// per-finger extension, palm orientation and pinch strength. Extraction is
// a pure function of a single frame; all smoothing and debouncing happens
// downstream.
package feature

import "github.com/ayusman/mudra/internal/detector"

// Finger identifies one of the five fingers.
type Finger int

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// String returns the lowercase finger name.
func (f Finger) String() string {
	switch f {
	case Thumb:
		return "thumb"
	case Index:
		return "index"
	case Middle:
		return "middle"
	case Ring:
		return "ring"
	case Pinky:
		return "pinky"
	}
	return "unknown"
}

// Extension holds per-finger openness in [0,1]: 0 fully curled, 1 fully
// extended.
type Extension [NumFingers]float64

// AvgNonThumb returns the mean extension of index, middle, ring and pinky.
// The thumb is excluded because its extension estimate is unreliable and it
// participates in pinch gestures.
func (e Extension) AvgNonThumb() float64 {
	return (e[Index] + e[Middle] + e[Ring] + e[Pinky]) / 4
}

// Orientation is the palm attitude derived from the palm-plane normal, in
// degrees. Heading wraps at the 0/360 boundary; use DeltaDegrees for any
// frame-to-frame difference.
type Orientation struct {
	Heading float64 `json:"heading"` // [0,360), yaw around vertical
	Pitch   float64 `json:"pitch"`   // [-90,90]
	Roll    float64 `json:"roll"`    // (-180,180]
}

// Pinch describes thumb-to-fingertip proximity for the current frame.
// Strength refers to the thumb+index pair; TipDistances carries the raw 2-D
// thumb-to-tip distance for every finger so the double-pinch recognizer can
// tell which finger crossed.
type Pinch struct {
	Strength     float64             `json:"strength"` // [0,1], 1 = touching
	Distance     float64             `json:"distance"` // raw 2-D thumb-index distance
	TipDistances [NumFingers]float64 `json:"-"`
}

// Features is the full per-frame feature set consumed by the continuous
// mapper and the intent recognizers.
type Features struct {
	Extension   Extension        `json:"extension"`
	Orientation Orientation      `json:"orientation"`
	Pinch       Pinch            `json:"pinch"`
	Wrist       detector.Point3D `json:"wrist"`
	IndexTip    detector.Point3D `json:"indexTip"`
}
