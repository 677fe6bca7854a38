package feature

// PinchHistoryCap is the maximum number of retained pinch samples.
const PinchHistoryCap = 50

// PinchSample is one timestamped pinch strength reading.
type PinchSample struct {
	Strength    float64 `json:"strength"`
	TimestampMs int64   `json:"timestamp_ms"`
}

// PinchHistory is a bounded, insertion-ordered window of pinch samples.
// It exists only so the UI can plot recent pinch activity; control logic
// never reads past the latest strength value.
type PinchHistory struct {
	samples []PinchSample
}

// NewPinchHistory returns an empty history.
func NewPinchHistory() *PinchHistory {
	return &PinchHistory{samples: make([]PinchSample, 0, PinchHistoryCap)}
}

// Push appends a sample, evicting the oldest once the window is full.
func (h *PinchHistory) Push(s PinchSample) {
	if len(h.samples) >= PinchHistoryCap {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:PinchHistoryCap-1]
	}
	h.samples = append(h.samples, s)
}

// Samples returns a copy of the window, oldest first.
func (h *PinchHistory) Samples() []PinchSample {
	out := make([]PinchSample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Len returns the number of retained samples.
func (h *PinchHistory) Len() int {
	return len(h.samples)
}
