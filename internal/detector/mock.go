package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It returns either a fixed hand set or a scripted per-call sequence.
type MockDetector struct {
	hands  []HandLandmarks
	script [][]HandLandmarks
	err    error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands returned by every subsequent Detect call.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// Enqueue appends one frame's worth of hands to the playback script.
// While the script is non-empty, Detect consumes it one entry per call
// before falling back to the fixed hand set.
func (m *MockDetector) Enqueue(hands []HandLandmarks) {
	m.script = append(m.script, hands)
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the next scripted entry, the fixed hands, or the error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.script) > 0 {
		hands := m.script[0]
		m.script = m.script[1:]
		return hands, nil
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}
