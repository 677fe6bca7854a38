package capture

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// MockCamera plays back pre-recorded frames for testing. Timestamps
// advance by a fixed step per frame so delta and cooldown logic can be
// exercised deterministically.
type MockCamera struct {
	frames  []*gocv.Mat
	index   int
	loop    bool
	stepMs  int64
	nowMs   int64
	mu      sync.Mutex
	running bool
}

// NewMockCamera creates a mock camera over the given frames. stepMs is the
// simulated interval between frames.
func NewMockCamera(frames []*gocv.Mat, loop bool, stepMs int64) *MockCamera {
	return &MockCamera{
		frames: frames,
		loop:   loop,
		stepMs: stepMs,
	}
}

func (c *MockCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
	c.index = 0
	c.nowMs = 0
	return nil
}

func (c *MockCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	return nil
}

func (c *MockCamera) ReadFrame() (*gocv.Mat, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil, 0, ErrCameraNotOpen
	}

	if len(c.frames) == 0 {
		return nil, 0, fmt.Errorf("no frames available")
	}

	if c.index >= len(c.frames) {
		if c.loop {
			c.index = 0
		} else {
			return nil, 0, fmt.Errorf("no more frames")
		}
	}

	// Clone so the caller's Close doesn't free the source frame.
	frame := c.frames[c.index].Clone()
	c.index++
	c.nowMs += c.stepMs

	return &frame, c.nowMs, nil
}

func (c *MockCamera) SetFPS(fps int) {}
func (c *MockCamera) FPS() int       { return ActiveFPS }

func (c *MockCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// SetFrames replaces the frame sequence.
func (c *MockCamera) SetFrames(frames []*gocv.Mat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = frames
	c.index = 0
}

// Reset restarts playback from the beginning.
func (c *MockCamera) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = 0
}
