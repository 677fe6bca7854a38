package capture

import (
	"image"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// Motion gate constants.
const (
	// gaussianBlurSize is the kernel size for the pre-diff blur.
	gaussianBlurSize = 21
	// diffThreshold is the binary threshold for the frame difference.
	diffThreshold = 25
	// DefaultMotionThreshold is the percentage of pixels that must change
	// to count as motion.
	DefaultMotionThreshold = 1.0
	// IdleTimeout is how long without motion before the gate drops back
	// to idle.
	IdleTimeout = 2 * time.Second
)

// Gate decides whether the pipeline should run at the active frame rate.
// It detects motion by frame differencing (grayscale, Gaussian blur,
// absolute difference, binary threshold, changed-pixel ratio) and holds
// the active state for IdleTimeout after the last motion.
type Gate struct {
	threshold   float64
	prevGray    gocv.Mat
	initialized bool
	active      bool
	lastMotion  time.Time
	mu          sync.Mutex
}

// NewGate creates a motion gate. threshold is the percentage of pixels
// that must change; values <= 0 fall back to the default.
func NewGate(threshold float64) *Gate {
	if threshold <= 0 {
		threshold = DefaultMotionThreshold
	}
	return &Gate{
		threshold: threshold,
		prevGray:  gocv.NewMat(),
	}
}

// Update analyzes a frame and returns whether the pipeline should be
// active, plus the percentage of pixels that changed.
func (g *Gate) Update(frame *gocv.Mat) (bool, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if frame == nil || frame.Empty() {
		return g.active, 0
	}

	gray := gocv.NewMat()
	defer gray.Close()

	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Point{X: gaussianBlurSize, Y: gaussianBlurSize}, 0, 0, gocv.BorderDefault)

	if !g.initialized {
		blurred.CopyTo(&g.prevGray)
		g.initialized = true
		return g.active, 0
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, g.prevGray, &diff)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(diff, &thresh, diffThreshold, 255, gocv.ThresholdBinary)

	nonZero := gocv.CountNonZero(thresh)
	totalPixels := thresh.Rows() * thresh.Cols()
	changePercent := float64(nonZero) / float64(totalPixels) * 100.0

	blurred.CopyTo(&g.prevGray)

	if changePercent > g.threshold {
		g.lastMotion = time.Now()
		g.active = true
	} else if g.active && time.Since(g.lastMotion) > IdleTimeout {
		g.active = false
	}

	return g.active, changePercent
}

// Active returns the gate state without processing a frame.
func (g *Gate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// SetThreshold sets the motion threshold. Values <= 0 are ignored.
func (g *Gate) SetThreshold(threshold float64) {
	if threshold <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.threshold = threshold
}

// Reset clears the baseline frame and drops back to idle.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.prevGray.Empty() {
		g.prevGray.Close()
		g.prevGray = gocv.NewMat()
	}
	g.initialized = false
	g.active = false
}

// Close releases resources used by the gate.
func (g *Gate) Close() {
	g.Reset()
}
