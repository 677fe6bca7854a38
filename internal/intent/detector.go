package intent

import (
	"github.com/ayusman/mudra/internal/feature"
)

// cooldown tracks when a recognizer last fired. A recognizer is eligible
// again only once the window has fully elapsed.
type cooldown struct {
	lastFiredMs int64
	primed      bool
}

func (c *cooldown) ready(nowMs, windowMs int64) bool {
	return !c.primed || nowMs-c.lastFiredMs > windowMs
}

func (c *cooldown) fire(nowMs int64) {
	c.lastFiredMs = nowMs
	c.primed = true
}

// sample is one frame of input handed to each recognizer. prev is only
// meaningful when hasPrev is set; the first frame after the hand reappears
// has no previous sample and no recognizer may extrapolate across the gap.
type sample struct {
	cur     feature.Features
	prev    feature.Features
	prevMs  int64
	nowMs   int64
	hasPrev bool
}

// dtMs returns the inferred frame gap, or 0 when there is no previous
// sample.
func (s sample) dtMs() int64 {
	if !s.hasPrev {
		return 0
	}
	return s.nowMs - s.prevMs
}

// Detector runs all recognizers over the feature stream and arbitrates
// between them. At most one event is produced per frame: recognizers are
// consulted in a fixed priority order and the first to fire wins, the rest
// are dropped silently for that frame.
type Detector struct {
	cfg   Config
	pinch doublePinch
	swipe swipeRecognizer
	swing swingRecognizer
	roll  rollSnapRecognizer

	prev    feature.Features
	prevMs  int64
	hasPrev bool
}

// NewDetector creates a Detector with the given configuration.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

// Config returns the active configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// SetConfig replaces the recognizer thresholds. Pending recognizer state is
// kept; only future eligibility decisions change.
func (d *Detector) SetConfig(cfg Config) {
	d.cfg = cfg
}

// Step processes one frame of features and returns at most one event.
// nowMs is the frame's monotonic capture timestamp.
func (d *Detector) Step(cur feature.Features, nowMs int64) Event {
	s := sample{
		cur:     cur,
		prev:    d.prev,
		prevMs:  d.prevMs,
		nowMs:   nowMs,
		hasPrev: d.hasPrev,
	}

	d.prev = cur
	d.prevMs = nowMs
	d.hasPrev = true

	// Shared fist guard: a fist is reserved for continuous zoom-in and is
	// geometrically close to a single-finger pinch, so it suppresses every
	// recognizer for the frame.
	if isFist(&d.cfg, cur.Extension) {
		return Event{}
	}

	if ev := d.pinch.step(&d.cfg, s); !ev.IsNone() {
		return ev
	}
	if ev := d.swipe.step(&d.cfg, s); !ev.IsNone() {
		return ev
	}
	if d.cfg.SwingEnabled {
		if ev := d.swing.step(&d.cfg, s); !ev.IsNone() {
			return ev
		}
	}
	if ev := d.roll.step(&d.cfg, s); !ev.IsNone() {
		return ev
	}

	return Event{}
}

// Reset clears all previous-frame references and pending recognizer state.
// Called when the hand leaves the frame so that reappearance starts clean:
// no delta is computed across the gap and no half-finished double pinch
// survives it. Cooldown clocks are left alone.
func (d *Detector) Reset() {
	d.hasPrev = false
	d.pinch.reset()
}

// isFist reports whether all four non-thumb fingers are curled below the
// fist threshold.
func isFist(cfg *Config, e feature.Extension) bool {
	return e[feature.Index] < cfg.FistExtensionMax &&
		e[feature.Middle] < cfg.FistExtensionMax &&
		e[feature.Ring] < cfg.FistExtensionMax &&
		e[feature.Pinky] < cfg.FistExtensionMax
}
