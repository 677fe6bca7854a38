package intent

import "math"

// swipeRecognizer fires on a fast horizontal wrist displacement between
// consecutive frames: right advances, left retreats. Both a minimum
// distance and a minimum implied velocity must be met, and samples with a
// frame gap wider than MaxSampleGapMs are discarded as reappearances
// rather than motion.
type swipeRecognizer struct {
	cd cooldown
}

func (r *swipeRecognizer) step(cfg *Config, s sample) Event {
	dt := s.dtMs()
	if dt <= 0 || dt > cfg.MaxSampleGapMs {
		return Event{}
	}

	dx := s.cur.Wrist.X - s.prev.Wrist.X
	if math.Abs(dx) < cfg.SwipeMinDistance {
		return Event{}
	}

	velocity := math.Abs(dx) / (float64(dt) / 1000)
	if velocity < cfg.SwipeMinVelocity {
		return Event{}
	}

	if !r.cd.ready(s.nowMs, cfg.SwipeCooldownMs) {
		return Event{}
	}
	r.cd.fire(s.nowMs)

	dir := Advance
	if dx < 0 {
		dir = Retreat
	}
	return Event{Direction: dir, Magnitude: velocity, Source: "swipe"}
}

// swingRecognizer is the vertical counterpart of swipe: up advances, down
// retreats. It ships disabled by default and is gated by the detector.
type swingRecognizer struct {
	cd cooldown
}

func (r *swingRecognizer) step(cfg *Config, s sample) Event {
	dt := s.dtMs()
	if dt <= 0 || dt > cfg.MaxSampleGapMs {
		return Event{}
	}

	dy := s.cur.Wrist.Y - s.prev.Wrist.Y
	if math.Abs(dy) < cfg.SwingMinDistance {
		return Event{}
	}

	velocity := math.Abs(dy) / (float64(dt) / 1000)
	if velocity < cfg.SwingMinVelocity {
		return Event{}
	}

	if !r.cd.ready(s.nowMs, cfg.SwingCooldownMs) {
		return Event{}
	}
	r.cd.fire(s.nowMs)

	// Image Y grows downward, so an upward swing has negative dy.
	dir := Advance
	if dy > 0 {
		dir = Retreat
	}
	return Event{Direction: dir, Magnitude: velocity, Source: "swing"}
}
