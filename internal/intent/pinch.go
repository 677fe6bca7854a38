package intent

import "github.com/ayusman/mudra/internal/feature"

// doublePinch fires an advance when the same finger pinches the thumb
// twice within the configured window. A crossing is the frame where the
// thumb-to-fingertip distance drops below the pinch threshold; the three
// other non-thumb fingers must stay extended, which keeps a closing fist
// from reading as a pinch.
type doublePinch struct {
	cd             cooldown
	pendingFinger  feature.Finger
	pendingSinceMs int64
	hasPending     bool
}

var pinchFingers = [...]feature.Finger{
	feature.Index, feature.Middle, feature.Ring, feature.Pinky,
}

func (r *doublePinch) step(cfg *Config, s sample) Event {
	if !s.hasPrev {
		return Event{}
	}

	for _, f := range pinchFingers {
		crossed := s.prev.Pinch.TipDistances[f] >= cfg.PinchDistance &&
			s.cur.Pinch.TipDistances[f] < cfg.PinchDistance
		if !crossed {
			continue
		}
		if !othersExtended(cfg, s.cur.Extension, f) {
			continue
		}

		if r.hasPending && r.pendingFinger == f &&
			s.nowMs-r.pendingSinceMs <= cfg.DoublePinchWindowMs {
			r.hasPending = false
			if !r.cd.ready(s.nowMs, cfg.DoublePinchCooldownMs) {
				return Event{}
			}
			r.cd.fire(s.nowMs)
			return Event{
				Direction: Advance,
				Magnitude: s.cur.Pinch.Strength,
				Source:    "double-pinch",
			}
		}

		// First crossing, a different finger, or an expired window: this
		// crossing becomes the new pending first pinch.
		r.pendingFinger = f
		r.pendingSinceMs = s.nowMs
		r.hasPending = true
		return Event{}
	}

	return Event{}
}

func (r *doublePinch) reset() {
	r.hasPending = false
}

// othersExtended reports whether the three non-thumb fingers other than the
// pinching one are extended past the configured minimum.
func othersExtended(cfg *Config, e feature.Extension, pinching feature.Finger) bool {
	for _, f := range pinchFingers {
		if f == pinching {
			continue
		}
		if e[f] < cfg.OtherFingerMin {
			return false
		}
	}
	return true
}
