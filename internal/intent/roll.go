package intent

import (
	"math"

	"github.com/ayusman/mudra/internal/feature"
)

// rollSnapRecognizer fires on an abrupt hand-roll change between
// consecutive frames. The roll delta always takes the shortest path around
// the angle wrap; its sign picks the direction.
type rollSnapRecognizer struct {
	cd cooldown
}

func (r *rollSnapRecognizer) step(cfg *Config, s sample) Event {
	dt := s.dtMs()
	if dt <= 0 || dt > cfg.MaxSampleGapMs {
		return Event{}
	}

	delta := feature.DeltaDegrees(s.prev.Orientation.Roll, s.cur.Orientation.Roll)
	if math.Abs(delta) < cfg.RollSnapMinDegrees {
		return Event{}
	}

	if !r.cd.ready(s.nowMs, cfg.RollSnapCooldownMs) {
		return Event{}
	}
	r.cd.fire(s.nowMs)

	dir := Advance
	if delta < 0 {
		dir = Retreat
	}
	return Event{Direction: dir, Magnitude: math.Abs(delta), Source: "roll-snap"}
}
