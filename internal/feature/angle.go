package feature

// DeltaDegrees returns the signed shortest-path difference to − from for
// angles in degrees. Going from 359° to 2° yields +3, never −357. Required
// for any frame-to-frame heading or roll comparison.
func DeltaDegrees(from, to float64) float64 {
	d := to - from
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	return d
}
