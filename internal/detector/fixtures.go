package detector

// Pose fixtures shared by tests across packages. Coordinates are
// image-normalized with the wrist near the bottom of the frame; Y grows
// downward, so extended fingers have smaller Y than the wrist.

// OpenPalmLandmarks returns a hand with all five fingers extended.
func OpenPalmLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	lm.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	lm.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	lm.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	lm.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended upward
	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended upward
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended upward
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	lm.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	lm.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky finger extended upward
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	lm.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	lm.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	lm.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return lm
}

// FistLandmarks returns a closed fist: all four non-thumb fingertips
// curled in close to the wrist. The thumb tip ends up near the index tip,
// which is exactly the geometry that must not be read as a pinch.
func FistLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	lm.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb folded across the curled fingers
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.76, Z: 0.01}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.73, Z: 0.01}
	lm.Points[ThumbIP] = Point3D{X: 0.57, Y: 0.74, Z: 0.0}
	lm.Points[ThumbTip] = Point3D{X: 0.56, Y: 0.74, Z: 0.0}

	// Knuckles stay roughly where an open hand has them
	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}

	// Fingertips curled in near the palm
	lm.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.72, Z: -0.03}
	lm.Points[IndexDIP] = Point3D{X: 0.54, Y: 0.75, Z: -0.03}
	lm.Points[IndexTip] = Point3D{X: 0.53, Y: 0.77, Z: -0.03}

	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.70, Z: -0.03}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.73, Z: -0.03}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.76, Z: -0.03}

	lm.Points[RingPIP] = Point3D{X: 0.46, Y: 0.72, Z: -0.03}
	lm.Points[RingDIP] = Point3D{X: 0.46, Y: 0.75, Z: -0.03}
	lm.Points[RingTip] = Point3D{X: 0.47, Y: 0.77, Z: -0.03}

	lm.Points[PinkyPIP] = Point3D{X: 0.42, Y: 0.73, Z: -0.03}
	lm.Points[PinkyDIP] = Point3D{X: 0.43, Y: 0.75, Z: -0.03}
	lm.Points[PinkyTip] = Point3D{X: 0.44, Y: 0.77, Z: -0.03}

	return lm
}

// PinchLandmarks returns a thumb+index pinch with the middle, ring and
// pinky fingers still extended. This is the pose the double-pinch
// recognizer accepts and the fist guard must not suppress.
func PinchLandmarks() HandLandmarks {
	lm := OpenPalmLandmarks()

	// Bring thumb and index tips together halfway up the frame.
	lm.Points[ThumbIP] = Point3D{X: 0.60, Y: 0.66, Z: 0.02}
	lm.Points[ThumbTip] = Point3D{X: 0.560, Y: 0.600, Z: 0.02}
	lm.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.63, Z: 0.01}
	lm.Points[IndexTip] = Point3D{X: 0.565, Y: 0.605, Z: 0.02}

	return lm
}

// Translated returns a copy of the hand with every landmark shifted by the
// given offsets. Useful for scripting swipe and swing motions in tests.
func Translated(h HandLandmarks, dx, dy, dz float64) HandLandmarks {
	out := h
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
		out.Points[i].Z += dz
	}
	return out
}
