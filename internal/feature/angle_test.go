package feature

import "testing"

func TestDeltaDegrees_Wraparound(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{359, 2, 3},
		{2, 359, -3},
		{350, 10, 20},
		{10, 350, -20},
		{90, 90, 0},
		{0, 180, 180},
		{-170, 170, -20},
	}

	for _, tt := range tests {
		got := DeltaDegrees(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("DeltaDegrees(%f, %f) = %f, want %f", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDeltaDegrees_AlwaysShortestPath(t *testing.T) {
	for from := -180.0; from <= 360; from += 7 {
		for to := -180.0; to <= 360; to += 11 {
			d := DeltaDegrees(from, to)
			if d > 180 || d < -180 {
				t.Fatalf("DeltaDegrees(%f, %f) = %f, outside [-180, 180]", from, to, d)
			}
		}
	}
}
