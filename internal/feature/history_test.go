package feature

import "testing"

func TestPinchHistory_PushAndLen(t *testing.T) {
	h := NewPinchHistory()

	if h.Len() != 0 {
		t.Fatalf("expected empty history, got %d samples", h.Len())
	}

	h.Push(PinchSample{Strength: 0.5, TimestampMs: 100})
	h.Push(PinchSample{Strength: 0.7, TimestampMs: 200})

	if h.Len() != 2 {
		t.Errorf("expected 2 samples, got %d", h.Len())
	}

	samples := h.Samples()
	if samples[0].TimestampMs != 100 || samples[1].TimestampMs != 200 {
		t.Errorf("samples out of order: %+v", samples)
	}
}

func TestPinchHistory_EvictsOldest(t *testing.T) {
	h := NewPinchHistory()

	for i := 0; i < PinchHistoryCap+10; i++ {
		h.Push(PinchSample{Strength: 1, TimestampMs: int64(i)})
	}

	if h.Len() != PinchHistoryCap {
		t.Fatalf("expected history capped at %d, got %d", PinchHistoryCap, h.Len())
	}

	samples := h.Samples()
	if samples[0].TimestampMs != 10 {
		t.Errorf("expected oldest surviving sample at t=10, got t=%d", samples[0].TimestampMs)
	}
	if samples[len(samples)-1].TimestampMs != int64(PinchHistoryCap+9) {
		t.Errorf("expected newest sample at t=%d, got t=%d",
			PinchHistoryCap+9, samples[len(samples)-1].TimestampMs)
	}
}

func TestPinchHistory_SamplesReturnsCopy(t *testing.T) {
	h := NewPinchHistory()
	h.Push(PinchSample{Strength: 0.5, TimestampMs: 100})

	samples := h.Samples()
	samples[0].Strength = 99

	if h.Samples()[0].Strength != 0.5 {
		t.Error("mutating the returned slice should not affect the history")
	}
}
