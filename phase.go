package scrollpin

import (
	"fmt"
	"math"
)

// DriftMax is the maximum vertical displacement, in layout-independent
// units, applied to content that is fully faded. Content at full opacity
// sits at zero offset.
const DriftMax = 10.0

// Timings divides a pinned section's [0, 1] progress range into fade-in,
// hold, fade-out, and hidden phases. The ordering invariant
// 0 < FadeInEnd < HoldEnd < FadeOutEnd <= 1 must hold; use NewTimings to
// get it checked.
type Timings struct {
	FadeInEnd  float64
	HoldEnd    float64
	FadeOutEnd float64
}

// DefaultTimings ramps opacity over the first 20% of the pin, holds through
// 70%, fades out by 90%, and stays hidden for the final 10%.
var DefaultTimings = Timings{FadeInEnd: 0.2, HoldEnd: 0.7, FadeOutEnd: 0.9}

// NewTimings builds a Timings and validates the threshold ordering.
func NewTimings(fadeInEnd, holdEnd, fadeOutEnd float64) (Timings, error) {
	t := Timings{FadeInEnd: fadeInEnd, HoldEnd: holdEnd, FadeOutEnd: fadeOutEnd}
	if err := t.Validate(); err != nil {
		return Timings{}, err
	}
	return t, nil
}

// Validate reports whether the thresholds satisfy
// 0 < FadeInEnd < HoldEnd < FadeOutEnd <= 1.
func (t Timings) Validate() error {
	if !(0 < t.FadeInEnd && t.FadeInEnd < t.HoldEnd && t.HoldEnd < t.FadeOutEnd && t.FadeOutEnd <= 1) {
		return fmt.Errorf("scrollpin: invalid timings: need 0 < fadeInEnd (%v) < holdEnd (%v) < fadeOutEnd (%v) <= 1",
			t.FadeInEnd, t.HoldEnd, t.FadeOutEnd)
	}
	return nil
}

// Opacity maps progress to opacity: a linear ramp up through FadeInEnd,
// flat 1 through HoldEnd, a linear ramp down through FadeOutEnd, then 0.
// Input outside [0, 1] is clamped first.
func (t Timings) Opacity(progress float64) float64 {
	p := Clamp01(progress)
	switch {
	case p <= t.FadeInEnd:
		return p / t.FadeInEnd
	case p <= t.HoldEnd:
		return 1
	case p <= t.FadeOutEnd:
		return 1 - (p-t.HoldEnd)/(t.FadeOutEnd-t.HoldEnd)
	default:
		return 0
	}
}

// Phase classifies progress into the phase whose opacity rule applies.
func (t Timings) Phase(progress float64) Phase {
	p := Clamp01(progress)
	switch {
	case p <= t.FadeInEnd:
		return PhaseFadeIn
	case p <= t.HoldEnd:
		return PhaseHold
	case p <= t.FadeOutEnd:
		return PhaseFadeOut
	default:
		return PhaseHidden
	}
}

// ActiveIndex selects which of n items is visible at the given progress.
// The hold window [FadeInEnd, HoldEnd] is remapped to [0, 1] and stepped
// over the items in order, one hard cut per item, no cross-fade. Returns 0
// for n <= 1.
func (t Timings) ActiveIndex(progress float64, n int) int {
	if n <= 1 {
		return 0
	}
	w := Clamp01((Clamp01(progress) - t.FadeInEnd) / (t.HoldEnd - t.FadeInEnd))
	idx := int(math.Floor(w * float64(n)))
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// State computes the full visual state for a multi-item section of n items.
// For n <= 0 the active index is -1 (single-target semantics).
func (t Timings) State(progress float64, n int) VisualState {
	op := t.Opacity(progress)
	idx := -1
	if n > 0 {
		idx = t.ActiveIndex(progress, n)
	}
	return VisualState{Opacity: op, OffsetY: Offset(op), ActiveIndex: idx}
}

// Offset derives vertical displacement from opacity: fully opaque content
// is settled at 0, fully faded content drifts by DriftMax.
func Offset(opacity float64) float64 {
	return (1 - Clamp01(opacity)) * DriftMax
}
