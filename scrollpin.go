package scrollpin

// Phase identifies where a progress value falls within a pinned section's
// fade cycle.
type Phase uint8

const (
	PhaseFadeIn  Phase = iota // opacity ramping 0 -> 1
	PhaseHold                 // opacity held at 1
	PhaseFadeOut              // opacity ramping 1 -> 0
	PhaseHidden               // opacity held at 0 until the pin releases
)

// String returns the phase name for logging and test output.
func (p Phase) String() string {
	switch p {
	case PhaseFadeIn:
		return "fade-in"
	case PhaseHold:
		return "hold"
	case PhaseFadeOut:
		return "fade-out"
	case PhaseHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// VisualState is the per-frame output of the progress mapping: the values a
// composer turns into rendered appearance. ActiveIndex is -1 for
// single-target sections.
type VisualState struct {
	Opacity     float64
	OffsetY     float64
	ActiveIndex int
}

// Clamp01 clamps v to [0, 1]. Identity for values already in range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
