package scrollpin

import (
	"encoding/json"
	"fmt"

	"github.com/tanema/gween/ease"
)

// scriptStep represents a single action in a scroll script.
type scriptStep struct {
	Action   string  `json:"action"`
	Delta    float64 `json:"delta,omitempty"`
	To       float64 `json:"to,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// scrollScript is the top-level JSON structure for a scroll script.
type scrollScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences scripted scroll input across frames for automated
// scenario runs: wheel and touch deltas, waits, instant jumps, and eased
// glides. Call Step once per frame before advancing the virtualizer.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scroll script.
//
//	{"steps": [
//	  {"action": "wheel", "delta": 120},
//	  {"action": "wait", "frames": 30},
//	  {"action": "glide", "to": 1600, "duration": 0.5}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script scrollScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes at most one script action against the virtualizer.
// "wait" steps consume the given number of frames before the next action.
func (r *ScriptRunner) Step(v *Virtualizer) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "wheel":
		v.InjectWheel(st.Delta)
	case "touch":
		v.InjectTouch(st.Delta)
	case "jump":
		v.ScrollTo(st.To, 0, nil)
	case "glide":
		dur := float32(st.Duration)
		if dur <= 0 {
			dur = 0.5
		}
		v.ScrollTo(st.To, dur, ease.OutQuad)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
