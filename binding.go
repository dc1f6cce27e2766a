package scrollpin

// FadeBinding drives a single target element through the fade cycle:
// opacity from the phase function, vertical drift derived from opacity.
type FadeBinding struct {
	target  *Element
	timings Timings
}

// NewFadeBinding binds one element. A nil timings pointer selects
// DefaultTimings.
func NewFadeBinding(target *Element, timings *Timings) *FadeBinding {
	b := &FadeBinding{target: target, timings: DefaultTimings}
	if timings != nil {
		b.timings = *timings
	}
	return b
}

// Apply writes the visual state for the given progress to the target.
// Idempotent: the same progress always produces the same Alpha/OffsetY.
// Disposed or missing targets are skipped.
func (b *FadeBinding) Apply(progress float64) {
	if b.target == nil || b.target.IsDisposed() {
		return
	}
	op := b.timings.Opacity(progress)
	b.target.Alpha = op
	b.target.OffsetY = Offset(op)
}

// Func adapts the binding to a PinConfig.OnProgress callback.
func (b *FadeBinding) Func() func(float64) { return b.Apply }

// ItemBinding drives a list of elements (text lines, an image stack, a
// card deck) through one-at-a-time presentation: at any progress exactly
// one item (the active index) carries the phase opacity, all others are
// forced to 0. The item handles are captured once at bind time, index to
// element, so later mutation of the caller's slice has no effect.
type ItemBinding struct {
	items   []*Element
	timings Timings
	active  int
}

// NewItemBinding binds the given elements in presentation order. A nil
// timings pointer selects DefaultTimings.
func NewItemBinding(items []*Element, timings *Timings) *ItemBinding {
	b := &ItemBinding{items: make([]*Element, len(items)), timings: DefaultTimings}
	copy(b.items, items)
	if timings != nil {
		b.timings = *timings
	}
	return b
}

// Len returns the number of bound items.
func (b *ItemBinding) Len() int { return len(b.items) }

// ActiveIndex returns the item selected by the most recent Apply.
func (b *ItemBinding) ActiveIndex() int { return b.active }

// Apply writes the visual state for the given progress to every bound
// item. Idempotent; disposed or missing items are skipped.
func (b *ItemBinding) Apply(progress float64) {
	if len(b.items) == 0 {
		return
	}
	st := b.timings.State(progress, len(b.items))
	b.active = st.ActiveIndex
	for i, el := range b.items {
		if el == nil || el.IsDisposed() {
			continue
		}
		if i == st.ActiveIndex {
			el.Alpha = st.Opacity
			el.OffsetY = st.OffsetY
		} else {
			el.Alpha = 0
			el.OffsetY = Offset(0)
		}
	}
}

// Func adapts the binding to a PinConfig.OnProgress callback.
func (b *ItemBinding) Func() func(float64) { return b.Apply }
