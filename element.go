package scrollpin

// Element is the engine's handle to one rendered target: a pinned
// section's trigger, a text line, an image, a card. The engine never draws;
// it writes Alpha, OffsetY, and the pin translation, and the composer turns
// those into pixels.
//
// Top and Height are document-space layout values owned by the composer.
// The engine holds a non-owning reference; dispose the element when its
// section unmounts and the engine stops writing to it.
type Element struct {
	// Top is the document-space position of the element's top edge.
	Top float64
	// Height is the element's layout height.
	Height float64

	// Alpha is the current opacity in [0, 1], written by bindings.
	Alpha float64
	// OffsetY is the current vertical drift, written by bindings.
	OffsetY float64

	pinned      bool
	translation float64
	disposed    bool
}

// NewElement creates an element at the given document-space top edge.
func NewElement(top, height float64) *Element {
	return &Element{Top: top, Height: height}
}

// Pinned reports whether a pin currently holds this element fixed.
func (e *Element) Pinned() bool { return e.pinned }

// Translation is the vertical shift keeping the element locked in the
// viewport while pinned (0 before the pin, the full pin distance after).
func (e *Element) Translation() float64 { return e.translation }

// Dispose marks the element unmounted. Bindings and pins treat a disposed
// element as write-protected; disposing twice is a no-op.
func (e *Element) Dispose() { e.disposed = true }

// IsDisposed reports whether Dispose has been called.
func (e *Element) IsDisposed() bool { return e.disposed }

// setPin is called by the owning Pin each frame the pin state changes or
// recomputes.
func (e *Element) setPin(pinned bool, translation float64) {
	if e.disposed {
		return
	}
	e.pinned = pinned
	e.translation = translation
}
