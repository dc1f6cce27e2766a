package scrollpin

type pinState uint8

const (
	pinBefore pinState = iota // offset above the trigger's start edge
	pinPinned                 // offset within [start, start+distance]
	pinAfter                  // offset past the pinned range
)

// DefaultDistanceVH is the pin distance, in viewport-height hundredths
// (200 = two viewport heights), used when a registration leaves DistanceVH
// zero.
const DefaultDistanceVH = 200

// PinConfig describes one pinned section registration.
type PinConfig struct {
	// Trigger is the element held fixed while the section is pinned. A nil
	// trigger makes Register a no-op for this pass; the composer retries
	// once the element exists.
	Trigger *Element
	// DistanceVH is the pinned scroll distance in viewport-height
	// hundredths. Defaults to DefaultDistanceVH.
	DistanceVH float64
	// Timings overrides the phase thresholds for this section's bindings.
	// Nil means DefaultTimings.
	Timings *Timings
	// OnProgress receives the normalized [0, 1] progress on every frame
	// the section is pinned, plus exactly once with the boundary value
	// when the pinned range is exited.
	OnProgress func(progress float64)
}

// Pins registers pinned sections against one Virtualizer. The composer
// creates one per page, registers a pin per mounted section, and releases
// pins as sections unmount (ReleaseAll on page teardown).
type Pins struct {
	v         *Virtualizer
	viewportH func() float64
	nextID    uint64
	live      map[uint64]*Pin
}

// NewPins creates a registry bound to v. viewportH is queried once per
// registration to convert DistanceVH into offset units; nil is treated as
// a zero-height viewport, which makes every registration a no-op.
func NewPins(v *Virtualizer, viewportH func() float64) *Pins {
	if viewportH == nil {
		viewportH = func() float64 { return 0 }
	}
	return &Pins{v: v, viewportH: viewportH, live: make(map[uint64]*Pin)}
}

// Register creates a pin for one section. Returns nil when the trigger is
// missing or the computed pin distance is not positive; both mean "not
// ready this pass", never an error. The pin's start edge and distance are
// captured now; later viewport resizes do not retroactively rescale a live
// pin (the composer re-registers when that matters).
func (ps *Pins) Register(cfg PinConfig) *Pin {
	if cfg.Trigger == nil || cfg.Trigger.IsDisposed() {
		return nil
	}
	if cfg.DistanceVH == 0 {
		cfg.DistanceVH = DefaultDistanceVH
	}
	distance := cfg.DistanceVH / 100 * ps.viewportH()
	if distance <= 0 {
		return nil
	}
	timings := DefaultTimings
	if cfg.Timings != nil {
		timings = *cfg.Timings
	}

	ps.nextID++
	p := &Pin{
		id:         ps.nextID,
		owner:      ps,
		el:         cfg.Trigger,
		start:      cfg.Trigger.Top,
		distance:   distance,
		timings:    timings,
		onProgress: cfg.OnProgress,
	}
	p.unsubscribe = ps.v.Subscribe(p.observe)
	ps.live[p.id] = p
	return p
}

// Len reports the number of live registrations.
func (ps *Pins) Len() int { return len(ps.live) }

// ReleaseAll releases every live pin. Part of page teardown, alongside
// Virtualizer.Stop.
func (ps *Pins) ReleaseAll() {
	for _, p := range ps.live {
		p.Release()
	}
}

// Pin is one live pinned-section registration. It observes the virtual
// offset, drives the Before/Pinned/After state machine, holds the trigger
// element in place while pinned, and reports progress to the section's
// callback.
type Pin struct {
	id         uint64
	owner      *Pins
	el         *Element
	start      float64
	distance   float64
	timings    Timings
	onProgress func(float64)

	state       pinState
	progress    float64
	released    bool
	unsubscribe func()
}

// Timings returns the phase thresholds this section was registered with.
func (p *Pin) Timings() Timings { return p.timings }

// Progress returns the last computed progress value (0 before the section
// is ever pinned).
func (p *Pin) Progress() float64 { return p.progress }

// Active reports whether the section is currently pinned.
func (p *Pin) Active() bool { return p.state == pinPinned }

// SpacerPx is the scroll room, in offset units, the composer must reserve
// below the trigger so later content is not displaced while it is pinned.
func (p *Pin) SpacerPx() float64 { return p.distance }

// Release tears the registration down: unsubscribes from the virtualizer
// and forgets the pin. Safe to call on a pin that was never pinned, and
// safe to call twice.
func (p *Pin) Release() {
	if p.released {
		return
	}
	p.released = true
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	delete(p.owner.live, p.id)
}

// observe runs once per virtualizer tick with the fresh offset. Inside the
// pinned range it recomputes progress every frame; crossing out of the
// range emits the boundary value (1 forward, 0 backward) exactly once.
func (p *Pin) observe(offset float64) {
	if p.released {
		return
	}
	rel := offset - p.start
	switch {
	case rel < 0:
		if p.state != pinBefore {
			p.el.setPin(false, 0)
			p.emit(0)
		}
		p.state = pinBefore
	case rel > p.distance:
		if p.state != pinAfter {
			p.el.setPin(false, p.distance)
			p.emit(1)
		}
		p.state = pinAfter
	default:
		p.state = pinPinned
		p.el.setPin(true, rel)
		p.emit(Clamp01(rel / p.distance))
	}
}

func (p *Pin) emit(progress float64) {
	p.progress = progress
	if p.onProgress != nil {
		p.onProgress(progress)
	}
}
