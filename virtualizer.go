package scrollpin

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settleEpsilon is the offset/target gap below which the lerp snaps to the
// target instead of approaching it asymptotically forever.
const settleEpsilon = 0.01

// Config tunes the scroll virtualizer. Zero numeric fields are replaced by
// the DefaultConfig values at construction; SmoothWheel is taken as given,
// so start from DefaultConfig when you want eased wheel input.
type Config struct {
	// Lerp is the per-frame interpolation factor pulling the virtual
	// offset toward the raw target. Higher is snappier, lower is smoother.
	Lerp float64
	// WheelMultiplier scales injected wheel deltas.
	WheelMultiplier float64
	// TouchMultiplier scales injected touch-drag deltas.
	TouchMultiplier float64
	// SmoothWheel eases wheel input through the lerp. When false, wheel
	// deltas land on the offset immediately (touch is always eased).
	SmoothWheel bool
}

// DefaultConfig returns the tuning used by the stock marketing page:
// smooth wheel at lerp 0.085, touch deltas doubled.
func DefaultConfig() Config {
	return Config{Lerp: 0.085, WheelMultiplier: 1, TouchMultiplier: 2, SmoothWheel: true}
}

type inputKind uint8

const (
	inputWheel inputKind = iota
	inputTouch
)

type rawDelta struct {
	kind   inputKind
	amount float64
}

type subscription struct {
	fn        func(offset float64)
	cancelled bool
}

// Virtualizer converts bursty raw scroll input into a smoothly
// interpolated virtual offset and drives the per-frame tick the rest of
// the engine synchronizes to. It is the sole writer of the offset; pin
// controllers subscribe and read it.
//
// One Virtualizer exists per page lifetime. The page composer owns it and
// is the only party that calls Start and Stop.
type Virtualizer struct {
	cfg Config

	offset float64
	target float64
	limit  float64

	queue []rawDelta
	glide *gween.Tween

	subs []*subscription

	sched   Scheduler
	cancel  func()
	running bool
}

// NewVirtualizer creates a stopped Virtualizer. Zero numeric config fields
// fall back to DefaultConfig values.
func NewVirtualizer(cfg Config) *Virtualizer {
	def := DefaultConfig()
	if cfg.Lerp <= 0 || cfg.Lerp > 1 {
		cfg.Lerp = def.Lerp
	}
	if cfg.WheelMultiplier == 0 {
		cfg.WheelMultiplier = def.WheelMultiplier
	}
	if cfg.TouchMultiplier == 0 {
		cfg.TouchMultiplier = def.TouchMultiplier
	}
	return &Virtualizer{cfg: cfg}
}

// Offset returns the current virtual scroll offset.
func (v *Virtualizer) Offset() float64 { return v.offset }

// Target returns the raw scroll target the offset is easing toward.
func (v *Virtualizer) Target() float64 { return v.target }

// Running reports whether the frame loop is active.
func (v *Virtualizer) Running() bool { return v.running }

// SetLimit clamps the scrollable range to [0, max]. A non-positive max
// leaves the range unbounded. The composer normally sets this to the total
// page height minus one viewport.
func (v *Virtualizer) SetLimit(max float64) {
	v.limit = max
	if max > 0 {
		v.target = math.Min(math.Max(v.target, 0), max)
		v.offset = math.Min(math.Max(v.offset, 0), max)
	}
}

// Start begins the per-frame update loop on the given scheduler. Calling
// Start on a running virtualizer is a no-op, as is passing a nil scheduler
// (the host lacks a frame primitive; the page renders statically).
func (v *Virtualizer) Start(s Scheduler) {
	if v.running || s == nil {
		return
	}
	v.sched = s
	v.running = true
	v.cancel = s.Schedule(v.tick)
}

// Stop cancels the pending frame callback and drops any queued input.
// Idempotent: stopping a stopped virtualizer does nothing. Subscriptions
// survive a Stop so a later Start resumes them.
func (v *Virtualizer) Stop() {
	if !v.running {
		return
	}
	v.running = false
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.queue = v.queue[:0]
	v.glide = nil
}

// Subscribe registers fn to be called with the fresh offset at the end of
// every tick, after the offset update for that frame has completed.
// Subscribers are notified in registration order. The returned cancel func
// is idempotent.
func (v *Virtualizer) Subscribe(fn func(offset float64)) (cancel func()) {
	sub := &subscription{fn: fn}
	v.subs = append(v.subs, sub)
	return func() {
		sub.cancelled = true
		sub.fn = nil
	}
}

// InjectWheel queues a wheel delta (positive scrolls down) for the next
// tick. Dropped while the virtualizer is stopped.
func (v *Virtualizer) InjectWheel(delta float64) {
	if !v.running || delta == 0 {
		return
	}
	v.queue = append(v.queue, rawDelta{kind: inputWheel, amount: delta})
}

// InjectTouch queues a touch-drag delta (positive scrolls down) for the
// next tick. Dropped while the virtualizer is stopped.
func (v *Virtualizer) InjectTouch(delta float64) {
	if !v.running || delta == 0 {
		return
	}
	v.queue = append(v.queue, rawDelta{kind: inputTouch, amount: delta})
}

// ScrollTo glides the virtual offset to the given position over duration
// seconds using the easing function. A zero duration or nil easing jumps
// immediately. Raw input arriving mid-glide cancels the glide and takes
// over from wherever the offset is.
func (v *Virtualizer) ScrollTo(to float64, duration float32, fn ease.TweenFunc) {
	if v.limit > 0 {
		to = math.Min(math.Max(to, 0), v.limit)
	}
	if duration <= 0 || fn == nil {
		v.glide = nil
		v.offset = to
		v.target = to
		v.notify()
		return
	}
	v.target = to
	v.glide = gween.New(float32(v.offset), float32(to), duration, fn)
}

// tick is the frame callback: it re-arms itself, advances the offset, and
// notifies subscribers.
func (v *Virtualizer) tick(dt float64) {
	if !v.running {
		return
	}
	v.cancel = v.sched.Schedule(v.tick)
	v.step(dt)
}

// step advances one frame: drain raw input into the target, advance any
// glide, lerp the offset toward the target, then push the result to
// subscribers.
func (v *Virtualizer) step(dt float64) {
	if len(v.queue) > 0 {
		if v.glide != nil {
			// User input overrides an in-flight glide: take over from
			// wherever the glide left the page.
			v.glide = nil
			v.target = v.offset
		}
		for _, d := range v.queue {
			switch d.kind {
			case inputWheel:
				amount := d.amount * v.cfg.WheelMultiplier
				v.target += amount
				if !v.cfg.SmoothWheel {
					v.offset += amount
				}
			case inputTouch:
				v.target += d.amount * v.cfg.TouchMultiplier
			}
		}
		v.queue = v.queue[:0]
	}

	if v.limit > 0 {
		v.target = math.Min(math.Max(v.target, 0), v.limit)
		v.offset = math.Min(math.Max(v.offset, 0), v.limit)
	}

	if v.glide != nil {
		val, done := v.glide.Update(float32(dt))
		v.offset = float64(val)
		if done {
			v.glide = nil
		}
	} else {
		v.offset += (v.target - v.offset) * v.cfg.Lerp
		if math.Abs(v.target-v.offset) < settleEpsilon {
			v.offset = v.target
		}
	}

	v.notify()
}

// notify pushes the current offset to live subscribers, then compacts out
// any that cancelled during delivery.
func (v *Virtualizer) notify() {
	for _, sub := range v.subs {
		if !sub.cancelled {
			sub.fn(v.offset)
		}
	}
	live := v.subs[:0]
	for _, sub := range v.subs {
		if !sub.cancelled {
			live = append(live, sub)
		}
	}
	v.subs = live
}
