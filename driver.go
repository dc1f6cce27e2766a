package scrollpin

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// wheelNotchPx converts one wheel notch into virtual-offset units before
// the virtualizer's WheelMultiplier applies.
const wheelNotchPx = 40

// Driver bridges the engine to an Ebitengine game loop. It implements
// Scheduler on top of the loop's tick and polls wheel and touch input into
// the virtualizer. Call Update once from your game's Update method:
//
//	v := scrollpin.NewVirtualizer(scrollpin.DefaultConfig())
//	driver := scrollpin.NewDriver(v)
//	v.Start(driver)
//
//	func (g *game) Update() error { g.driver.Update(); return nil }
type Driver struct {
	v       *Virtualizer
	pending []*scheduled

	prevTouchIDs []ebiten.TouchID
	touchLastY   map[ebiten.TouchID]float64
}

// NewDriver creates a driver feeding input to v.
func NewDriver(v *Virtualizer) *Driver {
	return &Driver{v: v, touchLastY: make(map[ebiten.TouchID]float64)}
}

// Schedule queues fn for the next Update. Implements Scheduler.
func (d *Driver) Schedule(fn func(dt float64)) func() {
	entry := &scheduled{fn: fn}
	d.pending = append(d.pending, entry)
	return func() {
		entry.cancelled = true
		entry.fn = nil
	}
}

// Update polls input devices and fires the frame callbacks scheduled since
// the previous Update with dt = 1/TPS.
func (d *Driver) Update() {
	d.pollWheel()
	d.pollTouches()

	dt := 1.0 / float64(ebiten.TPS())
	batch := d.pending
	d.pending = nil
	for _, entry := range batch {
		if !entry.cancelled {
			entry.fn(dt)
		}
	}
}

// pollWheel feeds this frame's wheel movement into the virtualizer.
// Ebitengine reports scroll-up as positive Y, so the sign flips: scrolling
// down moves the page offset forward.
func (d *Driver) pollWheel() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		d.v.InjectWheel(-dy * wheelNotchPx)
	}
}

// pollTouches turns vertical single-finger drags into scroll deltas.
// Dragging up scrolls the page down, matching platform conventions. Each
// touch is tracked by ID from the frame it appears until it lifts.
func (d *Driver) pollTouches() {
	d.prevTouchIDs = ebiten.AppendTouchIDs(d.prevTouchIDs[:0])

	seen := make(map[ebiten.TouchID]bool, len(d.prevTouchIDs))
	for _, tid := range d.prevTouchIDs {
		_, y := ebiten.TouchPosition(tid)
		fy := float64(y)
		seen[tid] = true
		if last, ok := d.touchLastY[tid]; ok {
			if delta := last - fy; delta != 0 {
				d.v.InjectTouch(delta)
			}
		}
		d.touchLastY[tid] = fy
	}
	for tid := range d.touchLastY {
		if !seen[tid] {
			delete(d.touchLastY, tid)
		}
	}
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run sets up the window and starts the Ebitengine game loop. Convenience
// for composers that do not need custom window handling.
func Run(game ebiten.Game, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("scrollpin: run: %w", err)
	}
	return nil
}
