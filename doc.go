// Package scrollpin is a scroll-pinned phase animation engine for
// slide-show style marketing pages built on [Ebitengine].
//
// As the user scrolls through a fixed virtual distance, each pinned
// section stays locked in the viewport while its content fades and shifts
// with scroll progress. scrollpin provides the temporal core: the scroll
// virtualizer that smooths raw wheel/touch input into an eased virtual
// offset, the pin controller that derives a normalized [0, 1] progress
// value while a section is pinned, and the pure phase functions that map
// progress to opacity, vertical drift, and an active item index. Turning
// those values into pixels is the composer's job.
//
// # Quick start
//
//	v := scrollpin.NewVirtualizer(scrollpin.DefaultConfig())
//	driver := scrollpin.NewDriver(v)
//	v.Start(driver)
//	defer v.Stop()
//
//	pins := scrollpin.NewPins(v, func() float64 { return 800 })
//	hero := scrollpin.NewElement(0, 800)
//	binding := scrollpin.NewFadeBinding(hero, nil)
//	pin := pins.Register(scrollpin.PinConfig{
//		Trigger:    hero,
//		OnProgress: binding.Func(),
//	})
//	defer pin.Release()
//
//	func (g *game) Update() error { g.driver.Update(); return nil }
//
// Each frame the driver polls input, the virtualizer lerps the offset
// toward the raw target, and every registered pin observes the fresh
// offset in the same tick; the offset update always completes before any
// pin reads it.
//
// # Phases
//
// Progress maps to opacity through a piecewise ramp-hold-ramp: with
// [DefaultTimings] content fades in over the first 20% of the pin, holds
// at full opacity through 70%, fades out by 90%, and stays hidden for the
// final 10%. Multi-item sections ([ItemBinding]) step through their items
// one at a time across the hold window, a hard cut per item with no
// cross-fade.
//
// # Lifecycle
//
// The composer owns the single [Virtualizer] per page and is the only
// party that starts and stops it. Pins are registered when a section
// mounts and released when it unmounts; releasing a pin that never
// activated, or releasing twice, is a no-op. Starting with a nil
// [Scheduler] degrades to a static, unanimated page rather than failing.
//
// [Ebitengine]: https://ebitengine.org
package scrollpin
