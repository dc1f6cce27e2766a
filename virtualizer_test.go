package scrollpin

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const frameDT = 1.0 / 60

// runFrames steps the scheduler n times at 60 FPS.
func runFrames(s *StepScheduler, n int) {
	for i := 0; i < n; i++ {
		s.Step(frameDT)
	}
}

func TestVirtualizerLerpsTowardTarget(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	defer v.Stop()

	v.InjectWheel(100)
	sched.Step(frameDT)

	if v.Target() != 100 {
		t.Fatalf("target = %v, want 100", v.Target())
	}
	first := v.Offset()
	if first <= 0 || first >= 100 {
		t.Fatalf("offset after one frame = %v, want between 0 and 100", first)
	}

	// Offset settles exactly on the target after enough frames.
	runFrames(sched, 500)
	if v.Offset() != 100 {
		t.Errorf("offset never settled: %v, want exactly 100", v.Offset())
	}
}

func TestVirtualizerConvergesMonotonically(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	defer v.Stop()

	v.InjectWheel(500)
	prev := 0.0
	for i := 0; i < 200; i++ {
		sched.Step(frameDT)
		got := v.Offset()
		if got < prev {
			t.Fatalf("offset moved backwards at frame %d: %v after %v", i, got, prev)
		}
		prev = got
	}
}

func TestVirtualizerWheelMultiplier(t *testing.T) {
	sched := &StepScheduler{}
	cfg := DefaultConfig()
	cfg.WheelMultiplier = 0.5
	v := NewVirtualizer(cfg)
	v.Start(sched)
	defer v.Stop()

	v.InjectWheel(100)
	sched.Step(frameDT)
	if v.Target() != 50 {
		t.Errorf("target = %v, want 50 with wheel multiplier 0.5", v.Target())
	}
}

func TestVirtualizerTouchMultiplier(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig()) // touch multiplier 2
	v.Start(sched)
	defer v.Stop()

	v.InjectTouch(50)
	sched.Step(frameDT)
	if v.Target() != 100 {
		t.Errorf("target = %v, want 100 with touch multiplier 2", v.Target())
	}
}

func TestVirtualizerRawWheelSkipsEasing(t *testing.T) {
	sched := &StepScheduler{}
	cfg := DefaultConfig()
	cfg.SmoothWheel = false
	v := NewVirtualizer(cfg)
	v.Start(sched)
	defer v.Stop()

	v.InjectWheel(100)
	sched.Step(frameDT)
	if v.Offset() != 100 {
		t.Errorf("offset = %v, want 100 immediately with SmoothWheel off", v.Offset())
	}
}

func TestVirtualizerDefaultsFillZeroConfig(t *testing.T) {
	v := NewVirtualizer(Config{})
	def := DefaultConfig()
	if v.cfg.Lerp != def.Lerp {
		t.Errorf("Lerp = %v, want default %v", v.cfg.Lerp, def.Lerp)
	}
	if v.cfg.WheelMultiplier != def.WheelMultiplier {
		t.Errorf("WheelMultiplier = %v, want default %v", v.cfg.WheelMultiplier, def.WheelMultiplier)
	}
	if v.cfg.TouchMultiplier != def.TouchMultiplier {
		t.Errorf("TouchMultiplier = %v, want default %v", v.cfg.TouchMultiplier, def.TouchMultiplier)
	}
}

func TestVirtualizerNilSchedulerIsNoOp(t *testing.T) {
	v := NewVirtualizer(DefaultConfig())
	v.Start(nil)
	if v.Running() {
		t.Fatal("virtualizer should not run without a scheduler")
	}
	v.InjectWheel(100) // dropped, not queued
	v.Stop()           // no-op, must not panic
	if v.Offset() != 0 || v.Target() != 0 {
		t.Errorf("offset/target = %v/%v, want 0/0", v.Offset(), v.Target())
	}
}

func TestVirtualizerStopCancelsPendingFrame(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())

	v.Start(sched)
	if sched.Pending() != 1 {
		t.Fatalf("pending frames after Start = %d, want 1", sched.Pending())
	}

	v.Stop()
	if sched.Pending() != 0 {
		t.Errorf("pending frames after Stop = %d, want 0 (leak)", sched.Pending())
	}

	// Idempotent teardown.
	v.Stop()
	if sched.Pending() != 0 {
		t.Errorf("second Stop changed pending frames: %d", sched.Pending())
	}
}

func TestVirtualizerStartTwiceKeepsOneLoop(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	v.Start(sched)
	defer v.Stop()

	if sched.Pending() != 1 {
		t.Errorf("pending frames after double Start = %d, want 1", sched.Pending())
	}
}

func TestVirtualizerTickRearmsEachFrame(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	defer v.Stop()

	for i := 0; i < 5; i++ {
		sched.Step(frameDT)
		if sched.Pending() != 1 {
			t.Fatalf("pending after frame %d = %d, want 1", i, sched.Pending())
		}
	}
}

func TestVirtualizerSubscribersSeeFreshOffset(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	defer v.Stop()

	var seen float64
	v.Subscribe(func(offset float64) { seen = offset })

	v.InjectWheel(100)
	sched.Step(frameDT)

	if seen != v.Offset() {
		t.Errorf("subscriber saw %v, virtualizer offset is %v", seen, v.Offset())
	}
	if seen == 0 {
		t.Error("subscriber should have seen the post-update offset, got 0")
	}
}

func TestVirtualizerSubscriberOrder(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	defer v.Stop()

	var order []int
	v.Subscribe(func(float64) { order = append(order, 1) })
	v.Subscribe(func(float64) { order = append(order, 2) })
	v.Subscribe(func(float64) { order = append(order, 3) })

	sched.Step(frameDT)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("notification order = %v, want [1 2 3]", order)
	}
}

func TestVirtualizerUnsubscribeDuringNotify(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	defer v.Stop()

	calls := 0
	var cancel func()
	cancel = v.Subscribe(func(float64) {
		calls++
		cancel() // self-removal mid-delivery must be safe
	})

	sched.Step(frameDT)
	sched.Step(frameDT)

	if calls != 1 {
		t.Errorf("subscriber called %d times after self-cancel, want 1", calls)
	}
}

func TestVirtualizerScrollToGlides(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	defer v.Stop()

	v.ScrollTo(1000, 1.0, ease.Linear)

	// Half the duration in: roughly halfway there.
	sched.Step(0.5)
	if math.Abs(v.Offset()-500) > 5 {
		t.Errorf("offset at glide midpoint = %v, want ~500", v.Offset())
	}

	sched.Step(0.5)
	if math.Abs(v.Offset()-1000) > 1 {
		t.Errorf("offset at glide end = %v, want ~1000", v.Offset())
	}
}

func TestVirtualizerScrollToZeroDurationJumps(t *testing.T) {
	v := NewVirtualizer(DefaultConfig())

	var seen float64
	v.Subscribe(func(offset float64) { seen = offset })

	v.ScrollTo(640, 0, nil)
	if v.Offset() != 640 || v.Target() != 640 {
		t.Errorf("offset/target = %v/%v, want 640/640", v.Offset(), v.Target())
	}
	if seen != 640 {
		t.Errorf("subscriber saw %v after jump, want 640", seen)
	}
}

func TestVirtualizerInputCancelsGlide(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	defer v.Stop()

	v.ScrollTo(1000, 2.0, ease.Linear)
	sched.Step(0.5)
	mid := v.Offset()

	v.InjectWheel(10)
	sched.Step(frameDT)

	// The glide is gone: input takes over from where the glide left off.
	if math.Abs(v.Target()-(mid+10)) > 1e-6 {
		t.Errorf("target = %v, want %v (glide offset plus wheel delta)", v.Target(), mid+10)
	}
	if v.Target() >= 1000 {
		t.Errorf("target = %v, glide destination should have been abandoned", v.Target())
	}
}

func TestVirtualizerLimitClampsRange(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.SetLimit(500)
	v.Start(sched)
	defer v.Stop()

	v.InjectWheel(10000)
	runFrames(sched, 500)
	if v.Offset() != 500 {
		t.Errorf("offset = %v, want clamped to 500", v.Offset())
	}

	v.InjectWheel(-20000)
	runFrames(sched, 500)
	if v.Offset() != 0 {
		t.Errorf("offset = %v, want clamped to 0", v.Offset())
	}
}

func TestVirtualizerStopDropsQueuedInput(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)

	v.InjectWheel(100)
	v.Stop()
	v.Start(sched)
	sched.Step(frameDT)

	if v.Target() != 0 {
		t.Errorf("target = %v, queued input should not survive Stop", v.Target())
	}
	v.Stop()
}

func TestVirtualizerStepZeroAlloc(t *testing.T) {
	sched := &StepScheduler{}
	v := NewVirtualizer(DefaultConfig())
	v.Start(sched)
	defer v.Stop()
	v.InjectWheel(1000)
	sched.Step(frameDT)

	result := testing.AllocsPerRun(100, func() {
		v.step(frameDT)
	})
	if result > 0 {
		t.Errorf("step allocated %f times per run, want 0", result)
	}
}
