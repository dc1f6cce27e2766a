package scrollpin

// Scheduler is the host's frame-callback primitive. Schedule arranges for
// fn to run once on the next frame with the elapsed time in seconds and
// returns a cancel func. Cancelling after the frame has fired, or more than
// once, is a no-op.
//
// A nil Scheduler passed to Virtualizer.Start degrades the engine to a
// static no-op: nothing animates, nothing panics.
type Scheduler interface {
	Schedule(fn func(dt float64)) (cancel func())
}

type scheduled struct {
	fn        func(dt float64)
	cancelled bool
}

// StepScheduler is an in-process Scheduler driven by explicit Step calls.
// It backs headless use and tests; the Ebitengine Driver provides the same
// contract on top of a real game loop.
type StepScheduler struct {
	pending []*scheduled
}

// Schedule queues fn for the next Step call.
func (s *StepScheduler) Schedule(fn func(dt float64)) func() {
	entry := &scheduled{fn: fn}
	s.pending = append(s.pending, entry)
	return func() {
		entry.cancelled = true
		entry.fn = nil
	}
}

// Step fires every callback queued before this call, in schedule order,
// passing dt seconds. Callbacks scheduled while the batch runs (the usual
// re-arm pattern) fire on the next Step.
func (s *StepScheduler) Step(dt float64) {
	batch := s.pending
	s.pending = nil
	for _, entry := range batch {
		if !entry.cancelled {
			entry.fn(dt)
		}
	}
}

// Pending reports how many live (un-cancelled) callbacks await the next
// Step. Useful for asserting that teardown left nothing scheduled.
func (s *StepScheduler) Pending() int {
	n := 0
	for _, entry := range s.pending {
		if !entry.cancelled {
			n++
		}
	}
	return n
}
