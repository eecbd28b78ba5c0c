package editsync

import "go.uber.org/atomic"

// Scheduler defers a function until after the current update cycle. The
// default runs it as soon as the guarded update returns; hosts with their
// own event loop can queue it for the next tick instead, which is what
// keeps the guard alive across a reactive echo of the update it wraps.
type Scheduler func(func())

// Guard is the single-writer editing flag that breaks the circular
// reactive dependency between the schema model and its JSON text view:
// while a text-originated schema update is in flight, the "schema changed,
// re-serialize to text" rule must not fire, or it would clobber the user's
// in-progress keystrokes.
type Guard struct {
	editing  atomic.Bool
	schedule Scheduler
}

// NewGuard builds a guard with the given release scheduler. A nil
// scheduler releases synchronously after the guarded update completes.
func NewGuard(schedule Scheduler) *Guard {
	if schedule == nil {
		schedule = func(fn func()) { fn() }
	}
	return &Guard{schedule: schedule}
}

// Hold marks an edit as in flight, runs the update, and schedules the
// release. The flag stays set for the synchronous update plus whatever
// delay the scheduler adds.
func (g *Guard) Hold(update func()) {
	g.editing.Store(true)
	update()
	g.schedule(func() {
		g.editing.Store(false)
	})
}

// Held reports whether an edit is currently in flight.
func (g *Guard) Held() bool {
	return g.editing.Load()
}
