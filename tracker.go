package seedtrail

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Tracker folds pointer events into interaction state and derives the
// uniform values the shader sees. It is the single mutable object shared
// between the input path and the render path, and it is deliberately not
// lock-guarded: the event-consuming goroutine owns it exclusively, applies
// each event, and immediately publishes the derived Uniforms to the GPU
// queue. Nothing else reads the Tracker.
//
// The state machine has two states, Idle (button up) and Dragging (button
// down). Transitions:
//
//   - MouseDown: -> Dragging; the drag start is snapshotted from the last
//     known cursor position, which may still be unknown if no move event
//     preceded the press.
//   - MouseUp: -> Idle.
//   - MouseMove: records the position unconditionally in either state.
//
// No event is ever rejected; there is no error path.
type Tracker struct {
	down  bool
	last  *mgl32.Vec2
	start *mgl32.Vec2
}

// NewTracker returns a Tracker in the Idle state with no known positions.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Apply advances the state machine by one event. Every event is traced at
// Warn level, matching the original development diagnostics.
func (t *Tracker) Apply(ev Event) {
	Logger().Warn("pointer event", "event", ev.String())

	switch e := ev.(type) {
	case MouseDown:
		t.down = true
		if t.last != nil {
			p := *t.last
			t.start = &p
		} else {
			t.start = nil
		}
	case MouseUp:
		t.down = false
	case MouseMove:
		p := e.Pos
		t.last = &p
	}
}

// Dragging reports whether a button press is in progress.
func (t *Tracker) Dragging() bool { return t.down }

// LastPos returns the most recent cursor position, if any move event has
// been seen.
func (t *Tracker) LastPos() (mgl32.Vec2, bool) {
	if t.last == nil {
		return mgl32.Vec2{}, false
	}
	return *t.last, true
}

// StartPos returns the position snapshotted at the most recent press, if
// one was known at that moment.
func (t *Tracker) StartPos() (mgl32.Vec2, bool) {
	if t.start == nil {
		return mgl32.Vec2{}, false
	}
	return *t.start, true
}

// Uniforms derives the shader-visible values from the current state.
//
// The mouse position is only active while the button is held: it reads
// Sentinel when the button is up even if the cursor position is known.
// The seed is asymmetric on purpose: it keeps the last drag-start point
// across releases and is only overwritten by the next press.
func (t *Tracker) Uniforms() Uniforms {
	u := Uniforms{MousePos: Sentinel, Seed: Sentinel}

	if t.down && t.last != nil {
		u.MousePos = *t.last
	}
	if t.start != nil {
		u.Seed = *t.start
	}

	Logger().Warn("uniforms derived",
		"mouse_x", u.MousePos.X(), "mouse_y", u.MousePos.Y(),
		"seed_x", u.Seed.X(), "seed_y", u.Seed.Y(),
	)
	return u
}
