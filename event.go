package seedtrail

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Event is a discrete pointer interaction produced by the host window and
// consumed exactly once, in FIFO order, by the event loop. The three
// variants mirror the browser-style mousemove/mousedown/mouseup triple;
// no other input source exists.
type Event interface {
	fmt.Stringer

	// isEvent restricts implementations to this package so the Tracker's
	// switch over variants stays exhaustive.
	isEvent()
}

// MouseMove reports the cursor at a position already scaled to canvas
// pixels. Delivered on every cursor movement, pressed or not.
type MouseMove struct {
	Pos mgl32.Vec2
}

// MouseDown reports a button press. The position is not carried; the
// Tracker snapshots its last known cursor position instead.
type MouseDown struct{}

// MouseUp reports a button release.
type MouseUp struct{}

func (MouseMove) isEvent() {}
func (MouseDown) isEvent() {}
func (MouseUp) isEvent()   {}

func (e MouseMove) String() string {
	return fmt.Sprintf("MouseMove(%g, %g)", e.Pos.X(), e.Pos.Y())
}

func (MouseDown) String() string { return "MouseDown" }
func (MouseUp) String() string   { return "MouseUp" }
