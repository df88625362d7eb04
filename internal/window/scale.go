package window

import "github.com/go-gl/mathgl/mgl32"

// ScaleCursor maps a cursor position in screen coordinates onto the
// framebuffer pixel grid. Degenerate window sizes pass the position
// through unscaled.
func ScaleCursor(x, y float64, winW, winH, fbW, fbH int) mgl32.Vec2 {
	sx, sy := 1.0, 1.0
	if winW > 0 {
		sx = float64(fbW) / float64(winW)
	}
	if winH > 0 {
		sy = float64(fbH) / float64(winH)
	}
	return mgl32.Vec2{float32(x * sx), float32(y * sy)}
}
