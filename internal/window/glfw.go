package window

import (
	"context"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/seedtrail/seedtrail"
)

type glfwWindow struct {
	win *glfw.Window
}

// New initializes GLFW and creates a fixed-size window suitable for a
// WebGPU surface. The caller owns the window and must call Destroy.
func New(title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}

	// No GL context: presentation goes through the WebGPU surface. The
	// canvas is fixed-size, so the window is too.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(seedtrail.CanvasWidth, seedtrail.CanvasHeight, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create window: %w", err)
	}
	return &glfwWindow{win: win}, nil
}

func (w *glfwWindow) Size() (int, int) {
	return w.win.GetSize()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *glfwWindow) Subscribe(push func(seedtrail.Event)) *Subscription {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		push(seedtrail.MouseMove{Pos: w.scaleCursor(x, y)})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			push(seedtrail.MouseDown{})
		case glfw.Release:
			push(seedtrail.MouseUp{})
		}
	})

	return &Subscription{detach: func() {
		w.win.SetCursorPosCallback(nil)
		w.win.SetMouseButtonCallback(nil)
	}}
}

// scaleCursor converts a cursor position from screen coordinates to
// framebuffer pixels, which is the coordinate space the shader works
// in. The two differ on high-DPI displays.
func (w *glfwWindow) scaleCursor(x, y float64) mgl32.Vec2 {
	winW, winH := w.win.GetSize()
	fbW, fbH := w.win.GetFramebufferSize()
	return ScaleCursor(x, y, winW, winH, fbW, fbH)
}

func (w *glfwWindow) Run(ctx context.Context, frame func() error) error {
	for !w.win.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		glfw.PollEvents()
		if err := frame(); err != nil {
			return err
		}
	}
	return nil
}

func (w *glfwWindow) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
