// Package window wraps the native GLFW window behind a small interface:
// surface creation for the GPU context, pointer event delivery, and the
// frame loop. GLFW requires that the window is created and polled from
// the main OS thread; callers must lock the main goroutine to its
// thread before calling New.
package window

import (
	"context"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/seedtrail/seedtrail"
)

// Window is the host surface the trail effect renders into.
type Window interface {
	// Size returns the window size in screen coordinates.
	Size() (int, int)

	// FramebufferSize returns the backing framebuffer size in pixels.
	// On high-DPI displays this differs from Size.
	FramebufferSize() (int, int)

	// SurfaceDescriptor describes the native surface for WebGPU.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Subscribe installs pointer callbacks that translate native mouse
	// input into events and hand them to push. Cursor coordinates are
	// scaled from screen to framebuffer pixels before delivery. Only
	// one subscription is active at a time; subscribing again replaces
	// the previous callbacks.
	Subscribe(push func(seedtrail.Event)) *Subscription

	// Run polls events and calls frame once per iteration until the
	// window is closed, the context is cancelled, or frame returns an
	// error. Must be called on the thread that created the window.
	Run(ctx context.Context, frame func() error) error

	// Destroy releases the window and shuts down the windowing system.
	Destroy()
}

// Subscription detaches its callbacks on Close. After Close returns no
// further events are delivered.
type Subscription struct {
	detach func()
}

// Close removes the subscription's callbacks. Idempotent.
func (s *Subscription) Close() {
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
}
