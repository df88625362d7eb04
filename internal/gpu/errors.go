package gpu

import "errors"

// Sentinel errors for the failure classes callers branch on. Wrapped
// with context at the failure site; test with errors.Is.
var (
	// ErrNoAdapter means no WebGPU adapter was compatible with the
	// surface. Startup cannot continue.
	ErrNoAdapter = errors.New("gpu: no compatible adapter")

	// ErrNoDevice means the selected adapter refused to provide a
	// device. Startup cannot continue.
	ErrNoDevice = errors.New("gpu: device request failed")

	// ErrShaderInvalid means the embedded WGSL failed validation before
	// any pipeline was built from it.
	ErrShaderInvalid = errors.New("gpu: shader validation failed")

	// ErrSurfaceAcquire means the swapchain texture could not be
	// acquired this frame. The condition is usually transient; the
	// caller owns the recovery policy (reconfigure and skip the frame).
	ErrSurfaceAcquire = errors.New("gpu: surface texture unavailable")

	// ErrContextClosed reports use of a Context after Close.
	ErrContextClosed = errors.New("gpu: context closed")
)
