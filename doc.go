// Package seedtrail implements the interaction model for a GPU feedback
// trail effect: a fixed-size canvas on which dragging the mouse paints a
// trail whose color is seeded by the position where the drag began.
//
// # Overview
//
// The package is split along the GPU boundary. This root package holds the
// pure domain model: pointer events, the interaction state machine
// (Tracker), and the 16-byte uniform record mirrored into a GPU buffer.
// It carries no GPU dependencies, so it is fully testable on any machine.
// The GPU work lives in internal/gpu (WebGPU context, feedback textures,
// the two render pipelines) and internal/window (GLFW host window and
// pointer event delivery). cmd/seedtrail wires them together.
//
// # Data Flow
//
//	window callbacks -> queue -> Tracker.Apply -> Tracker.Uniforms
//	    -> gpu.Context.WriteUniforms -> per-frame gpu.Context.RenderFrame
//
// Rendering is driven by the frame clock, not by input: the render loop
// runs every frame regardless of event arrival, and picks up whatever
// uniform values the event path last wrote. The two activity sources meet
// only at the GPU queue, so no lock ties an event to a frame.
//
// # Coordinate System
//
// All positions are in canvas pixels: origin at the top-left of the
// 1024x1024 canvas, X right, Y down. The host window scales cursor
// coordinates to this space before events enter the queue.
package seedtrail

// Canvas dimensions in pixels. The surface, both feedback textures, and
// the pointer coordinate space all use this fixed size; nothing resizes.
const (
	CanvasWidth  = 1024
	CanvasHeight = 1024
)
