// Package gpu owns every WebGPU object behind the trail effect: the
// instance, surface, adapter, device and queue, the feedback texture
// pair, the uniform buffer, and the two render pipelines built from the
// shared shader module.
//
// All resources are created once, sized to the fixed 1024x1024 canvas,
// and live until Close. Initialization failures are terminal: the
// constructor returns an error and the caller is expected to abort
// startup rather than retry.
package gpu

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/seedtrail/seedtrail"
)

// Config carries everything the context needs from the host window.
type Config struct {
	// Surface describes the native window surface to present into.
	Surface *wgpu.SurfaceDescriptor

	// VSync selects FIFO presentation when true, immediate when false.
	VSync bool
}

// Context is the GPU side of the trail effect.
//
// WriteUniforms may be called from the event goroutine while RenderFrame
// runs on the main thread; both target the device queue, which is safe
// for concurrent use. Context state itself is guarded for the
// Close/Reconfigure cases.
type Context struct {
	mu     sync.RWMutex
	closed bool

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat wgpu.TextureFormat
	alphaMode     wgpu.CompositeAlphaMode
	presentMode   wgpu.PresentMode

	// Feedback pair: the trail pass samples source and renders into
	// target; after the pass, target is copied back into source so the
	// next frame sees this frame's output.
	sourceTex  *wgpu.Texture
	targetTex  *wgpu.Texture
	sourceView *wgpu.TextureView
	targetView *wgpu.TextureView

	uniformBuf *wgpu.Buffer

	texLayout     *wgpu.BindGroupLayout
	uniformLayout *wgpu.BindGroupLayout

	sourceBind  *wgpu.BindGroup
	targetBind  *wgpu.BindGroup
	uniformBind *wgpu.BindGroup

	trailPipeline   *wgpu.RenderPipeline
	presentPipeline *wgpu.RenderPipeline
}

// New creates the full GPU context for the given surface. Any failure is
// terminal: partially created resources are released and a wrapped error
// is returned.
func New(cfg Config) (*Context, error) {
	if err := validateShader(); err != nil {
		return nil, err
	}

	c := &Context{presentMode: wgpu.PresentModeImmediate}
	if cfg.VSync {
		c.presentMode = wgpu.PresentModeFifo
	}

	if err := c.init(cfg); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Context) init(cfg Config) error {
	log := seedtrail.Logger()

	c.instance = wgpu.CreateInstance(nil)
	c.surface = c.instance.CreateSurface(cfg.Surface)

	adapter, err := c.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: c.surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	c.adapter = adapter
	log.Info("gpu: adapter selected", "name", adapter.GetInfo().Name)

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "seedtrail device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	c.device = device
	c.queue = device.GetQueue()

	c.configureSurface()
	log.Info("gpu: surface configured",
		"format", c.surfaceFormat,
		"width", seedtrail.CanvasWidth,
		"height", seedtrail.CanvasHeight,
	)

	if err := c.createResources(); err != nil {
		return err
	}
	return c.createPipelines()
}

// configureSurface (re)applies the fixed surface configuration using the
// first format and alpha mode the adapter reports for this surface.
func (c *Context) configureSurface() {
	caps := c.surface.GetCapabilities(c.adapter)
	c.surfaceFormat = caps.Formats[0]
	c.alphaMode = caps.AlphaModes[0]

	c.surface.Configure(c.adapter, c.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      c.surfaceFormat,
		Width:       seedtrail.CanvasWidth,
		Height:      seedtrail.CanvasHeight,
		PresentMode: c.presentMode,
		AlphaMode:   c.alphaMode,
	})
}

// createResources builds the feedback texture pair, the uniform buffer,
// and the three bind groups shared by the pipelines.
func (c *Context) createResources() error {
	var err error

	// The target is rendered into and copied from; the source is only
	// ever sampled and copied into. WebGPU zero-initializes both, so the
	// first frame decays black rather than garbage.
	c.sourceTex, err = c.device.CreateTexture(
		feedbackTextureDescriptor("trail source", wgpu.TextureUsageCopyDst))
	if err != nil {
		return fmt.Errorf("create source texture: %w", err)
	}
	c.targetTex, err = c.device.CreateTexture(
		feedbackTextureDescriptor("trail target", wgpu.TextureUsageRenderAttachment|wgpu.TextureUsageCopySrc))
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}

	c.sourceView, err = c.sourceTex.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create source view: %w", err)
	}
	c.targetView, err = c.targetTex.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create target view: %w", err)
	}

	c.uniformBuf, err = c.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "trail uniforms",
		Size:  seedtrail.UniformsSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}
	if err := c.queue.WriteBuffer(c.uniformBuf, 0, seedtrail.NewUniforms().Marshal()); err != nil {
		return fmt.Errorf("initialize uniform buffer: %w", err)
	}

	c.texLayout, err = c.device.CreateBindGroupLayout(
		textureBindGroupLayoutDescriptor("trail texture layout"))
	if err != nil {
		return fmt.Errorf("create texture bind group layout: %w", err)
	}
	c.uniformLayout, err = c.device.CreateBindGroupLayout(
		uniformBindGroupLayoutDescriptor("trail uniform layout"))
	if err != nil {
		return fmt.Errorf("create uniform bind group layout: %w", err)
	}

	c.sourceBind, err = c.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "trail source bind group",
		Layout: c.texLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: c.sourceView},
		},
	})
	if err != nil {
		return fmt.Errorf("create source bind group: %w", err)
	}
	c.targetBind, err = c.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "trail target bind group",
		Layout: c.texLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: c.targetView},
		},
	})
	if err != nil {
		return fmt.Errorf("create target bind group: %w", err)
	}
	c.uniformBind, err = c.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "trail uniform bind group",
		Layout: c.uniformLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: c.uniformBuf, Offset: 0, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform bind group: %w", err)
	}

	return nil
}

// createPipelines compiles the shared shader module and builds the trail
// and present pipelines. Both draw the same bufferless full-screen
// triangle and share the uniform layout at group 1; they differ in the
// texture bound at group 0 and the color target format.
//
//nolint:funlen // GPU pipeline descriptors are inherently verbose
func (c *Context) createPipelines() error {
	shader, err := c.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "trail shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: trailShaderSource,
		},
	})
	if err != nil {
		return fmt.Errorf("compile shader module: %w", err)
	}
	defer shader.Release()

	layout, err := c.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "trail pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{c.texLayout, c.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	defer layout.Release()

	primitive := wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyTriangleList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeBack,
	}
	multisample := wgpu.MultisampleState{
		Count: 1,
		Mask:  0xFFFFFFFF,
	}

	c.trailPipeline, err = c.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "trail pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: entryVertexTrail,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: entryFragmentTrail,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    feedbackFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive:   primitive,
		Multisample: multisample,
	})
	if err != nil {
		return fmt.Errorf("create trail pipeline: %w", err)
	}

	c.presentPipeline, err = c.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "present pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: entryVertexPresent,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: entryFragmentPresent,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    c.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive:   primitive,
		Multisample: multisample,
	})
	if err != nil {
		return fmt.Errorf("create present pipeline: %w", err)
	}

	return nil
}

// WriteUniforms serializes u into the GPU uniform buffer. Both pipelines
// read the buffer on the next frame; no synchronization ties a specific
// write to a specific frame.
func (c *Context) WriteUniforms(u seedtrail.Uniforms) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrContextClosed
	}
	if err := c.queue.WriteBuffer(c.uniformBuf, 0, u.Marshal()); err != nil {
		return fmt.Errorf("write uniform buffer: %w", err)
	}
	return nil
}

// Reconfigure re-applies the surface configuration. Called by the frame
// loop after RenderFrame reports ErrSurfaceAcquire, which desktop
// swapchains produce transiently when the surface goes stale.
func (c *Context) Reconfigure() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	seedtrail.Logger().Warn("gpu: reconfiguring lost surface")
	c.configureSurface()
}

// Close releases all GPU resources in reverse creation order. The
// context must not be used afterwards. Close is safe to call on a
// partially initialized context.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	if c.presentPipeline != nil {
		c.presentPipeline.Release()
		c.presentPipeline = nil
	}
	if c.trailPipeline != nil {
		c.trailPipeline.Release()
		c.trailPipeline = nil
	}
	if c.uniformBind != nil {
		c.uniformBind.Release()
		c.uniformBind = nil
	}
	if c.targetBind != nil {
		c.targetBind.Release()
		c.targetBind = nil
	}
	if c.sourceBind != nil {
		c.sourceBind.Release()
		c.sourceBind = nil
	}
	if c.uniformLayout != nil {
		c.uniformLayout.Release()
		c.uniformLayout = nil
	}
	if c.texLayout != nil {
		c.texLayout.Release()
		c.texLayout = nil
	}
	if c.uniformBuf != nil {
		c.uniformBuf.Release()
		c.uniformBuf = nil
	}
	if c.targetView != nil {
		c.targetView.Release()
		c.targetView = nil
	}
	if c.sourceView != nil {
		c.sourceView.Release()
		c.sourceView = nil
	}
	if c.targetTex != nil {
		c.targetTex.Release()
		c.targetTex = nil
	}
	if c.sourceTex != nil {
		c.sourceTex.Release()
		c.sourceTex = nil
	}
	if c.queue != nil {
		c.queue.Release()
		c.queue = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}
