package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// RenderFrame draws one frame: the trail pass accumulates into the
// feedback target, the target is copied back into the source for the
// next frame, and the present pass blits the result to the swapchain.
//
// A failure to acquire the swapchain texture is reported as a wrapped
// ErrSurfaceAcquire; the caller decides whether to reconfigure and
// retry on the next frame. Any other error is a bug or a lost device.
func (c *Context) RenderFrame() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrContextClosed
	}

	frame, err := c.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceAcquire, err)
	}
	frameView, err := frame.CreateView(nil)
	if err != nil {
		frame.Release()
		return fmt.Errorf("create frame view: %w", err)
	}
	defer func() {
		frameView.Release()
		frame.Release()
	}()

	encoder, err := c.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Release()

	if err := c.encodeTrailPass(encoder); err != nil {
		return err
	}
	if err := c.copyFeedback(encoder); err != nil {
		return err
	}
	if err := c.encodePresentPass(encoder, frameView); err != nil {
		return err
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}
	defer cmd.Release()

	c.queue.Submit(cmd)
	c.surface.Present()
	return nil
}

// encodeTrailPass samples the source texture and renders the decayed,
// freshly stamped trail into the offscreen target.
func (c *Context) encodeTrailPass(encoder *wgpu.CommandEncoder) error {
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "trail pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       c.targetView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearColor,
			},
		},
	})
	defer pass.Release()

	pass.SetPipeline(c.trailPipeline)
	pass.SetBindGroup(groupTexture, c.sourceBind, nil)
	pass.SetBindGroup(groupUniform, c.uniformBind, nil)
	pass.Draw(fullscreenVertexCount, 1, 0, 0)
	if err := pass.End(); err != nil {
		return fmt.Errorf("end trail pass: %w", err)
	}
	return nil
}

// copyFeedback records the target-to-source copy that closes the
// feedback loop for the next frame.
func (c *Context) copyFeedback(encoder *wgpu.CommandEncoder) error {
	extent := canvasExtent()
	err := encoder.CopyTextureToTexture(
		&wgpu.ImageCopyTexture{
			Texture:  c.targetTex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.ImageCopyTexture{
			Texture:  c.sourceTex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&extent,
	)
	if err != nil {
		return fmt.Errorf("copy feedback texture: %w", err)
	}
	return nil
}

// encodePresentPass blits the accumulated trail, plus the cursor
// overlay, onto the swapchain frame.
func (c *Context) encodePresentPass(encoder *wgpu.CommandEncoder, frameView *wgpu.TextureView) error {
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "present pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       frameView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearColor,
			},
		},
	})
	defer pass.Release()

	pass.SetPipeline(c.presentPipeline)
	pass.SetBindGroup(groupTexture, c.targetBind, nil)
	pass.SetBindGroup(groupUniform, c.uniformBind, nil)
	pass.Draw(fullscreenVertexCount, 1, 0, 0)
	if err := pass.End(); err != nil {
		return fmt.Errorf("end present pass: %w", err)
	}
	return nil
}
