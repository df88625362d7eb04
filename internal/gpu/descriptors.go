package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/seedtrail/seedtrail"
)

// feedbackFormat is the pixel format of both feedback textures. Float
// texels keep the decayed trail from banding the way 8-bit channels do
// after a few hundred multiplications.
const feedbackFormat = wgpu.TextureFormatRGBA32Float

// clearColor is the fixed background both passes clear to.
var clearColor = wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// fullscreenVertexCount is the vertex count of the bufferless
// full-screen triangle both pipelines draw.
const fullscreenVertexCount = 3

// Bind group indices shared by both pipelines, matching the WGSL
// @group declarations.
const (
	groupTexture = 0
	groupUniform = 1
)

// canvasExtent returns the fixed 1024x1024 size shared by the surface and
// both feedback textures.
func canvasExtent() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              seedtrail.CanvasWidth,
		Height:             seedtrail.CanvasHeight,
		DepthOrArrayLayers: 1,
	}
}

// feedbackTextureDescriptor builds the descriptor for one of the feedback
// pair. Both are sampled by a fragment stage; the extra usage
// distinguishes the copy source (target texture) from the copy
// destination (source texture).
func feedbackTextureDescriptor(label string, extraUsage wgpu.TextureUsage) *wgpu.TextureDescriptor {
	return &wgpu.TextureDescriptor{
		Label:         label,
		Size:          canvasExtent(),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        feedbackFormat,
		Usage:         wgpu.TextureUsageTextureBinding | extraUsage,
	}
}

// textureBindGroupLayoutDescriptor describes group 0 of both pipelines:
// one non-filterable float texture visible to the fragment stage.
// RGBA32Float is not filterable, so the shader reads via textureLoad and
// no sampler binding exists.
func textureBindGroupLayoutDescriptor(label string) *wgpu.BindGroupLayoutDescriptor {
	return &wgpu.BindGroupLayoutDescriptor{
		Label: label,
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeUnfilterableFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
					Multisampled:  false,
				},
			},
		},
	}
}

// uniformBindGroupLayoutDescriptor describes group 1 of both pipelines:
// the 16-byte Uniforms buffer visible to the fragment stage.
func uniformBindGroupLayoutDescriptor(label string) *wgpu.BindGroupLayoutDescriptor {
	return &wgpu.BindGroupLayoutDescriptor{
		Label: label,
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					HasDynamicOffset: false,
					MinBindingSize:   seedtrail.UniformsSize,
				},
			},
		},
	}
}
