package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/seedtrail/seedtrail"
)

func TestCanvasExtent(t *testing.T) {
	ext := canvasExtent()
	if ext.Width != seedtrail.CanvasWidth || ext.Height != seedtrail.CanvasHeight {
		t.Errorf("canvasExtent() = %dx%d, want %dx%d",
			ext.Width, ext.Height, seedtrail.CanvasWidth, seedtrail.CanvasHeight)
	}
	if ext.DepthOrArrayLayers != 1 {
		t.Errorf("DepthOrArrayLayers = %d, want 1", ext.DepthOrArrayLayers)
	}
}

func TestFeedbackTextureDescriptor(t *testing.T) {
	tests := []struct {
		name      string
		extra     wgpu.TextureUsage
		wantUsage wgpu.TextureUsage
	}{
		{
			name:      "source",
			extra:     wgpu.TextureUsageCopyDst,
			wantUsage: wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		},
		{
			name:      "target",
			extra:     wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
			wantUsage: wgpu.TextureUsageTextureBinding | wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := feedbackTextureDescriptor(tt.name, tt.extra)
			if desc.Usage != tt.wantUsage {
				t.Errorf("Usage = %v, want %v", desc.Usage, tt.wantUsage)
			}
			if desc.Format != feedbackFormat {
				t.Errorf("Format = %v, want %v", desc.Format, feedbackFormat)
			}
			if desc.MipLevelCount != 1 || desc.SampleCount != 1 {
				t.Errorf("MipLevelCount = %d, SampleCount = %d, want 1, 1",
					desc.MipLevelCount, desc.SampleCount)
			}
			if desc.Size != canvasExtent() {
				t.Errorf("Size = %+v, want canvas extent", desc.Size)
			}
		})
	}
}

func TestTextureBindGroupLayoutDescriptor(t *testing.T) {
	desc := textureBindGroupLayoutDescriptor("test")
	if len(desc.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(desc.Entries))
	}
	e := desc.Entries[0]
	if e.Binding != 0 {
		t.Errorf("Binding = %d, want 0", e.Binding)
	}
	if e.Visibility != wgpu.ShaderStageFragment {
		t.Errorf("Visibility = %v, want fragment", e.Visibility)
	}
	// RGBA32Float is non-filterable; the layout must say so or bind
	// group creation fails at runtime.
	if e.Texture.SampleType != wgpu.TextureSampleTypeUnfilterableFloat {
		t.Errorf("SampleType = %v, want unfilterable float", e.Texture.SampleType)
	}
	if e.Texture.ViewDimension != wgpu.TextureViewDimension2D {
		t.Errorf("ViewDimension = %v, want 2D", e.Texture.ViewDimension)
	}
}

func TestUniformBindGroupLayoutDescriptor(t *testing.T) {
	desc := uniformBindGroupLayoutDescriptor("test")
	if len(desc.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(desc.Entries))
	}
	e := desc.Entries[0]
	if e.Binding != 0 {
		t.Errorf("Binding = %d, want 0", e.Binding)
	}
	if e.Visibility != wgpu.ShaderStageFragment {
		t.Errorf("Visibility = %v, want fragment", e.Visibility)
	}
	if e.Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Errorf("Buffer.Type = %v, want uniform", e.Buffer.Type)
	}
	if e.Buffer.MinBindingSize != seedtrail.UniformsSize {
		t.Errorf("MinBindingSize = %d, want %d", e.Buffer.MinBindingSize, seedtrail.UniformsSize)
	}
}

func TestClearColorMatchesBackground(t *testing.T) {
	want := wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}
	if clearColor != want {
		t.Errorf("clearColor = %+v, want %+v", clearColor, want)
	}
}
