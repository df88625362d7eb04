package seedtrail

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewUniforms(t *testing.T) {
	u := NewUniforms()
	if u.MousePos != Sentinel {
		t.Errorf("MousePos = %v, want sentinel %v", u.MousePos, Sentinel)
	}
	if u.Seed != (mgl32.Vec2{}) {
		t.Errorf("Seed = %v, want zero", u.Seed)
	}
}

func TestUniformsMarshalLayout(t *testing.T) {
	u := Uniforms{
		MousePos: mgl32.Vec2{1.5, -2.25},
		Seed:     mgl32.Vec2{3.0, 4.5},
	}
	buf := u.Marshal()

	if len(buf) != UniformsSize {
		t.Fatalf("Marshal() length = %d, want %d", len(buf), UniformsSize)
	}

	// Field order is mouse.x, mouse.y, seed.x, seed.y as little-endian
	// f32, matching the WGSL struct.
	want := []float32{1.5, -2.25, 3.0, 4.5}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4 : i*4+4]))
		if got != w {
			t.Errorf("word %d = %g, want %g", i, got, w)
		}
	}
}

func TestUniformsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		u    Uniforms
	}{
		{"zero", Uniforms{}},
		{"initial", NewUniforms()},
		{"active drag", Uniforms{MousePos: mgl32.Vec2{512, 768}, Seed: mgl32.Vec2{100, 200}}},
		{"sentinel both", Uniforms{MousePos: Sentinel, Seed: Sentinel}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalUniforms(tt.u.Marshal())
			if err != nil {
				t.Fatalf("UnmarshalUniforms() error = %v", err)
			}
			if got != tt.u {
				t.Errorf("round trip = %+v, want %+v", got, tt.u)
			}
		})
	}
}

func TestUnmarshalUniformsSizeCheck(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 32} {
		if _, err := UnmarshalUniforms(make([]byte, n)); err == nil {
			t.Errorf("UnmarshalUniforms(%d bytes) = nil error, want size error", n)
		}
	}
}

func TestSentinelOutsideCanvas(t *testing.T) {
	// The sentinel must never land within brush range of any canvas
	// pixel; it sits far off the left edge.
	if x := Sentinel.X(); x >= 0 {
		t.Errorf("Sentinel.X() = %g, want negative and far off-canvas", x)
	}
}
