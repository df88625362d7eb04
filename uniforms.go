package seedtrail

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sentinel is the "no active interaction" position written to the shader
// in place of a real coordinate. It sits well outside the canvas so no
// fragment ever lands within brush distance of it.
var Sentinel = mgl32.Vec2{-1000, 0}

// UniformsSize is the byte size of the Uniforms GPU mirror: two
// vec2<f32>, tightly packed, 16 bytes total.
const UniformsSize = 16

// Uniforms is the uniform record shared by both render pipelines.
// It matches the WGSL Uniforms struct layout exactly: field order
// [mouse.x, mouse.y, seed.x, seed.y], little-endian f32, no padding.
//
// MousePos is the live cursor position while a drag is in progress and
// Sentinel otherwise. Seed is the position where the current (or most
// recent) drag began; it persists across releases until the next press.
type Uniforms struct {
	MousePos mgl32.Vec2
	Seed     mgl32.Vec2
}

// NewUniforms returns the startup uniform value: an inactive mouse and a
// zero seed. The zero seed (rather than Sentinel) is what the GPU buffer
// holds until the first event-driven update overwrites it.
func NewUniforms() Uniforms {
	return Uniforms{MousePos: Sentinel}
}

// Marshal serializes the record into a buffer suitable for GPU upload.
// The result is always exactly UniformsSize bytes.
func (u Uniforms) Marshal() []byte {
	buf := make([]byte, UniformsSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(u.MousePos.X()))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(u.MousePos.Y()))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(u.Seed.X()))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(u.Seed.Y()))
	return buf
}

// UnmarshalUniforms decodes a buffer previously produced by Marshal (or
// read back from the GPU). The buffer must be exactly UniformsSize bytes.
func UnmarshalUniforms(buf []byte) (Uniforms, error) {
	if len(buf) != UniformsSize {
		return Uniforms{}, fmt.Errorf("seedtrail: uniform buffer is %d bytes, want %d", len(buf), UniformsSize)
	}
	return Uniforms{
		MousePos: mgl32.Vec2{
			math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])),
			math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])),
		},
		Seed: mgl32.Vec2{
			math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])),
			math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16])),
		},
	}, nil
}
