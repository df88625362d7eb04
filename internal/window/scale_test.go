package window

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestScaleCursor(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		winW, winH int
		fbW, fbH   int
		want       mgl32.Vec2
	}{
		{
			name: "identity",
			x:    100, y: 200,
			winW: 1024, winH: 1024,
			fbW: 1024, fbH: 1024,
			want: mgl32.Vec2{100, 200},
		},
		{
			name: "retina 2x",
			x:    100, y: 200,
			winW: 512, winH: 512,
			fbW: 1024, fbH: 1024,
			want: mgl32.Vec2{200, 400},
		},
		{
			name: "fractional scale",
			x:    100, y: 100,
			winW: 1000, winH: 1000,
			fbW: 1500, fbH: 1500,
			want: mgl32.Vec2{150, 150},
		},
		{
			name: "asymmetric scale",
			x:    10, y: 10,
			winW: 100, winH: 200,
			fbW: 200, fbH: 200,
			want: mgl32.Vec2{20, 10},
		},
		{
			name: "origin",
			x:    0, y: 0,
			winW: 512, winH: 512,
			fbW: 1024, fbH: 1024,
			want: mgl32.Vec2{0, 0},
		},
		{
			name: "zero window passes through",
			x:    42, y: 24,
			winW: 0, winH: 0,
			fbW: 1024, fbH: 1024,
			want: mgl32.Vec2{42, 24},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleCursor(tt.x, tt.y, tt.winW, tt.winH, tt.fbW, tt.fbH)
			if got != tt.want {
				t.Errorf("ScaleCursor(%g, %g) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
