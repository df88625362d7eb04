package gpu

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gogpu/naga"
)

// Embedded WGSL shader source, compiled into the binary via go:embed.

//go:embed shaders/trail.wgsl
var trailShaderSource string

// Shader entry points. Both pipelines share one module: the trail pass
// renders into the offscreen work texture, the present pass renders the
// work texture to the swapchain.
const (
	entryVertexTrail     = "vs_compute"
	entryFragmentTrail   = "fs_compute"
	entryVertexPresent   = "vs_main"
	entryFragmentPresent = "fs_main"
)

// shaderEntryPoints lists every entry point the pipelines bind.
// Used by validation and tests.
func shaderEntryPoints() []string {
	return []string{
		entryVertexTrail,
		entryFragmentTrail,
		entryVertexPresent,
		entryFragmentPresent,
	}
}

// validateShader runs the embedded WGSL through naga before any device
// object is built from it. Driver-side compile errors surface as opaque
// device losses; failing here instead keeps the message readable.
func validateShader() error {
	if trailShaderSource == "" {
		return fmt.Errorf("%w: embedded source is empty", ErrShaderInvalid)
	}
	for _, entry := range shaderEntryPoints() {
		if !strings.Contains(trailShaderSource, "fn "+entry) {
			return fmt.Errorf("%w: missing entry point %q", ErrShaderInvalid, entry)
		}
	}
	if _, err := naga.Compile(trailShaderSource); err != nil {
		return fmt.Errorf("%w: %w", ErrShaderInvalid, err)
	}
	return nil
}
