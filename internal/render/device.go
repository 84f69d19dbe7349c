package render

import "github.com/go-gl/mathgl/mgl32"

// Stage is a shader pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	if s == StageVertex {
		return "vertex"
	}
	return "fragment"
}

// Device is the slice of a real-time graphics API the renderer needs.
// Handles are plain GL names; a uniform location of -1 is ignored by
// every Uniform* call.
type Device interface {
	CompileShader(src string, stage Stage) (uint32, error)
	// LinkProgram consumes vs and fs whether or not linking succeeds.
	LinkProgram(vs, fs uint32) (uint32, error)
	DeleteShader(shader uint32)
	UseProgram(prog uint32)
	ActiveUniforms(prog uint32) []string
	UniformLocation(prog uint32, name string) int32
	AttribLocation(prog uint32, name string) int32

	// UploadQuad stores verts as a static buffer of vec2 bound to attrib.
	UploadQuad(attrib int32, verts []float32) (vao, vbo uint32)

	// ResizeTarget resizes the offscreen drawing surface. If the surface
	// cannot be completed, drawing falls back to the window framebuffer.
	ResizeTarget(w, h int32) error
	Viewport(x, y, w, h int32)
	ClearColor(c mgl32.Vec4)
	Clear()

	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3f(loc int32, x, y, z float32)

	DrawTriangleStrip(first, count int32)

	// Present copies the drawing surface to the window.
	Present()
	Release(prog, vao, vbo uint32)
}
