package render

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

type draw struct {
	first, count int32
}

// fakeDevice records what the renderer asks of the GPU.
type fakeDevice struct {
	uniformNames []string
	compileErr   map[Stage]error
	linkErr      error
	targetErr    error

	program  uint32
	used     uint32
	quad     []float32
	attrib   int32
	target   [2]int32
	viewport [4]int32
	clear    mgl32.Vec4
	values   map[int32][]float32
	pushes   []int32
	draws    []draw
	clears   int
	presents int
	released bool
	deleted  []uint32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		uniformNames: []string{
			"u_time", "u_scroll_progr", "u_resolution", "u_col_width",
			"u_speed", "u_scale", "u_seed", "u_color",
		},
		compileErr: map[Stage]error{},
		values:     map[int32][]float32{},
		program:    7,
	}
}

func (d *fakeDevice) CompileShader(src string, stage Stage) (uint32, error) {
	if err := d.compileErr[stage]; err != nil {
		return 0, err
	}
	return uint32(stage) + 1, nil
}

func (d *fakeDevice) LinkProgram(vs, fs uint32) (uint32, error) {
	if d.linkErr != nil {
		return 0, d.linkErr
	}
	return d.program, nil
}

func (d *fakeDevice) DeleteShader(shader uint32) { d.deleted = append(d.deleted, shader) }

func (d *fakeDevice) UseProgram(prog uint32) { d.used = prog }

func (d *fakeDevice) ActiveUniforms(prog uint32) []string { return d.uniformNames }

func (d *fakeDevice) UniformLocation(prog uint32, name string) int32 {
	return int32(slices.Index(d.uniformNames, name))
}

func (d *fakeDevice) AttribLocation(prog uint32, name string) int32 {
	if name == "a_position" {
		return 0
	}
	return -1
}

func (d *fakeDevice) UploadQuad(attrib int32, verts []float32) (uint32, uint32) {
	d.attrib = attrib
	d.quad = slices.Clone(verts)
	return 1, 2
}

func (d *fakeDevice) ResizeTarget(w, h int32) error {
	d.target = [2]int32{w, h}
	return d.targetErr
}

func (d *fakeDevice) Viewport(x, y, w, h int32) { d.viewport = [4]int32{x, y, w, h} }

func (d *fakeDevice) ClearColor(c mgl32.Vec4) { d.clear = c }

func (d *fakeDevice) Clear() { d.clears++ }

func (d *fakeDevice) push(loc int32, v ...float32) {
	d.pushes = append(d.pushes, loc)
	if loc < 0 {
		return
	}
	d.values[loc] = v
}

func (d *fakeDevice) Uniform1f(loc int32, v float32) { d.push(loc, v) }

func (d *fakeDevice) Uniform2f(loc int32, x, y float32) { d.push(loc, x, y) }

func (d *fakeDevice) Uniform3f(loc int32, x, y, z float32) { d.push(loc, x, y, z) }

func (d *fakeDevice) DrawTriangleStrip(first, count int32) {
	d.draws = append(d.draws, draw{first, count})
}

func (d *fakeDevice) Present() { d.presents++ }

func (d *fakeDevice) Release(prog, vao, vbo uint32) { d.released = true }

// value returns the last value pushed to the named uniform.
func (d *fakeDevice) value(name string) []float32 {
	return d.values[d.UniformLocation(d.program, name)]
}

// snapshot copies the uniform values keyed by name.
func (d *fakeDevice) snapshot() map[string][]float32 {
	out := make(map[string][]float32, len(d.uniformNames))
	for _, name := range d.uniformNames {
		if v := d.value(name); v != nil {
			out[name] = slices.Clone(v)
		}
	}
	return out
}

// pushedNames returns the uniform names pushed since the given call index.
func (d *fakeDevice) pushedNames(since int) []string {
	var names []string
	for _, loc := range d.pushes[since:] {
		if loc >= 0 && int(loc) < len(d.uniformNames) {
			names = append(names, d.uniformNames[loc])
		}
	}
	return names
}
