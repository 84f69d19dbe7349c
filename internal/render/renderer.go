// Package render draws the gooey background: one shader program, one static
// full-screen quad and one draw call per frame.
package render

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"gooey/internal/params"
)

// MaxPixelRatio caps the device pixel ratio to bound fragment shader cost.
const MaxPixelRatio = 2.0

var (
	ErrShaderCompile = errors.New("shader compile failed")
	ErrShaderLink    = errors.New("shader link failed")
)

type Renderer struct {
	dev    Device
	params *params.Parameters
	log    *log.Logger
	start  time.Time

	vertSrc string
	fragSrc string

	program  uint32
	vao, vbo uint32
	uniforms map[string]int32

	width, height int
	frames        uint64
}

type Option func(*Renderer)

// WithLogger routes shader diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// WithStart sets the instant u_time counts from.
func WithStart(t time.Time) Option {
	return func(r *Renderer) { r.start = t }
}

// WithShaders replaces the built-in shader pair.
func WithShaders(vert, frag string) Option {
	return func(r *Renderer) {
		r.vertSrc = vert
		r.fragSrc = frag
	}
}

// New builds the program, uploads the quad, resolves every active uniform and
// seeds the tunable uniforms from p. Compile and link failures are logged with
// the driver diagnostic and returned.
func New(dev Device, p *params.Parameters, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		dev:     dev,
		params:  p,
		log:     log.New(os.Stderr, "gooey: ", log.LstdFlags),
		start:   time.Now(),
		vertSrc: vertexSrc,
		fragSrc: gooeyFragSrc,
	}
	for _, opt := range opts {
		opt(r)
	}

	prog, err := r.buildProgram()
	if err != nil {
		return nil, err
	}
	r.program = prog
	r.dev.UseProgram(prog)
	r.uniforms = r.resolveUniforms()

	attrib := r.dev.AttribLocation(prog, "a_position")
	if attrib < 0 {
		r.log.Printf("attribute a_position not active")
	}
	r.vao, r.vbo = r.dev.UploadQuad(attrib, quadVerts[:])

	r.seedUniforms()
	return r, nil
}

func (r *Renderer) buildProgram() (uint32, error) {
	vs, err := r.dev.CompileShader(r.vertSrc, StageVertex)
	if err != nil {
		r.log.Printf("shader compile error: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrShaderCompile, err)
	}
	fs, err := r.dev.CompileShader(r.fragSrc, StageFragment)
	if err != nil {
		r.dev.DeleteShader(vs)
		r.log.Printf("shader compile error: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrShaderCompile, err)
	}
	prog, err := r.dev.LinkProgram(vs, fs)
	if err != nil {
		r.log.Printf("shader program error: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrShaderLink, err)
	}
	return prog, nil
}

func (r *Renderer) resolveUniforms() map[string]int32 {
	names := r.dev.ActiveUniforms(r.program)
	uniforms := make(map[string]int32, len(names))
	for _, name := range names {
		uniforms[name] = r.dev.UniformLocation(r.program, name)
	}
	return uniforms
}

// loc returns -1 for uniforms the driver optimized away.
func (r *Renderer) loc(name string) int32 {
	if l, ok := r.uniforms[name]; ok {
		return l
	}
	return -1
}

func (r *Renderer) seedUniforms() {
	p := r.params
	r.dev.Uniform1f(r.loc(params.UniformColWidth), p.ColWidth)
	r.dev.Uniform1f(r.loc(params.UniformSpeed), p.Speed)
	r.dev.Uniform1f(r.loc(params.UniformScale), p.Scale)
	r.dev.Uniform1f(r.loc(params.UniformSeed), p.Seed)
	r.dev.Uniform3f(r.loc(params.UniformColor), p.Color[0], p.Color[1], p.Color[2])
	r.applyPageColor()
}

func (r *Renderer) applyPageColor() {
	c, err := r.params.PageRGBA()
	if err != nil {
		r.log.Printf("page color: %v", err)
		return
	}
	r.dev.ClearColor(c)
}

// PhysicalSize scales a logical size by the device pixel ratio, capped at
// MaxPixelRatio.
func PhysicalSize(width, height int, dpr float64) (int, int) {
	ratio := math.Min(dpr, MaxPixelRatio)
	return int(float64(width) * ratio), int(float64(height) * ratio)
}

// Resize resizes the drawing surface and viewport for a logical window size
// and pushes the physical resolution to u_resolution.
func (r *Renderer) Resize(width, height int, dpr float64) {
	w, h := PhysicalSize(width, height, dpr)
	r.width, r.height = w, h
	if err := r.dev.ResizeTarget(int32(w), int32(h)); err != nil {
		r.log.Printf("resize: %v", err)
	}
	r.dev.Viewport(0, 0, int32(w), int32(h))
	r.dev.Uniform2f(r.loc(params.UniformResolution), float32(w), float32(h))
}

// RenderFrame pushes time and scroll progress and draws the quad once.
func (r *Renderer) RenderFrame(now time.Time) {
	ms := float32(now.Sub(r.start).Seconds() * 1000)
	r.dev.Uniform1f(r.loc(params.UniformTime), ms)
	r.dev.Uniform1f(r.loc(params.UniformScroll), r.params.ScrollProgress)
	r.dev.Clear()
	r.dev.DrawTriangleStrip(0, int32(len(quadVerts)/2))
	r.dev.Present()
	r.frames++
}

// Apply stores c and pushes the one uniform it drives. The page colour only
// changes the clear colour.
func (r *Renderer) Apply(c params.Change) error {
	if err := r.params.Set(c); err != nil {
		return err
	}
	switch c.Field {
	case params.FieldColor:
		col := r.params.Color
		r.dev.Uniform3f(r.loc(params.UniformColor), col[0], col[1], col[2])
	case params.FieldPageColor:
		r.applyPageColor()
	default:
		r.dev.Uniform1f(r.loc(c.Field.Uniform()), r.params.Value(c.Field))
	}
	return nil
}

// Uniforms returns the resolved uniform location table.
func (r *Renderer) Uniforms() map[string]int32 { return r.uniforms }

// Resolution returns the current physical drawing size.
func (r *Renderer) Resolution() (int, int) { return r.width, r.height }

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() uint64 { return r.frames }

func (r *Renderer) Destroy() {
	r.dev.Release(r.program, r.vao, r.vbo)
}
