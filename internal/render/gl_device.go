package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glDevice implements Device on OpenGL 4.1 core. It draws into an offscreen
// framebuffer sized by ResizeTarget and blits it to the window on Present,
// so the pixel density of the pattern is independent of the window's.
type glDevice struct {
	fbo, rbo   uint32
	targetW    int32
	targetH    int32
	windowSize func() (int, int)
}

// NewGLDevice returns a Device for the current GL context. windowSize reports
// the default framebuffer size in pixels. gl.Init must already have run.
func NewGLDevice(windowSize func() (int, int)) Device {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return &glDevice{windowSize: windowSize}
}

func (d *glDevice) CompileShader(source string, stage Stage) (uint32, error) {
	shaderType := uint32(gl.VERTEX_SHADER)
	if stage == StageFragment {
		shaderType = gl.FRAGMENT_SHADER
	}
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %s shader: %s", stage, strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func (d *glDevice) LinkProgram(vs, fs uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}

func (d *glDevice) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *glDevice) UseProgram(prog uint32) { gl.UseProgram(prog) }

func (d *glDevice) ActiveUniforms(prog uint32) []string {
	var count, maxLen int32
	gl.GetProgramiv(prog, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(prog, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if count == 0 || maxLen == 0 {
		return nil
	}

	names := make([]string, 0, count)
	buf := make([]uint8, maxLen)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(prog, uint32(i), maxLen, &length, &size, &xtype, &buf[0])
		names = append(names, string(buf[:length]))
	}
	return names
}

func (d *glDevice) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (d *glDevice) AttribLocation(prog uint32, name string) int32 {
	return gl.GetAttribLocation(prog, gl.Str(name+"\x00"))
}

func (d *glDevice) UploadQuad(attrib int32, verts []float32) (uint32, uint32) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STATIC_DRAW)
	if attrib >= 0 {
		gl.EnableVertexAttribArray(uint32(attrib))
		gl.VertexAttribPointer(uint32(attrib), 2, gl.FLOAT, false, 2*4, nil)
	}
	return vao, vbo
}

func (d *glDevice) ResizeTarget(w, h int32) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if d.fbo == 0 {
		gl.GenFramebuffers(1, &d.fbo)
		gl.GenRenderbuffers(1, &d.rbo)
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, d.rbo)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, w, h)
	gl.BindFramebuffer(gl.FRAMEBUFFER, d.fbo)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, d.rbo)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		d.targetW, d.targetH = 0, 0
		return fmt.Errorf("render target %dx%d incomplete: status 0x%x", w, h, status)
	}
	d.targetW, d.targetH = w, h
	return nil
}

func (d *glDevice) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (d *glDevice) ClearColor(c mgl32.Vec4) { gl.ClearColor(c[0], c[1], c[2], c[3]) }

func (d *glDevice) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT) }

func (d *glDevice) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (d *glDevice) Uniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }

func (d *glDevice) Uniform3f(loc int32, x, y, z float32) { gl.Uniform3f(loc, x, y, z) }

func (d *glDevice) DrawTriangleStrip(first, count int32) {
	gl.DrawArrays(gl.TRIANGLE_STRIP, first, count)
}

func (d *glDevice) Present() {
	if d.fbo == 0 || d.targetW == 0 {
		return
	}
	winW, winH := d.windowSize()
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, d.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, d.targetW, d.targetH, 0, 0, int32(winW), int32(winH), gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.FRAMEBUFFER, d.fbo)
}

func (d *glDevice) Release(prog, vao, vbo uint32) {
	if vbo != 0 {
		gl.DeleteBuffers(1, &vbo)
	}
	if vao != 0 {
		gl.DeleteVertexArrays(1, &vao)
	}
	if prog != 0 {
		gl.DeleteProgram(prog)
	}
	if d.rbo != 0 {
		gl.DeleteRenderbuffers(1, &d.rbo)
	}
	if d.fbo != 0 {
		gl.DeleteFramebuffers(1, &d.fbo)
	}
}
