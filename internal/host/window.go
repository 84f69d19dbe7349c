package host

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gooey/internal/config"
)

func initWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	var monitor *glfw.Monitor
	width, height := cfg.Width, cfg.Height
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	window, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.FPS > 0 {
		glfw.SwapInterval(0)
	} else {
		glfw.SwapInterval(1)
	}

	return window, nil
}

// windowSource paces frames by buffer swaps, optionally capped by a ticker.
type windowSource struct {
	window  *glfw.Window
	limiter interface{ Next() bool }
	started bool
}

func (s *windowSource) Next() bool {
	if s.started {
		s.window.SwapBuffers()
	}
	s.started = true
	if s.limiter != nil && !s.limiter.Next() {
		return false
	}
	glfw.PollEvents()
	return !s.window.ShouldClose()
}
