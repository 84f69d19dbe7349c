// Package host opens the GLFW window and runs the gooey scene in it.
package host

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gooey/internal/app"
	"gooey/internal/config"
	"gooey/internal/loop"
	"gooey/internal/panel"
	"gooey/internal/render"
)

type Options struct {
	Config *config.Config
	Logger *log.Logger
	// Panel and Sink are optional.
	Panel *panel.Panel
	Sink  app.ProgressSink
}

// Run blocks on the calling goroutine, which becomes the GL thread, until the
// window closes or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cfg := opts.Config
	logger := opts.Logger

	window, err := initWindow(cfg.Window)
	if err != nil {
		return unsupported(logger, err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return unsupported(logger, fmt.Errorf("gl init: %w", err))
	}
	logger.Printf("OpenGL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	dev := render.NewGLDevice(window.GetFramebufferSize)
	rend, err := render.New(dev, &cfg.Params, render.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	var sceneOpts []app.Option
	if opts.Panel != nil {
		sceneOpts = append(sceneOpts, app.WithChanges(opts.Panel.Changes()), app.WithReport(opts.Panel.Report))
	}
	if opts.Sink != nil {
		sceneOpts = append(sceneOpts, app.WithSink(opts.Sink))
	}
	surface := func() (int, int, float64) {
		fbW, fbH := window.GetFramebufferSize()
		scale, _ := window.GetContentScale()
		return logicalSize(fbW, fbH, scale)
	}
	_, viewH, _ := surface()
	scene := app.NewScene(&cfg.Params, rend, logger, cfg.Page.Pages, float64(viewH), cfg.Page.WheelStep, sceneOpts...)

	resize := func() { scene.Resize(surface()) }
	window.SetFramebufferSizeCallback(func(*glfw.Window, int, int) { resize() })
	window.SetContentScaleCallback(func(*glfw.Window, float32, float32) { resize() })
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) { scene.Wheel(yoff) })
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if a, ok := keyAction(key, mods); ok {
			scene.Do(a)
		}
	})
	resize()

	src := &windowSource{window: window}
	if cfg.Window.FPS > 0 {
		t := loop.NewTicker(ctx, time.Second/time.Duration(cfg.Window.FPS))
		defer t.Stop()
		src.limiter = t
	}

	err = loop.Run(ctx, src, scene.Frame)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func keyAction(key glfw.Key, mods glfw.ModifierKey) (app.Action, bool) {
	switch key {
	case glfw.KeyDown, glfw.KeyJ:
		return app.LineDown, true
	case glfw.KeyUp, glfw.KeyK:
		return app.LineUp, true
	case glfw.KeyPageDown:
		return app.PageDown, true
	case glfw.KeyPageUp:
		return app.PageUp, true
	case glfw.KeySpace:
		if mods&glfw.ModShift != 0 {
			return app.PageUp, true
		}
		return app.PageDown, true
	case glfw.KeyHome:
		return app.Home, true
	case glfw.KeyEnd:
		return app.End, true
	}
	return 0, false
}
