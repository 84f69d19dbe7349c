package host

import "math"

// logicalSize derives the logical drawing size and pixel ratio from the
// framebuffer size and the window content scale. GLFW window sizes are pixels
// on X11 and Windows but points on macOS; the framebuffer is pixels everywhere.
func logicalSize(fbW, fbH int, scale float32) (int, int, float64) {
	dpr := float64(scale)
	if dpr <= 0 {
		dpr = 1
	}
	return int(math.Round(float64(fbW) / dpr)), int(math.Round(float64(fbH) / dpr)), dpr
}
