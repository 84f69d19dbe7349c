package render

import (
	"bytes"
	"errors"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gooey/internal/params"
)

var _ = Describe("Renderer", func() {
	var (
		dev    *fakeDevice
		p      *params.Parameters
		logBuf *bytes.Buffer
		start  time.Time
		r      *Renderer
	)

	newRenderer := func() (*Renderer, error) {
		return New(dev, p, WithLogger(log.New(logBuf, "", 0)), WithStart(start))
	}

	BeforeEach(func() {
		dev = newFakeDevice()
		p = params.Default()
		logBuf = &bytes.Buffer{}
		start = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	})

	Describe("initialization", func() {
		BeforeEach(func() {
			var err error
			r, err = newRenderer()
			Expect(err).NotTo(HaveOccurred())
		})

		It("uses the linked program", func() {
			Expect(dev.used).To(Equal(dev.program))
		})

		It("uploads a clip-space triangle strip quad", func() {
			Expect(dev.quad).To(Equal([]float32{-1, -1, 1, -1, -1, 1, 1, 1}))
			Expect(dev.attrib).To(Equal(int32(0)))
		})

		It("caches every active uniform location by name", func() {
			Expect(r.Uniforms()).To(HaveLen(8))
			Expect(r.Uniforms()).To(HaveKeyWithValue("u_color", int32(7)))
			Expect(r.Uniforms()).To(HaveKeyWithValue("u_time", int32(0)))
		})

		It("seeds the tunable uniforms from the parameters", func() {
			Expect(dev.value("u_col_width")).To(Equal([]float32{0.7}))
			Expect(dev.value("u_speed")).To(Equal([]float32{0.2}))
			Expect(dev.value("u_scale")).To(Equal([]float32{0.25}))
			Expect(dev.value("u_seed")).To(Equal([]float32{0.231}))
			Expect(dev.value("u_color")).To(Equal([]float32{0.4, 0.2, 0.8}))
		})

		It("clears to the page color", func() {
			want := mgl32.Vec4{15.0 / 255, 12.0 / 255, 26.0 / 255, 1}
			Expect(dev.clear.ApproxEqualThreshold(want, 1e-4)).To(BeTrue())
		})

		It("skips uniforms the driver optimized away", func() {
			dev = newFakeDevice()
			dev.uniformNames = []string{"u_time", "u_resolution"}
			r, err := newRenderer()
			Expect(err).NotTo(HaveOccurred())

			before := len(dev.pushes)
			r.RenderFrame(start)
			Expect(dev.pushes[before:]).To(ContainElement(int32(-1)))
			Expect(dev.draws).To(HaveLen(1))
		})
	})

	Describe("shader failures", func() {
		It("reports a vertex compile failure without panicking", func() {
			dev.compileErr[StageVertex] = errors.New("0:3: syntax error")

			var err error
			Expect(func() { r, err = newRenderer() }).NotTo(Panic())
			Expect(err).To(MatchError(ErrShaderCompile))
			Expect(r).To(BeNil())
			Expect(logBuf.String()).To(ContainSubstring("shader compile error"))
			Expect(logBuf.String()).To(ContainSubstring("0:3: syntax error"))
		})

		It("reports a fragment compile failure", func() {
			dev.compileErr[StageFragment] = errors.New("undeclared identifier")

			_, err := newRenderer()
			Expect(err).To(MatchError(ErrShaderCompile))
			Expect(logBuf.String()).To(ContainSubstring("undeclared identifier"))
		})

		It("deletes the compiled vertex shader when the fragment shader fails", func() {
			dev.compileErr[StageFragment] = errors.New("undeclared identifier")

			_, err := newRenderer()
			Expect(err).To(HaveOccurred())
			Expect(dev.deleted).To(Equal([]uint32{1}))
		})

		It("reports a link failure", func() {
			dev.linkErr = errors.New("varying mismatch")

			_, err := newRenderer()
			Expect(err).To(MatchError(ErrShaderLink))
			Expect(logBuf.String()).To(ContainSubstring("shader program error"))
			Expect(dev.quad).To(BeNil())
		})
	})

	Describe("Resize", func() {
		BeforeEach(func() {
			var err error
			r, err = newRenderer()
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("sizes the surface to logical size times the capped ratio",
			func(w, h int, dpr float64, pw, ph int32) {
				r.Resize(w, h, dpr)

				Expect(dev.target).To(Equal([2]int32{pw, ph}))
				Expect(dev.viewport).To(Equal([4]int32{0, 0, pw, ph}))
				Expect(dev.value("u_resolution")).To(Equal([]float32{float32(pw), float32(ph)}))
				gotW, gotH := r.Resolution()
				Expect([]int{gotW, gotH}).To(Equal([]int{int(pw), int(ph)}))
			},
			Entry("ratio 1", 800, 600, 1.0, int32(800), int32(600)),
			Entry("ratio 1.5", 1024, 768, 1.5, int32(1536), int32(1152)),
			Entry("ratio 2", 1280, 720, 2.0, int32(2560), int32(1440)),
			Entry("ratio 3 is capped at 2", 1024, 768, 3.0, int32(2048), int32(1536)),
		)

		It("logs a render target that cannot be completed and keeps going", func() {
			dev.targetErr = errors.New("render target 40000x40000 incomplete: status 0x8cdd")

			Expect(func() { r.Resize(20000, 20000, 2) }).NotTo(Panic())
			Expect(logBuf.String()).To(ContainSubstring("resize: render target 40000x40000 incomplete"))
			Expect(dev.value("u_resolution")).To(Equal([]float32{40000, 40000}))
		})
	})

	Describe("RenderFrame", func() {
		BeforeEach(func() {
			var err error
			r, err = newRenderer()
			Expect(err).NotTo(HaveOccurred())
			r.Resize(640, 480, 1)
		})

		It("pushes time and scroll progress and draws once", func() {
			p.ScrollProgress = 0.25
			r.RenderFrame(start.Add(1500 * time.Millisecond))

			Expect(dev.value("u_time")).To(Equal([]float32{1500}))
			Expect(dev.value("u_scroll_progr")).To(Equal([]float32{0.25}))
			Expect(dev.draws).To(Equal([]draw{{first: 0, count: 4}}))
			Expect(dev.presents).To(Equal(1))
			Expect(r.Frames()).To(Equal(uint64(1)))
		})

		It("changes only time and scroll uniforms between frames", func() {
			r.RenderFrame(start.Add(10 * time.Millisecond))
			before := dev.snapshot()

			p.ScrollProgress = 0.5
			r.RenderFrame(start.Add(20 * time.Millisecond))
			after := dev.snapshot()

			for name, v := range before {
				if name == "u_time" || name == "u_scroll_progr" {
					continue
				}
				Expect(after[name]).To(Equal(v), name)
			}
			Expect(after["u_time"]).NotTo(Equal(before["u_time"]))
			Expect(after["u_scroll_progr"]).To(Equal([]float32{0.5}))
		})
	})

	Describe("Apply", func() {
		BeforeEach(func() {
			var err error
			r, err = newRenderer()
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("pushes exactly the matching uniform",
			func(c params.Change, uniform string, want []float32) {
				before := dev.snapshot()
				mark := len(dev.pushes)

				Expect(r.Apply(c)).To(Succeed())

				Expect(dev.pushedNames(mark)).To(Equal([]string{uniform}))
				Expect(dev.value(uniform)).To(Equal(want))
				after := dev.snapshot()
				for name, v := range before {
					if name != uniform {
						Expect(after[name]).To(Equal(v), name)
					}
				}
			},
			Entry("column width", params.Change{Field: params.FieldColWidth, Value: 1.1}, "u_col_width", []float32{1.1}),
			Entry("scale", params.Change{Field: params.FieldScale, Value: 0.5}, "u_scale", []float32{0.5}),
			Entry("speed", params.Change{Field: params.FieldSpeed, Value: 0.8}, "u_speed", []float32{0.8}),
			Entry("seed", params.Change{Field: params.FieldSeed, Value: 0.9}, "u_seed", []float32{0.9}),
			Entry("color", params.Change{Field: params.FieldColor, Color: mgl32.Vec3{1, 0, 0.5}}, "u_color", []float32{1, 0, 0.5}),
			Entry("out of range values pass through", params.Change{Field: params.FieldSpeed, Value: -4}, "u_speed", []float32{-4}),
		)

		It("changes the clear color for the page color and no uniform", func() {
			mark := len(dev.pushes)

			Expect(r.Apply(params.Change{Field: params.FieldPageColor, Page: "#ff0000"})).To(Succeed())

			Expect(dev.pushes[mark:]).To(BeEmpty())
			Expect(dev.clear).To(Equal(mgl32.Vec4{1, 0, 0, 1}))
			Expect(p.PageColor).To(Equal("#ff0000"))
		})

		It("rejects an unparseable page color", func() {
			err := r.Apply(params.Change{Field: params.FieldPageColor, Page: "nope"})
			Expect(err).To(MatchError(params.ErrBadColor))
			Expect(p.PageColor).To(Equal(params.DefaultPageColor))
		})
	})

	It("releases GPU resources on Destroy", func() {
		r, err := newRenderer()
		Expect(err).NotTo(HaveOccurred())
		r.Destroy()
		Expect(dev.released).To(BeTrue())
	})
})
