// Package params holds the live-tunable rendering parameters shared by the
// render loop, the scroll timeline and the control panel.
package params

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	css "github.com/mazznoer/csscolorparser"
)

// Shader uniform names.
const (
	UniformTime       = "u_time"
	UniformScroll     = "u_scroll_progr"
	UniformResolution = "u_resolution"
	UniformColWidth   = "u_col_width"
	UniformSpeed      = "u_speed"
	UniformScale      = "u_scale"
	UniformSeed       = "u_seed"
	UniformColor      = "u_color"
)

// Defaults.
const (
	DefaultColWidth  = 0.7
	DefaultSpeed     = 0.2
	DefaultScale     = 0.25
	DefaultSeed      = 0.231
	DefaultPageColor = "#0f0c1a"
)

var DefaultColor = mgl32.Vec3{0.4, 0.2, 0.8}

var ErrBadColor = errors.New("invalid page color")

// Parameters is the single mutable record read by the renderer every frame.
// Values are stored verbatim; range checks belong to whoever sets them.
type Parameters struct {
	ScrollProgress float32    `yaml:"-"`
	ColWidth       float32    `yaml:"col_width"`
	Speed          float32    `yaml:"speed"`
	Scale          float32    `yaml:"scale"`
	Seed           float32    `yaml:"seed"`
	Color          mgl32.Vec3 `yaml:"color,flow"`
	PageColor      string     `yaml:"page_color"`
}

func Default() *Parameters {
	return &Parameters{
		ColWidth:  DefaultColWidth,
		Speed:     DefaultSpeed,
		Scale:     DefaultScale,
		Seed:      DefaultSeed,
		Color:     DefaultColor,
		PageColor: DefaultPageColor,
	}
}

// Change is a single control edit. Value is used by the scalar fields, Color
// by FieldColor and Page by FieldPageColor.
type Change struct {
	Field Field
	Value float32
	Color mgl32.Vec3
	Page  string
}

// Set applies c in place. Only the page colour is validated, since it has to
// be parsed before it can be used.
func (p *Parameters) Set(c Change) error {
	switch c.Field {
	case FieldColWidth:
		p.ColWidth = c.Value
	case FieldScale:
		p.Scale = c.Value
	case FieldSpeed:
		p.Speed = c.Value
	case FieldSeed:
		p.Seed = c.Value
	case FieldColor:
		p.Color = c.Color
	case FieldPageColor:
		if _, err := ParseColor(c.Page); err != nil {
			return err
		}
		p.PageColor = c.Page
	default:
		return fmt.Errorf("unknown field %d", c.Field)
	}
	return nil
}

// Value returns the scalar value of f, or 0 for the colour fields.
func (p *Parameters) Value(f Field) float32 {
	switch f {
	case FieldColWidth:
		return p.ColWidth
	case FieldScale:
		return p.Scale
	case FieldSpeed:
		return p.Speed
	case FieldSeed:
		return p.Seed
	}
	return 0
}

// PageRGBA returns the page colour as normalized RGBA.
func (p *Parameters) PageRGBA() (mgl32.Vec4, error) {
	return ParseColor(p.PageColor)
}

// ParseColor parses any CSS colour string into normalized RGBA.
func ParseColor(s string) (mgl32.Vec4, error) {
	c, err := css.Parse(s)
	if err != nil {
		return mgl32.Vec4{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
	}
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}, nil
}
