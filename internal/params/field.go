package params

// Field identifies one tunable parameter.
type Field int

const (
	FieldColWidth Field = iota
	FieldScale
	FieldSpeed
	FieldSeed
	FieldColor
	FieldPageColor
)

// Fields lists the tunable fields in control panel order.
var Fields = []Field{FieldColWidth, FieldScale, FieldSpeed, FieldSeed, FieldColor, FieldPageColor}

func (f Field) String() string {
	switch f {
	case FieldColWidth:
		return "column width"
	case FieldScale:
		return "scale"
	case FieldSpeed:
		return "speed"
	case FieldSeed:
		return "seed"
	case FieldColor:
		return "color"
	case FieldPageColor:
		return "page color"
	}
	return "unknown"
}

// Uniform returns the shader uniform driven by f. The page colour is not a
// uniform and returns "".
func (f Field) Uniform() string {
	switch f {
	case FieldColWidth:
		return UniformColWidth
	case FieldScale:
		return UniformScale
	case FieldSpeed:
		return UniformSpeed
	case FieldSeed:
		return UniformSeed
	case FieldColor:
		return UniformColor
	}
	return ""
}

// Range is a slider range.
type Range struct {
	Min, Max, Step float32
}

// Clamp limits v to [r.Min, r.Max].
func (r Range) Clamp(v float32) float32 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Slider ranges used by the control panel.
var Ranges = map[Field]Range{
	FieldColWidth: {Min: 0.1, Max: 2, Step: 0.01},
	FieldScale:    {Min: 0.05, Max: 1, Step: 0.01},
	FieldSpeed:    {Min: 0, Max: 1, Step: 0.01},
	FieldSeed:     {Min: 0, Max: 1, Step: 0.001},
	FieldColor:    {Min: 0, Max: 1, Step: 0.01},
}
