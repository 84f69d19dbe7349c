package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"gooey/internal/params"
)

var ErrUnknownPreset = errors.New("unknown preset")

var Presets = map[string]params.Parameters{
	"gooey": *params.Default(),
	"ember": {
		ColWidth: 0.5, Speed: 0.35, Scale: 0.3, Seed: 0.713,
		Color: mgl32.Vec3{0.95, 0.35, 0.1}, PageColor: "#140805",
	},
	"ocean": {
		ColWidth: 1.1, Speed: 0.12, Scale: 0.2, Seed: 0.058,
		Color: mgl32.Vec3{0.1, 0.45, 0.75}, PageColor: "#04101c",
	},
	"mono": {
		ColWidth: 0.7, Speed: 0.2, Scale: 0.25, Seed: 0.5,
		Color: mgl32.Vec3{0.85, 0.85, 0.85}, PageColor: "black",
	},
}

// GetPreset returns a copy of the named preset parameters, or nil.
func GetPreset(name string) *params.Parameters {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ApplyPreset replaces the tunable parameters of c with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	c.Params = *p
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
