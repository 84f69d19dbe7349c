package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gooey/internal/params"
)

const (
	DefaultWidth     = 1280
	DefaultHeight    = 800
	DefaultTitle     = "gooey"
	DefaultPages     = 3.0
	DefaultWheelStep = 60.0
)

type Config struct {
	Window WindowConfig      `yaml:"window"`
	Page   PageConfig        `yaml:"page"`
	Params params.Parameters `yaml:"params"`
	Panel  bool              `yaml:"panel"`
	Sound  bool              `yaml:"sound"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	// FPS caps the frame rate when > 0; otherwise frames follow vsync.
	FPS int `yaml:"fps"`
}

type PageConfig struct {
	// Pages is the virtual page height in viewports.
	Pages     float64 `yaml:"pages"`
	WheelStep float64 `yaml:"wheel_step"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		Page: PageConfig{
			Pages:     DefaultPages,
			WheelStep: DefaultWheelStep,
		},
		Params: *params.Default(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values the host cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Page.Pages < 1 {
		return fmt.Errorf("page height %.2f must be at least one viewport", c.Page.Pages)
	}
	if _, err := params.ParseColor(c.Params.PageColor); err != nil {
		return err
	}
	return nil
}
