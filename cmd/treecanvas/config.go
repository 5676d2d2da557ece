package main

import (
	"github.com/BurntSushi/toml"
	"github.com/g-m-twostay/tree-canvas/Geometry"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LayoutConfig struct {
	RootX  float64 `toml:"root_x"`
	RootY  float64 `toml:"root_y"`
	Radius float64 `toml:"radius"`
	Spread float64 `toml:"spread"`
}

type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Output string  `toml:"output"` // SVG written after every change in the REPL, none if empty.
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type Config struct {
	LogLevel string `toml:"log_level"`
	// RedrawOnRemove repaints the whole tree after a removal. Off, removed nodes stay on the picture.
	RedrawOnRemove bool         `toml:"redraw_on_remove"`
	Layout         LayoutConfig `toml:"layout"`
	Canvas         CanvasConfig `toml:"canvas"`
	Server         ServerConfig `toml:"server"`
}

func DefaultConfig() Config {
	root := Geometry.Default.Root
	return Config{
		LogLevel: "info",
		Layout: LayoutConfig{
			RootX:  root.X,
			RootY:  root.Y,
			Radius: root.R,
			Spread: Geometry.Default.Spread,
		},
		Canvas: CanvasConfig{Width: 400, Height: 400, Output: "tree.svg"},
		Server: ServerConfig{Addr: ":5000"},
	}
}

// LoadConfig reads the TOML file at path over DefaultConfig. An empty path gives DefaultConfig.
// The keys in the file that no field takes are returned as unknown.
func LoadConfig(path string) (cfg Config, unknown []string, err error) {
	cfg = DefaultConfig()
	if path == "" {
		return cfg, nil, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, nil, errors.Wrapf(err, "cannot read config %s", path)
	}
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return cfg, unknown, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrConfigInvalid, err.Error())
	}
	if c.Layout.Radius <= 0 || c.Layout.Spread <= 0 {
		return errors.Wrapf(ErrConfigInvalid, "radius %g and spread %g must be positive", c.Layout.Radius, c.Layout.Spread)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.Wrapf(ErrConfigInvalid, "canvas %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	return nil
}

// Policy places nodes as configured in Layout.
func (c Config) Policy() Geometry.Policy {
	return Geometry.Policy{
		Root:   Geometry.Position{Point: Geometry.Point{X: c.Layout.RootX, Y: c.Layout.RootY}, R: c.Layout.Radius},
		Spread: c.Layout.Spread,
	}
}
