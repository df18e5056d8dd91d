package scene

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/taigrr/facet/pkg/render"
)

// Config is a scene file. Every field is optional; Apply only touches the
// fields that are present.
//
//	[camera]
//	x = 0.0
//	y = 0.0
//	z = -2.0
//	smooth = true
//
//	[object]
//	auto_rotate = true
//	speed = 1.5
//	distance = 6.0
//
//	[display]
//	fill_color = "#3060ff"
//	wire_color = "255,255,255"
type Config struct {
	Camera     CameraConfig     `toml:"camera"`
	Object     ObjectConfig     `toml:"object"`
	Light      LightConfig      `toml:"light"`
	Display    DisplayConfig    `toml:"display"`
	Projection ProjectionConfig `toml:"projection"`
}

// CameraConfig is the [camera] table. Smooth enables eased movement.
type CameraConfig struct {
	X      *float64 `toml:"x"`
	Y      *float64 `toml:"y"`
	Z      *float64 `toml:"z"`
	Pitch  *float64 `toml:"pitch"`
	Yaw    *float64 `toml:"yaw"`
	Smooth *bool    `toml:"smooth"`
}

// ObjectConfig places and spins the mesh.
type ObjectConfig struct {
	AutoRotate *bool    `toml:"auto_rotate"`
	Speed      *float64 `toml:"speed"`
	RotX       *float64 `toml:"rot_x"`
	RotZ       *float64 `toml:"rot_z"`
	Distance   *float64 `toml:"distance"`
}

// LightConfig is the direction toward the light.
type LightConfig struct {
	X *float64 `toml:"x"`
	Y *float64 `toml:"y"`
	Z *float64 `toml:"z"`
}

// DisplayConfig colours are "R,G,B" or "#rrggbb".
type DisplayConfig struct {
	Wireframe *bool   `toml:"wireframe"`
	Filled    *bool   `toml:"filled"`
	FillColor *string `toml:"fill_color"`
	WireColor *string `toml:"wire_color"`
}

// ProjectionConfig sets the field of view (degrees) and depth range.
type ProjectionConfig struct {
	FOV  *float64 `toml:"fov"`
	Near *float64 `toml:"near"`
	Far  *float64 `toml:"far"`
}

// LoadConfig reads a scene file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a scene file. Unknown keys and malformed colours are
// errors.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for _, c := range []*string{cfg.Display.FillColor, cfg.Display.WireColor} {
		if c == nil {
			continue
		}
		if _, err := render.ParseColor(*c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	return &cfg, nil
}

// Apply copies the fields that are set onto s, then clamps s.
// Colours are expected to have been checked by ParseConfig; a colour that
// does not parse leaves the scene colour unchanged.
func (c *Config) Apply(s *Scene) {
	set(&s.Camera.X, c.Camera.X)
	set(&s.Camera.Y, c.Camera.Y)
	set(&s.Camera.Z, c.Camera.Z)
	set(&s.Pitch, c.Camera.Pitch)
	set(&s.Yaw, c.Camera.Yaw)
	set(&s.SmoothMotion, c.Camera.Smooth)

	set(&s.AutoRotate, c.Object.AutoRotate)
	set(&s.RotSpeed, c.Object.Speed)
	set(&s.RotX, c.Object.RotX)
	set(&s.RotZ, c.Object.RotZ)
	set(&s.Distance, c.Object.Distance)

	set(&s.Light.X, c.Light.X)
	set(&s.Light.Y, c.Light.Y)
	set(&s.Light.Z, c.Light.Z)

	set(&s.Wireframe, c.Display.Wireframe)
	set(&s.Filled, c.Display.Filled)
	setColor(&s.FillColor, c.Display.FillColor)
	setColor(&s.WireColor, c.Display.WireColor)

	set(&s.FOV, c.Projection.FOV)
	set(&s.Near, c.Projection.Near)
	set(&s.Far, c.Projection.Far)

	s.Clamp()
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setColor(dst *render.Color, v *string) {
	if v == nil {
		return
	}
	if c, err := render.ParseColor(*v); err == nil {
		*dst = c
	}
}
