// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/pkg/math"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Render   RenderConfig   `yaml:"render"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings. Width and Height are the internal
// render resolution; the window is scaled to WindowWidth x WindowHeight.
type GraphicsConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	Fullscreen   bool   `yaml:"fullscreen"`
	VSync        bool   `yaml:"vsync"`
	SkyColor     string `yaml:"sky_color"` // #RRGGBB
}

// CameraConfig holds the starting pose and motion tuning.
type CameraConfig struct {
	X              float32 `yaml:"x"`
	Y              float32 `yaml:"y"`
	Z              float32 `yaml:"z"`
	Roll           float32 `yaml:"roll"`
	Yaw            float32 `yaml:"yaw"`
	FarClip        float32 `yaml:"far_clip"`
	Acceleration   float32 `yaml:"acceleration"`
	MaxSpeed       float32 `yaml:"max_speed"`
	Damping        float32 `yaml:"damping"`
	TurnSpeed      float32 `yaml:"turn_speed"`
	SymmetricClamp bool    `yaml:"symmetric_clamp"`
}

// RenderConfig selects the ray-march variants.
type RenderConfig struct {
	Projection       string  `yaml:"projection"` // flat, perspective
	EdgeMode         string  `yaml:"edge_mode"`  // wrap, clamp, stop
	Composite        string  `yaml:"composite"`  // full, grayscale
	PerspectiveScale float32 `yaml:"perspective_scale"`
	Horizon          int     `yaml:"horizon"`
}

// TerrainConfig holds the map image paths.
type TerrainConfig struct {
	ColorMap  string `yaml:"color_map"`
	HeightMap string `yaml:"height_map"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cam := camera.DefaultConfig()
	return &Config{
		Graphics: GraphicsConfig{
			Width:        640,
			Height:       480,
			WindowWidth:  1280,
			WindowHeight: 960,
			Fullscreen:   false,
			VSync:        true,
			SkyColor:     "#6ED1FF",
		},
		Camera: CameraConfig{
			X:            cam.Position.X,
			Y:            cam.Position.Y,
			Z:            cam.Position.Z,
			FarClip:      cam.FarClip,
			Acceleration: cam.Acceleration,
			MaxSpeed:     cam.MaxSpeed,
			Damping:      cam.Damping,
			TurnSpeed:    cam.TurnSpeed,
		},
		Render: RenderConfig{
			Projection:       voxel.ProjectionFlat.String(),
			EdgeMode:         terrain.EdgeWrap.String(),
			Composite:        voxel.CompositeFull.String(),
			PerspectiveScale: 120,
			Horizon:          120,
		},
		Terrain: TerrainConfig{
			ColorMap:  "maps/color_map.png",
			HeightMap: "maps/height_map.png",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks sizes and enum strings.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, g.Width, g.Height)
	}
	if g.WindowWidth <= 0 || g.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, g.WindowWidth, g.WindowHeight)
	}
	if _, err := ParseColor(g.SkyColor); err != nil {
		return fmt.Errorf("%w: sky_color: %v", ErrInvalid, err)
	}
	if c.Camera.FarClip <= 0 {
		return fmt.Errorf("%w: far_clip %v", ErrInvalid, c.Camera.FarClip)
	}
	if c.Camera.MaxSpeed <= 0 {
		return fmt.Errorf("%w: max_speed %v", ErrInvalid, c.Camera.MaxSpeed)
	}
	if _, err := c.ToVoxel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ToCamera converts the camera section.
func (c *Config) ToCamera() camera.Config {
	cc := c.Camera
	return camera.Config{
		Position:       math.Vec3{X: cc.X, Y: cc.Y, Z: cc.Z},
		Rotation:       math.Vec2{X: cc.Roll, Y: cc.Yaw},
		FarClip:        cc.FarClip,
		Acceleration:   cc.Acceleration,
		MaxSpeed:       cc.MaxSpeed,
		Damping:        cc.Damping,
		TurnSpeed:      cc.TurnSpeed,
		SymmetricClamp: cc.SymmetricClamp,
	}
}

// ToVoxel converts the graphics and render sections.
func (c *Config) ToVoxel() (voxel.Config, error) {
	sky, err := ParseColor(c.Graphics.SkyColor)
	if err != nil {
		return voxel.Config{}, err
	}
	proj, err := voxel.ParseProjection(c.Render.Projection)
	if err != nil {
		return voxel.Config{}, err
	}
	edge, err := terrain.ParseEdgeMode(c.Render.EdgeMode)
	if err != nil {
		return voxel.Config{}, err
	}
	comp, err := voxel.ParseCompositeMode(c.Render.Composite)
	if err != nil {
		return voxel.Config{}, err
	}
	return voxel.Config{
		Width:            c.Graphics.Width,
		Height:           c.Graphics.Height,
		Sky:              sky,
		Projection:       proj,
		Edge:             edge,
		Composite:        comp,
		PerspectiveScale: c.Render.PerspectiveScale,
		Horizon:          c.Render.Horizon,
	}, nil
}

// ParseColor parses an opaque "#RRGGBB" color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
