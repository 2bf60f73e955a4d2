// Command vxrender renders a terrain view to a PNG file without a window.
//
// Usage:
//
//	vxrender -color map.png -height height.png -out frame.png [-frames N] [-move forward,turnleft]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/debug"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/game/world"
	"github.com/Faultbox/voxelspace/internal/logger"
)

var directionNames = map[string]camera.Directions{
	"forward":   camera.Forward,
	"back":      camera.Back,
	"left":      camera.StrafeLeft,
	"right":     camera.StrafeRight,
	"up":        camera.Up,
	"down":      camera.Down,
	"turnleft":  camera.TurnLeft,
	"turnright": camera.TurnRight,
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "vxrender: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("vxrender", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to config file")
	colorPath := fs.String("color", "", "Terrain color map (overrides config)")
	heightPath := fs.String("height", "", "Terrain height map (overrides config)")
	outPath := fs.String("out", "", "Output PNG path")
	frames := fs.Int("frames", 0, "Ticks to simulate before rendering")
	move := fs.String("move", "", "Comma-separated directions held during the ticks")
	verbose := fs.Bool("v", false, "Verbose logging")

	var x, y, z, yaw optionalFloat
	fs.Var(&x, "x", "Camera x")
	fs.Var(&y, "y", "Camera y")
	fs.Var(&z, "z", "Camera altitude")
	fs.Var(&yaw, "yaw", "Camera yaw in radians")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outPath == "" {
		fs.Usage()
		return errors.New("-out is required")
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return err
	}
	if *colorPath != "" {
		cfg.Terrain.ColorMap = *colorPath
	}
	if *heightPath != "" {
		cfg.Terrain.HeightMap = *heightPath
	}
	x.apply(&cfg.Camera.X)
	y.apply(&cfg.Camera.Y)
	z.apply(&cfg.Camera.Z)
	yaw.apply(&cfg.Camera.Yaw)

	dirs, err := parseDirections(*move)
	if err != nil {
		return err
	}

	m, err := terrain.Load(cfg.Terrain.ColorMap, cfg.Terrain.HeightMap)
	if err != nil {
		return err
	}

	s, err := world.New(cfg, m)
	if err != nil {
		return err
	}
	for i := 0; i < *frames; i++ {
		s.Tick(dirs)
	}
	s.Invalidate()
	if _, err := s.Draw(); err != nil {
		return err
	}

	if err := debug.WritePNG(*outPath, s.Frame().Image()); err != nil {
		return err
	}

	cam := s.Camera()
	logger.Info("frame written",
		zap.String("path", *outPath),
		zap.Float32("x", cam.Position.X),
		zap.Float32("y", cam.Position.Y),
		zap.Float32("z", cam.Position.Z),
		zap.Float32("yaw", cam.Yaw()),
	)
	return nil
}

func parseDirections(s string) (camera.Directions, error) {
	var dirs camera.Directions
	if s == "" {
		return 0, nil
	}
	for _, name := range strings.Split(s, ",") {
		d, ok := directionNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown direction %q", name)
		}
		dirs |= d
	}
	return dirs, nil
}

// optionalFloat is a float flag that remembers whether it was set.
type optionalFloat struct {
	value float64
	set   bool
}

func (f *optionalFloat) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprint(f.value)
}

func (f *optionalFloat) Set(s string) error {
	var v float64
	if _, err := fmt.Sscan(s, &v); err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	f.value, f.set = v, true
	return nil
}

func (f *optionalFloat) apply(dst *float32) {
	if f.set {
		*dst = float32(f.value)
	}
}
