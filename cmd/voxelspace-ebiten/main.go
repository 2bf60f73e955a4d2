//go:build ebiten

// Command voxelspace-ebiten is an alternative frontend that drives the voxel
// renderer through ebiten instead of SDL and OpenGL.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/debug"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/game/world"
	"github.com/Faultbox/voxelspace/internal/logger"
)

var keyBindings = map[ebiten.Key]camera.Directions{
	ebiten.KeyW: camera.Forward,
	ebiten.KeyS: camera.Back,
	ebiten.KeyA: camera.StrafeLeft,
	ebiten.KeyD: camera.StrafeRight,
	ebiten.KeyQ: camera.Down,
	ebiten.KeyE: camera.Up,
	ebiten.KeyJ: camera.TurnLeft,
	ebiten.KeyL: camera.TurnRight,
}

type frontend struct {
	world       *world.World
	frame       *ebiten.Image
	screenshots *debug.ScreenshotCapture
}

func (f *frontend) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.world.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		fb := f.world.Frame()
		w, h := fb.Size()
		if path, err := f.screenshots.CaptureFromPixels(fb.Pix(), w, h); err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
		} else {
			logger.Info("screenshot saved", zap.String("path", path))
		}
	}

	var dirs camera.Directions
	for key, dir := range keyBindings {
		if ebiten.IsKeyPressed(key) {
			dirs |= dir
		}
	}
	f.world.Tick(dirs)

	if _, err := f.world.Draw(); err != nil {
		return err
	}
	return nil
}

func (f *frontend) Draw(screen *ebiten.Image) {
	fb := f.world.Frame()
	f.frame.WritePixels(fb.Pix())

	// Frame rows are stored bottom-up.
	_, h := fb.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, -1)
	op.GeoM.Translate(0, float64(h))
	screen.DrawImage(f.frame, op)
}

func (f *frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return f.world.Frame().Size()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	m, err := terrain.Load(cfg.Terrain.ColorMap, cfg.Terrain.HeightMap)
	if err != nil {
		logger.Error("failed to load terrain", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	w, err := world.New(cfg, m)
	if err != nil {
		logger.Error("failed to create world", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	f := &frontend{
		world:       w,
		frame:       ebiten.NewImage(cfg.Graphics.Width, cfg.Graphics.Height),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "voxelspace"),
	}

	ebiten.SetWindowTitle("Voxel Space (ebiten)")
	ebiten.SetTPS(world.TickRate)
	ebiten.SetWindowSize(cfg.Graphics.WindowWidth, cfg.Graphics.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Graphics.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Graphics.VSync)

	if err := ebiten.RunGame(f); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
