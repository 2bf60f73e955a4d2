// Package game implements the main loop that ties input, the voxel renderer
// and the window together.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/debug"
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/renderer"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/window"
	"github.com/Faultbox/voxelspace/internal/game/world"
	"github.com/Faultbox/voxelspace/internal/logger"
)

// Game is the windowed frontend.
type Game struct {
	config      *config.Config
	running     bool
	world       *world.World
	window      *window.Window
	presenter   *renderer.Presenter
	input       *input.Input
	screenshots *debug.ScreenshotCapture
}

// New creates the window, the GL presenter and the world for m.
func New(cfg *config.Config, m *terrain.Map) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("projection", cfg.Render.Projection),
		zap.String("edge_mode", cfg.Render.EdgeMode),
	)

	w, err := world.New(cfg, m)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:      cfg,
		world:       w,
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "voxelspace"),
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      "Voxel Space",
		Width:      cfg.Graphics.WindowWidth,
		Height:     cfg.Graphics.WindowHeight,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	sky, err := config.ParseColor(cfg.Graphics.SkyColor)
	if err != nil {
		g.window.Close()
		return nil, err
	}

	// Create presenter (AFTER window, since OpenGL context must exist)
	dw, dh := g.window.DrawableSize()
	g.presenter, err = renderer.NewPresenter(renderer.Config{
		Width:  dw,
		Height: dh,
		Clear:  sky,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop and blocks until the window is closed.
func (g *Game) Run() error {
	g.running = true

	tick := time.Second / world.TickRate
	next := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		// 2. Move the camera
		g.world.Tick(g.input.Held())

		// 3. Render and present only when the view changed
		drawn, err := g.world.Draw()
		if err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if drawn {
			g.presenter.Present(g.world.Frame())
			g.window.SwapBuffers()
			frameCount++
		}

		if time.Since(fpsTimer) >= time.Second {
			if frameCount > 0 {
				logger.Debug("fps", zap.Int("count", frameCount))
			}
			g.window.ShowRate(frameCount)
			frameCount = 0
			fpsTimer = time.Now()
		}

		next = next.Add(tick)
		if d := time.Until(next); d > 0 {
			time.Sleep(d)
		} else {
			next = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := g.window.DrawableSize()
			g.presenter.Resize(w, h)
			g.world.Invalidate()
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_R:
				g.world.Reset()
			case sdl.SCANCODE_F12:
				g.screenshot()
			}
		}
	}
}

func (g *Game) screenshot() {
	fb := g.world.Frame()
	w, h := fb.Size()
	path, err := g.screenshots.CaptureFromPixels(fb.Pix(), w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.presenter != nil {
		g.presenter.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
