// Package world holds the simulated view state: camera, terrain and the
// current frame. It has no windowing dependencies.
package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/framebuffer"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/internal/logger"
)

// TickRate is the number of input and camera ticks per second.
const TickRate = 60

// World owns the camera, the terrain and the frame surface, and knows when
// a new frame is needed.
type World struct {
	camera   *camera.Camera
	terrain  *terrain.Map
	renderer *voxel.Renderer
	frame    *framebuffer.Framebuffer
	dirty    bool
	frames   int
}

// New builds a world around the given map.
func New(cfg *config.Config, m *terrain.Map) (*World, error) {
	vc, err := cfg.ToVoxel()
	if err != nil {
		return nil, err
	}
	r, err := voxel.New(vc)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return &World{
		camera:   camera.New(cfg.ToCamera()),
		terrain:  m,
		renderer: r,
		frame:    framebuffer.New(vc.Width, vc.Height),
		dirty:    true,
	}, nil
}

// Camera returns the world camera.
func (w *World) Camera() *camera.Camera {
	return w.camera
}

// Frame returns the most recently drawn frame.
func (w *World) Frame() *framebuffer.Framebuffer {
	return w.frame
}

// Frames returns how many frames have been drawn.
func (w *World) Frames() int {
	return w.frames
}

// Tick applies one tick of held input and integrates the camera.
func (w *World) Tick(dirs camera.Directions) {
	before := w.camera.Position
	yaw := w.camera.Yaw()

	w.camera.Accelerate(dirs)
	w.camera.Update()

	if dirs != 0 || w.camera.Position != before || w.camera.Yaw() != yaw {
		w.dirty = true
	}
}

// Reset returns the camera to its starting pose.
func (w *World) Reset() {
	w.camera.Reset()
	w.dirty = true
	logger.Debug("camera reset")
}

// Invalidate forces the next Draw to render.
func (w *World) Invalidate() {
	w.dirty = true
}

// NeedsRedraw reports whether the view changed since the last Draw.
func (w *World) NeedsRedraw() bool {
	return w.dirty
}

// Draw renders and composites a new frame if the view changed.
// It reports whether the frame was redrawn.
func (w *World) Draw() (bool, error) {
	if !w.dirty {
		return false, nil
	}
	if err := w.renderer.DrawTo(w.frame.Pix(), w.camera, w.terrain); err != nil {
		return false, err
	}
	w.dirty = false
	w.frames++

	stats := w.renderer.Stats()
	logger.Debug("frame drawn",
		zap.Int("frame", w.frames),
		zap.Int("samples", stats.Samples),
		zap.Int("fills", stats.Fills),
		zap.Int("truncated", stats.Truncated),
	)
	return true, nil
}
