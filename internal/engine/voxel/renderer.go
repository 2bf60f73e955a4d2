// Package voxel renders heightmap terrain by marching one ray per screen column.
package voxel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/logger"
	"github.com/Faultbox/voxelspace/pkg/math"
)

// Stats describes the work done by the last Render call.
type Stats struct {
	Samples   int // Terrain samples taken
	Fills     int // Column spans painted
	Truncated int // Columns whose march left the map under terrain.EdgeStop
}

// Renderer owns the canvas and draws frames from a camera and a terrain map.
type Renderer struct {
	config Config
	canvas *Canvas
	stats  Stats

	// onPaint, when set, observes every painted span.
	onPaint func(column, depth, height int)
}

// New creates a renderer for the configured screen size.
func New(cfg Config) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}

	logger.Debug("voxel renderer created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Stringer("projection", cfg.Projection),
		zap.Stringer("edge", cfg.Edge),
		zap.Stringer("composite", cfg.Composite),
	)

	return &Renderer{
		config: cfg,
		canvas: NewCanvas(cfg.Width, cfg.Height),
	}, nil
}

// Config returns the renderer settings.
func (r *Renderer) Config() Config {
	return r.config
}

// Stats returns counters for the last frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Render draws one frame and returns the renderer's canvas, which is reused
// by the next call. The camera and the map are only read.
func (r *Renderer) Render(cam *camera.Camera, m *terrain.Map) *Canvas {
	r.canvas.Clear(r.config.Sky)
	r.stats = Stats{}

	far := cam.FarClip
	if far < 1 {
		return r.canvas
	}

	// Frustum corners at the far plane: a fixed 90 degree field of view.
	left := math.Vec2{X: -far, Y: far}
	right := math.Vec2{X: far, Y: far}
	w := float32(r.config.Width)
	steps := int(far)
	yaw := cam.Yaw()

	for sx := 0; sx < r.config.Width; sx++ {
		fx := float32(sx)
		delta := math.Vec2{
			X: (left.X + (right.X-left.X)/w*fx) / far,
			Y: (left.Y + (right.Y-left.Y)/w*fx) / far,
		}
		r.marchColumn(sx, cam, m, delta.Rotate(yaw), steps)
	}

	return r.canvas
}

// DrawTo renders a frame and composites it into dst, an RGBA buffer of the
// configured size.
func (r *Renderer) DrawTo(dst []byte, cam *camera.Camera, m *terrain.Map) error {
	return Composite(dst, r.Render(cam, m), r.config.Composite)
}

// marchColumn walks one ray from the camera to the far clip and paints the
// column bottom-up.
func (r *Renderer) marchColumn(sx int, cam *camera.Camera, m *terrain.Map, delta math.Vec2, steps int) {
	ray := cam.Position.XY()

	// Flat projection: a sample paints only if it is lower than everything
	// painted so far. Perspective: classic y-buffer, paints above the top.
	maxProjected := r.config.Height
	top := 0

	for z := 1; z < steps; z++ {
		ray.X += delta.X
		ray.Y -= delta.Y

		x, y := ray.Floor()
		x, y, ok := m.Resolve(x, y, r.config.Edge)
		if !ok {
			r.stats.Truncated++
			return
		}
		texel, _ := m.Sample(x, y)
		r.stats.Samples++

		switch r.config.Projection {
		case ProjectionPerspective:
			h := r.project(texel.Height, cam.Position.Z, z)
			if h <= top {
				continue
			}
			r.fill(sx, z, top, h, texel)
			top = h
			if top >= r.config.Height {
				return
			}

		default:
			h := int(texel.Height)
			if h >= maxProjected {
				continue
			}
			r.fill(sx, z, 0, h, texel)
			maxProjected = h
		}
	}
}

// project maps a height sample at depth z to a screen row under the
// perspective projection, clamped to [0, Height].
func (r *Renderer) project(height uint8, eye float32, z int) int {
	p := (float32(height)-eye)*r.config.PerspectiveScale/float32(z) + float32(r.config.Horizon)
	switch {
	case p <= 0:
		return 0
	case p >= float32(r.config.Height):
		return r.config.Height
	}
	return int(p)
}

func (r *Renderer) fill(sx, z, from, to int, texel terrain.Texel) {
	r.canvas.FillColumn(sx, from, to, texel.Color)
	r.stats.Fills++
	if r.onPaint != nil {
		r.onPaint(sx, z, to)
	}
}

// Composite copies the canvas into dst as RGBA with alpha forced to 255.
func Composite(dst []byte, c *Canvas, mode CompositeMode) error {
	if len(dst) != 4*c.Width*c.Height {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(dst), 4*c.Width*c.Height)
	}

	for i, j := 0, 0; i < len(dst); i, j = i+4, j+3 {
		switch mode {
		case CompositeGrayscale:
			dst[i], dst[i+1], dst[i+2] = c.Pix[j], c.Pix[j], c.Pix[j]
		default:
			dst[i], dst[i+1], dst[i+2] = c.Pix[j], c.Pix[j+1], c.Pix[j+2]
		}
		dst[i+3] = 0xFF
	}
	return nil
}
