package voxel

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/Faultbox/voxelspace/internal/engine/terrain"
)

// Renderer errors.
var (
	ErrInvalidSize          = errors.New("screen dimensions must be positive")
	ErrSizeMismatch         = errors.New("frame buffer size does not match canvas")
	ErrUnknownProjection    = errors.New("unknown projection")
	ErrUnknownCompositeMode = errors.New("unknown composite mode")
)

// Projection selects how a height sample becomes a column height on screen.
type Projection uint8

const (
	// ProjectionFlat uses the height byte directly as a pixel count, with no
	// division by depth.
	ProjectionFlat Projection = iota
	// ProjectionPerspective scales altitude above the camera by 1/depth
	// around a horizon row.
	ProjectionPerspective
)

// String returns the config name.
func (p Projection) String() string {
	switch p {
	case ProjectionFlat:
		return "flat"
	case ProjectionPerspective:
		return "perspective"
	default:
		return fmt.Sprintf("Projection(%d)", p)
	}
}

// ParseProjection parses "flat" or "perspective".
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat":
		return ProjectionFlat, nil
	case "perspective":
		return ProjectionPerspective, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProjection, s)
}

// CompositeMode selects how the RGB canvas is copied into an RGBA frame.
type CompositeMode uint8

const (
	// CompositeFull copies all three color channels.
	CompositeFull CompositeMode = iota
	// CompositeGrayscale copies the red channel into R, G and B.
	CompositeGrayscale
)

// String returns the config name.
func (m CompositeMode) String() string {
	switch m {
	case CompositeFull:
		return "full"
	case CompositeGrayscale:
		return "grayscale"
	default:
		return fmt.Sprintf("CompositeMode(%d)", m)
	}
}

// ParseCompositeMode parses "full" or "grayscale".
func ParseCompositeMode(s string) (CompositeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return CompositeFull, nil
	case "grayscale":
		return CompositeGrayscale, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCompositeMode, s)
}

// Config holds renderer settings.
type Config struct {
	Width  int
	Height int
	Sky    color.RGBA

	Projection Projection
	Edge       terrain.EdgeMode
	Composite  CompositeMode

	// Perspective projection only.
	PerspectiveScale float32
	Horizon          int
}

// DefaultConfig returns a 640x480 flat renderer with a sky-blue background.
func DefaultConfig() Config {
	return Config{
		Width:            640,
		Height:           480,
		Sky:              color.RGBA{R: 0x6E, G: 0xD1, B: 0xFF, A: 0xFF},
		Projection:       ProjectionFlat,
		Edge:             terrain.EdgeWrap,
		Composite:        CompositeFull,
		PerspectiveScale: 120,
		Horizon:          120,
	}
}
