// Package camera provides the first-person voxel camera and its motion model.
package camera

import (
	gomath "math"

	"github.com/Faultbox/voxelspace/pkg/math"
)

// Directions is the set of logical movement inputs held during one tick.
type Directions uint8

// Movement inputs.
const (
	Forward Directions = 1 << iota
	Back
	StrafeLeft
	StrafeRight
	Up
	Down
	TurnLeft
	TurnRight
)

// Has reports whether every direction in d is held.
func (dirs Directions) Has(d Directions) bool {
	return dirs&d == d
}

// Config holds the initial state and motion constants of a camera.
type Config struct {
	Position math.Vec3 // Map texel units; z is eye altitude
	Rotation math.Vec2 // X = roll, Y = yaw (radians)

	FarClip      float32 // Maximum ray-march distance in texels
	Acceleration float32 // Velocity added per held input tick
	MaxSpeed     float32 // Per-axis velocity cap
	Damping      float32 // Velocity multiplier applied each update
	TurnSpeed    float32 // Yaw change per held turn tick (radians)

	// SymmetricClamp also caps velocity at -MaxSpeed. Off by default, which
	// only bounds the positive direction.
	SymmetricClamp bool
}

// DefaultConfig returns the classic camera setup: centre of a 1024x1024 map,
// far clip 400, acceleration 0.25, max speed 5.
func DefaultConfig() Config {
	return Config{
		Position:     math.Vec3{X: 512, Y: 512, Z: 0},
		FarClip:      400,
		Acceleration: 0.25,
		MaxSpeed:     5.0,
		Damping:      0.9,
		TurnSpeed:    0.03,
	}
}

// Camera is a free-flying first-person camera over a terrain map.
type Camera struct {
	Position math.Vec3
	Velocity math.Vec3
	Rotation math.Vec2 // X = roll, Y = yaw

	FarClip        float32
	Acceleration   float32
	MaxSpeed       float32
	Damping        float32
	TurnSpeed      float32
	SymmetricClamp bool

	initial Config
}

// New creates a camera at rest in the configured pose.
func New(cfg Config) *Camera {
	c := &Camera{
		FarClip:        cfg.FarClip,
		Acceleration:   cfg.Acceleration,
		MaxSpeed:       cfg.MaxSpeed,
		Damping:        cfg.Damping,
		TurnSpeed:      cfg.TurnSpeed,
		SymmetricClamp: cfg.SymmetricClamp,
		initial:        cfg,
	}
	c.Reset()
	return c
}

// Reset returns the camera to its initial pose and stops it.
func (c *Camera) Reset() {
	c.Position = c.initial.Position
	c.Rotation = c.initial.Rotation
	c.Velocity = math.Vec3{}
}

// Yaw returns the heading in radians.
func (c *Camera) Yaw() float32 {
	return c.Rotation.Y
}

// Forward returns the unit map-space direction of the centre ray.
// At yaw 0 it points towards decreasing map rows.
func (c *Camera) Forward() math.Vec2 {
	sin, cos := gomath.Sincos(float64(c.Rotation.Y))
	return math.Vec2{X: float32(-sin), Y: float32(-cos)}
}

// Right returns the unit map-space direction to the right of Forward.
func (c *Camera) Right() math.Vec2 {
	sin, cos := gomath.Sincos(float64(c.Rotation.Y))
	return math.Vec2{X: float32(cos), Y: float32(-sin)}
}

// Accelerate applies one tick of held inputs. Every held direction adds
// Acceleration to velocity; holding a key keeps adding each tick and Update
// caps the result.
func (c *Camera) Accelerate(dirs Directions) {
	var thrust math.Vec2
	if dirs.Has(Forward) {
		thrust = thrust.Add(c.Forward())
	}
	if dirs.Has(Back) {
		thrust = thrust.Sub(c.Forward())
	}
	if dirs.Has(StrafeRight) {
		thrust = thrust.Add(c.Right())
	}
	if dirs.Has(StrafeLeft) {
		thrust = thrust.Sub(c.Right())
	}
	thrust = thrust.Scale(c.Acceleration)
	c.Velocity.X += thrust.X
	c.Velocity.Y += thrust.Y

	if dirs.Has(Up) {
		c.Velocity.Z += c.Acceleration
	}
	if dirs.Has(Down) {
		c.Velocity.Z -= c.Acceleration
	}

	if dirs.Has(TurnLeft) {
		c.Rotation.Y += c.TurnSpeed
	}
	if dirs.Has(TurnRight) {
		c.Rotation.Y -= c.TurnSpeed
	}
}

// Update integrates one tick. For each axis in order the velocity is capped
// at MaxSpeed, damped, then added to the position.
func (c *Camera) Update() {
	for i := 0; i < 3; i++ {
		v := c.Velocity.Axis(i)
		if *v > c.MaxSpeed {
			*v = c.MaxSpeed
		}
		if c.SymmetricClamp && *v < -c.MaxSpeed {
			*v = -c.MaxSpeed
		}
		*v *= c.Damping
		*c.Position.Axis(i) += *v
	}
}

// Speed returns the magnitude of the current velocity.
func (c *Camera) Speed() float32 {
	return c.Velocity.Length()
}
