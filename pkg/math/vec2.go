// Package math provides the small float32 vector types shared by the camera and
// the terrain renderer.
package math

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rotate returns v rotated counter-clockwise by angle radians.
// A zero angle returns v unchanged, bit for bit.
func (v Vec2) Rotate(angle float32) Vec2 {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Floor truncates both components towards negative infinity.
func (v Vec2) Floor() (x, y int) {
	return int(math.Floor(float64(v.X))), int(math.Floor(float64(v.Y)))
}
