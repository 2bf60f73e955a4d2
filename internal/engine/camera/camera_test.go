package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/voxelspace/pkg/math"
)

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestDefaultConfig(t *testing.T) {
	c := New(DefaultConfig())

	if c.Position != (math.Vec3{X: 512, Y: 512, Z: 0}) {
		t.Errorf("expected position (512,512,0), got %v", c.Position)
	}
	if c.FarClip != 400 {
		t.Errorf("expected far clip 400, got %v", c.FarClip)
	}
	if c.Acceleration != 0.25 {
		t.Errorf("expected acceleration 0.25, got %v", c.Acceleration)
	}
	if c.MaxSpeed != 5 {
		t.Errorf("expected max speed 5, got %v", c.MaxSpeed)
	}
	if c.Damping != 0.9 {
		t.Errorf("expected damping 0.9, got %v", c.Damping)
	}
	if c.Velocity != (math.Vec3{}) {
		t.Errorf("expected camera at rest, got %v", c.Velocity)
	}
}

func TestAccelerateMapping(t *testing.T) {
	tests := []struct {
		name string
		dirs Directions
		want math.Vec3
	}{
		{"forward", Forward, math.Vec3{Y: -0.25}},
		{"back", Back, math.Vec3{Y: 0.25}},
		{"strafe left", StrafeLeft, math.Vec3{X: -0.25}},
		{"strafe right", StrafeRight, math.Vec3{X: 0.25}},
		{"up", Up, math.Vec3{Z: 0.25}},
		{"down", Down, math.Vec3{Z: -0.25}},
		{"forward and back cancel", Forward | Back, math.Vec3{}},
		{"diagonal", Forward | StrafeRight | Up, math.Vec3{X: 0.25, Y: -0.25, Z: 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultConfig())
			c.Accelerate(tt.dirs)
			got := c.Velocity
			if !near(got.X, tt.want.X, 1e-6) || !near(got.Y, tt.want.Y, 1e-6) || !near(got.Z, tt.want.Z, 1e-6) {
				t.Errorf("velocity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccelerateTurn(t *testing.T) {
	c := New(DefaultConfig())
	c.Accelerate(TurnLeft)
	c.Accelerate(TurnLeft)
	if !near(c.Yaw(), 0.06, 1e-6) {
		t.Errorf("yaw after two left turns = %v, want 0.06", c.Yaw())
	}
	c.Accelerate(TurnRight)
	if !near(c.Yaw(), 0.03, 1e-6) {
		t.Errorf("yaw after right turn = %v, want 0.03", c.Yaw())
	}
	if c.Velocity != (math.Vec3{}) {
		t.Errorf("turning changed velocity: %v", c.Velocity)
	}
}

func TestForwardFollowsYaw(t *testing.T) {
	c := New(DefaultConfig())

	f := c.Forward()
	if !near(f.X, 0, 1e-6) || !near(f.Y, -1, 1e-6) {
		t.Errorf("Forward() at yaw 0 = %v, want (0,-1)", f)
	}
	r := c.Right()
	if !near(r.X, 1, 1e-6) || !near(r.Y, 0, 1e-6) {
		t.Errorf("Right() at yaw 0 = %v, want (1,0)", r)
	}

	c.Rotation.Y = float32(gomath.Pi / 2)
	f = c.Forward()
	if !near(f.X, -1, 1e-6) || !near(f.Y, 0, 1e-6) {
		t.Errorf("Forward() at yaw pi/2 = %v, want (-1,0)", f)
	}
}

func TestVelocityClampSteadyState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Acceleration = 1
	c := New(cfg)

	for i := 0; i < 200; i++ {
		c.Accelerate(StrafeRight | Up)
		c.Update()

		if c.Velocity.X > c.MaxSpeed*c.Damping {
			t.Fatalf("tick %d: velocity.x %v exceeds clamped+damped bound", i, c.Velocity.X)
		}
	}

	want := cfg.MaxSpeed * cfg.Damping
	if !near(c.Velocity.X, want, 1e-5) {
		t.Errorf("steady-state velocity.x = %v, want %v", c.Velocity.X, want)
	}
	if !near(c.Velocity.Z, want, 1e-5) {
		t.Errorf("steady-state velocity.z = %v, want %v", c.Velocity.Z, want)
	}
}

func TestVelocityClampDefaultAcceleration(t *testing.T) {
	c := New(DefaultConfig())
	for i := 0; i < 500; i++ {
		c.Accelerate(StrafeRight)
		c.Update()
		if c.Velocity.X > c.MaxSpeed {
			t.Fatalf("tick %d: velocity %v exceeds max speed", i, c.Velocity.X)
		}
	}
	// Damping alone bounds a 0.25 push at 0.9*0.25/(1-0.9).
	if !near(c.Velocity.X, 2.25, 1e-3) {
		t.Errorf("steady-state velocity = %v, want ~2.25", c.Velocity.X)
	}
}

func TestNegativeVelocityClamp(t *testing.T) {
	tests := []struct {
		name      string
		symmetric bool
		want      float32
	}{
		{"one-sided clamp leaves negative side to damping", false, -9},
		{"symmetric clamp caps negative side", true, -4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Acceleration = 1
			cfg.SymmetricClamp = tt.symmetric
			c := New(cfg)

			for i := 0; i < 400; i++ {
				c.Accelerate(StrafeLeft)
				c.Update()
			}
			if !near(c.Velocity.X, tt.want, 1e-3) {
				t.Errorf("steady-state velocity.x = %v, want %v", c.Velocity.X, tt.want)
			}
		})
	}
}

func TestUpdateOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Position = math.Vec3{}
	c := New(cfg)
	c.Velocity = math.Vec3{X: 8, Y: 1, Z: -2}

	c.Update()

	// clamp 8 -> 5, damp -> 4.5, integrate
	if !near(c.Velocity.X, 4.5, 1e-6) || !near(c.Position.X, 4.5, 1e-6) {
		t.Errorf("x axis: velocity %v position %v, want 4.5/4.5", c.Velocity.X, c.Position.X)
	}
	if !near(c.Velocity.Y, 0.9, 1e-6) || !near(c.Position.Y, 0.9, 1e-6) {
		t.Errorf("y axis: velocity %v position %v, want 0.9/0.9", c.Velocity.Y, c.Position.Y)
	}
	if !near(c.Velocity.Z, -1.8, 1e-6) || !near(c.Position.Z, -1.8, 1e-6) {
		t.Errorf("z axis: velocity %v position %v, want -1.8/-1.8", c.Velocity.Z, c.Position.Z)
	}
}

func TestDampingConvergence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Position = math.Vec3{}
	c := New(cfg)
	c.Velocity = math.Vec3{X: 5, Y: 5, Z: 5}

	prev := c.Velocity.X
	for i := 0; i < 150; i++ {
		c.Update()
		if ratio := c.Velocity.X / prev; !near(ratio, 0.9, 1e-4) {
			t.Fatalf("tick %d: decay ratio %v, want 0.9", i, ratio)
		}
		prev = c.Velocity.X
	}

	settled := c.Position
	// Geometric series: 5 * 0.9 / (1 - 0.9)
	if !near(settled.X, 45, 1e-3) {
		t.Errorf("position after 150 ticks = %v, want ~45", settled.X)
	}

	for i := 0; i < 150; i++ {
		c.Update()
	}
	for axis := 0; axis < 3; axis++ {
		if d := *c.Position.Axis(axis) - *settled.Axis(axis); !near(d, 0, 1e-3) {
			t.Errorf("axis %d moved %v after settling", axis, d)
		}
	}
}

func TestReset(t *testing.T) {
	c := New(DefaultConfig())
	c.Accelerate(Forward | TurnLeft)
	c.Update()

	c.Reset()
	if c.Position != (math.Vec3{X: 512, Y: 512}) || c.Velocity != (math.Vec3{}) || c.Yaw() != 0 {
		t.Errorf("Reset left camera at %v / %v / yaw %v", c.Position, c.Velocity, c.Yaw())
	}
}

func TestSpeed(t *testing.T) {
	c := New(DefaultConfig())
	c.Velocity = math.Vec3{X: 3, Y: 4}
	if c.Speed() != 5 {
		t.Errorf("Speed() = %v, want 5", c.Speed())
	}
}
