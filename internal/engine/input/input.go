// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Bindings maps held keys to camera movement.
type Bindings map[sdl.Scancode]camera.Directions

// DefaultBindings is the standard layout: W/S forward and back, A/D strafe,
// Q down, E up, J/L turn.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_W: camera.Forward,
		sdl.SCANCODE_S: camera.Back,
		sdl.SCANCODE_A: camera.StrafeLeft,
		sdl.SCANCODE_D: camera.StrafeRight,
		sdl.SCANCODE_Q: camera.Down,
		sdl.SCANCODE_E: camera.Up,
		sdl.SCANCODE_J: camera.TurnLeft,
		sdl.SCANCODE_L: camera.TurnRight,
	}
}

// Directions returns the movement held in a keyboard state snapshot, as
// returned by sdl.GetKeyboardState.
func (b Bindings) Directions(state []uint8) camera.Directions {
	var dirs camera.Directions
	for code, dir := range b {
		if int(code) < len(state) && state[code] != 0 {
			dirs |= dir
		}
	}
	return dirs
}

// Input handles all input processing.
type Input struct {
	events   []Event
	bindings Bindings
}

// New creates a new input handler with the default bindings.
func New() *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		bindings: DefaultBindings(),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit (window closed or Escape).
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					return true
				}
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}
		}
	}

	return false
}

// Held returns the movement keys currently held down.
func (i *Input) Held() camera.Directions {
	return i.bindings.Directions(sdl.GetKeyboardState())
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
