package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowFlags(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		fullscreen bool
	}{
		{"windowed", Config{Width: 1280, Height: 960}, false},
		{"fullscreen", Config{Fullscreen: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := windowFlags(tt.cfg)
			for _, want := range []uint32{sdl.WINDOW_OPENGL, sdl.WINDOW_RESIZABLE, sdl.WINDOW_ALLOW_HIGHDPI} {
				if flags&want == 0 {
					t.Errorf("flags %#x missing %#x", flags, want)
				}
			}
			got := flags&sdl.WINDOW_FULLSCREEN_DESKTOP == sdl.WINDOW_FULLSCREEN_DESKTOP
			if got != tt.fullscreen {
				t.Errorf("fullscreen desktop = %v, want %v", got, tt.fullscreen)
			}
		})
	}
}

func TestSwapInterval(t *testing.T) {
	if swapInterval(true) != 1 {
		t.Error("vsync should request interval 1")
	}
	if swapInterval(false) != 0 {
		t.Error("no vsync should request interval 0")
	}
}

func TestContextAttributesRequestCoreProfile(t *testing.T) {
	want := map[sdl.GLattr]int{
		sdl.GL_CONTEXT_MAJOR_VERSION: 4,
		sdl.GL_CONTEXT_MINOR_VERSION: 1,
		sdl.GL_CONTEXT_PROFILE_MASK:  sdl.GL_CONTEXT_PROFILE_CORE,
		sdl.GL_DOUBLEBUFFER:          1,
	}
	got := make(map[sdl.GLattr]int)
	for _, a := range contextAttributes {
		got[a.attr] = a.value
	}
	for attr, value := range want {
		if got[attr] != value {
			t.Errorf("attribute %d = %d, want %d", attr, got[attr], value)
		}
	}
}
