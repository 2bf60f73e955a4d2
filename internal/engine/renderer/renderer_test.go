package renderer

import "testing"

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name           string
		winW, winH     int
		frameW, frameH int
		wantX, wantY   int
		wantW, wantH   int
	}{
		{"exact 2x", 1280, 960, 640, 480, 0, 0, 1280, 960},
		{"wide window pillarboxes", 1600, 960, 640, 480, 160, 0, 1280, 960},
		{"tall window letterboxes", 1280, 1200, 640, 480, 0, 120, 1280, 960},
		{"empty window", 0, 0, 640, 480, 0, 0, 0, 0},
		{"empty frame", 800, 600, 0, 0, 0, 0, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := FitViewport(tt.winW, tt.winH, tt.frameW, tt.frameH)
			if x != tt.wantX || y != tt.wantY || w != tt.wantW || h != tt.wantH {
				t.Errorf("FitViewport() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					x, y, w, h, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}
