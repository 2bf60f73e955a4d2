package terrain

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestMap builds a width x height map whose texel (x, y) has height x+y
// and color {x, y, 0, 255}.
func createTestMap(t *testing.T, width, height int) *Map {
	t.Helper()
	colorPix := make([]byte, 4*width*height)
	heights := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := width*y + x
			colorPix[4*i] = uint8(x)
			colorPix[4*i+1] = uint8(y)
			colorPix[4*i+3] = 255
			heights[i] = uint8(x + y)
		}
	}
	m, err := New(width, height, colorPix, heights)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		color   int
		heights int
		want    error
	}{
		{"zero width", 0, 4, 0, 0, ErrInvalidDimensions},
		{"negative height", 4, -1, 0, 0, ErrInvalidDimensions},
		{"short color", 2, 2, 15, 4, ErrRasterSize},
		{"long height", 2, 2, 16, 5, ErrRasterSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, make([]byte, tt.color), make([]byte, tt.heights))
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSample_InBounds(t *testing.T) {
	m := createTestMap(t, 8, 4)

	w, h := m.Size()
	if w != 8 || h != 4 {
		t.Fatalf("Size() = %dx%d, want 8x4", w, h)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			texel, ok := m.Sample(x, y)
			if !ok {
				t.Fatalf("Sample(%d, %d) rejected an in-range coordinate", x, y)
			}
			if texel.Height != uint8(x+y) {
				t.Errorf("Sample(%d, %d).Height = %d, want %d", x, y, texel.Height, x+y)
			}
			want := color.RGBA{R: uint8(x), G: uint8(y), A: 255}
			if texel.Color != want {
				t.Errorf("Sample(%d, %d).Color = %v, want %v", x, y, texel.Color, want)
			}
		}
	}
}

func TestSample_OutOfBounds(t *testing.T) {
	m := createTestMap(t, 8, 4)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 4}, {100, 100}, {-50, 2}} {
		if _, ok := m.Sample(p[0], p[1]); ok {
			t.Errorf("Sample(%d, %d) accepted an out-of-range coordinate", p[0], p[1])
		}
	}
}

func TestResolve(t *testing.T) {
	m := createTestMap(t, 8, 4)

	tests := []struct {
		name   string
		x, y   int
		mode   EdgeMode
		wx, wy int
		wantOK bool
	}{
		{"inside any mode", 3, 2, EdgeStop, 3, 2, true},
		{"wrap positive", 9, 5, EdgeWrap, 1, 1, true},
		{"wrap negative", -1, -5, EdgeWrap, 7, 3, true},
		{"clamp high", 20, 9, EdgeClamp, 7, 3, true},
		{"clamp low", -3, -1, EdgeClamp, 0, 0, true},
		{"stop", 8, 0, EdgeStop, 8, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := m.Resolve(tt.x, tt.y, tt.mode)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (x != tt.wx || y != tt.wy) {
				t.Errorf("Resolve(%d, %d, %s) = (%d, %d), want (%d, %d)", tt.x, tt.y, tt.mode, x, y, tt.wx, tt.wy)
			}
			if ok && !m.InBounds(x, y) {
				t.Errorf("resolved coordinate (%d, %d) is out of bounds", x, y)
			}
		})
	}
}

func TestParseEdgeMode(t *testing.T) {
	for _, mode := range []EdgeMode{EdgeWrap, EdgeClamp, EdgeStop} {
		got, err := ParseEdgeMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseEdgeMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if got, err := ParseEdgeMode(" Clamp "); err != nil || got != EdgeClamp {
		t.Errorf("ParseEdgeMode is not case-insensitive: %v, %v", got, err)
	}
	if _, err := ParseEdgeMode("mirror"); !errors.Is(err, ErrUnknownEdgeMode) {
		t.Errorf("expected ErrUnknownEdgeMode, got %v", err)
	}
}

func TestFromImages(t *testing.T) {
	colorImg := image.NewRGBA(image.Rect(0, 0, 3, 2))
	heightImg := image.NewRGBA(image.Rect(0, 0, 3, 2))
	colorImg.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	heightImg.SetRGBA(2, 1, color.RGBA{R: 200, G: 1, B: 1, A: 255})

	m, err := FromImages(colorImg, heightImg)
	if err != nil {
		t.Fatalf("FromImages failed: %v", err)
	}
	texel, ok := m.Sample(2, 1)
	if !ok {
		t.Fatal("Sample(2, 1) rejected")
	}
	if texel.Height != 200 {
		t.Errorf("height = %d, want 200 from red channel", texel.Height)
	}
	if texel.Color != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("color = %v", texel.Color)
	}
}

func TestFromImages_DimensionMismatch(t *testing.T) {
	_, err := FromImages(image.NewRGBA(image.Rect(0, 0, 4, 4)), image.NewRGBA(image.Rect(0, 0, 4, 5)))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	colorPath := filepath.Join(dir, "color_map.png")
	heightPath := filepath.Join(dir, "height_map.png")
	writePNG(t, colorPath, 16, 8, color.RGBA{R: 50, G: 150, B: 60, A: 255})
	writePNG(t, heightPath, 16, 8, color.Gray{Y: 77})

	m, err := Load(colorPath, heightPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if w, h := m.Size(); w != 16 || h != 8 {
		t.Errorf("Size() = %dx%d, want 16x8", w, h)
	}
	texel, _ := m.Sample(15, 7)
	if texel.Height != 77 || texel.Color.G != 150 {
		t.Errorf("unexpected texel %+v", texel)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	other := filepath.Join(dir, "other.png")
	writePNG(t, good, 4, 4, color.White)
	writePNG(t, other, 8, 4, color.White)

	tests := []struct {
		name       string
		color      string
		height     string
		wantPath   string
		wantReason error
	}{
		{"missing color", filepath.Join(dir, "nope.png"), good, filepath.Join(dir, "nope.png"), nil},
		{"missing height", good, filepath.Join(dir, "nope.png"), filepath.Join(dir, "nope.png"), nil},
		{"size mismatch", good, other, other, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.color, tt.height)
			if !errors.Is(err, ErrAssetLoad) {
				t.Fatalf("expected ErrAssetLoad, got %v", err)
			}
			var assetErr *AssetError
			if !errors.As(err, &assetErr) {
				t.Fatalf("expected *AssetError, got %T", err)
			}
			if assetErr.Path != tt.wantPath {
				t.Errorf("Path = %s, want %s", assetErr.Path, tt.wantPath)
			}
			if tt.wantReason != nil && !errors.Is(err, tt.wantReason) {
				t.Errorf("expected cause %v, got %v", tt.wantReason, err)
			}
		})
	}
}
