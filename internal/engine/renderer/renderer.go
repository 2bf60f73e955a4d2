// Package renderer presents CPU-rendered frames through OpenGL.
package renderer

import (
	"fmt"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/framebuffer"
	"github.com/Faultbox/voxelspace/internal/engine/shader"
	"github.com/Faultbox/voxelspace/internal/logger"
)

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 uv;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	uv = aUV;
}
`

const fragmentShaderSource = `
#version 410 core

in vec2 uv;
out vec4 FragColor;

uniform sampler2D uFrame;

void main() {
	FragColor = texture(uFrame, uv);
}
`

// Config holds presenter configuration.
type Config struct {
	Width  int // Window drawable size
	Height int
	Clear  color.RGBA // Letterbox color
}

// Presenter uploads a framebuffer into a texture and draws it over the
// whole window with a textured quad.
type Presenter struct {
	config  Config
	program *shader.Program

	quadVAO uint32
	quadVBO uint32

	texture  uint32
	texW     int
	texH     int
	viewport [4]int32
}

// NewPresenter creates a presenter.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func NewPresenter(cfg Config) (*Presenter, error) {
	p := &Presenter{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(
		float32(cfg.Clear.R)/255,
		float32(cfg.Clear.G)/255,
		float32(cfg.Clear.B)/255,
		1.0,
	)

	var err error
	p.program, err = shader.NewProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", p.program.ID))

	p.createQuad()
	p.createTexture()

	return p, nil
}

// Close cleans up presenter resources.
func (p *Presenter) Close() {
	logger.Info("closing renderer")
	if p.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &p.quadVAO)
	}
	if p.quadVBO != 0 {
		gl.DeleteBuffers(1, &p.quadVBO)
	}
	if p.texture != 0 {
		gl.DeleteTextures(1, &p.texture)
	}
	if p.program != nil {
		p.program.Delete()
	}
}

// Resize handles window resize.
func (p *Presenter) Resize(width, height int) {
	p.config.Width = width
	p.config.Height = height
	p.viewport = [4]int32{}
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Present uploads fb and draws it letterboxed into the window.
func (p *Presenter) Present(fb *framebuffer.Framebuffer) {
	w, h := fb.Size()

	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	if w != p.texW || h != p.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pix()))
		p.texW, p.texH = w, h
		p.viewport = [4]int32{}
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pix()))
	}

	if p.viewport == ([4]int32{}) {
		x, y, vw, vh := FitViewport(p.config.Width, p.config.Height, w, h)
		p.viewport = [4]int32{int32(x), int32(y), int32(vw), int32(vh)}
	}

	gl.Viewport(0, 0, int32(p.config.Width), int32(p.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Viewport(p.viewport[0], p.viewport[1], p.viewport[2], p.viewport[3])

	p.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(p.program.Uniform("uFrame"), 0)
	gl.BindVertexArray(p.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// FitViewport returns the largest rectangle with the frame's aspect ratio
// centred in a window of the given size.
func FitViewport(winW, winH, frameW, frameH int) (x, y, w, h int) {
	if winW <= 0 || winH <= 0 || frameW <= 0 || frameH <= 0 {
		return 0, 0, max(winW, 0), max(winH, 0)
	}
	w, h = winW, winW*frameH/frameW
	if h > winH {
		w, h = winH*frameW/frameH, winH
	}
	return (winW - w) / 2, (winH - h) / 2, w, h
}

func (p *Presenter) createQuad() {
	// Texture row 0 is the bottom scanline, so uv maps straight onto NDC.
	vertices := []float32{
		// Position  // UV
		-1, -1, 0, 0,
		1, -1, 1, 0,
		-1, 1, 0, 1,
		1, 1, 1, 1,
	}

	gl.GenVertexArrays(1, &p.quadVAO)
	gl.BindVertexArray(p.quadVAO)

	gl.GenBuffers(1, &p.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("quad created",
		zap.Uint32("vao", p.quadVAO),
		zap.Uint32("vbo", p.quadVBO),
	)
}

func (p *Presenter) createTexture() {
	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	// Nearest keeps the chunky low-resolution look when scaled up.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
}
