// Package renderer draws assembled windmill frames with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/windmill/internal/engine/shader"
	"github.com/Faultbox/windmill/internal/engine/texture"
	"github.com/Faultbox/windmill/internal/logger"
	"github.com/Faultbox/windmill/internal/windmill"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// TexturePath maps an image onto each vane when non-empty; otherwise
	// the vanes are flat-shaded.
	TexturePath string

	// Borders draws the wireframe outline over the front faces.
	Borders bool
}

// Renderer owns the OpenGL state for the two windmill draw passes: the
// filled interiors (all faces, unindexed triangles) and the borders (front
// faces only, indexed lines).
type Renderer struct {
	config Config

	interiorProgram uint32
	borderProgram   uint32

	interiorVAO uint32
	interiorVBO uint32

	borderVAO uint32
	borderVBO uint32
	borderEBO uint32

	vaneTexture uint32
}

// floatsPerVertex is the interleaved layout: position, normal, texture.
const floatsPerVertex = 3 + 3 + 2

// New creates a renderer and sets up fixed GL state.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
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

	// Front faces wind clockwise; cull the counter-clockwise side.
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CW)
	gl.CullFace(gl.BACK)

	// Depth runs "more is nearer": clear to 0 and pass greater values.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.GREATER)
	gl.ClearDepth(0)

	gl.LineWidth(2.0)

	if cfg.TexturePath != "" {
		gl.ClearColor(1, 1, 1, 1)
	} else {
		gl.ClearColor(0.8, 0.8, 0.8, 1)
	}

	if err := r.createPrograms(); err != nil {
		return nil, err
	}
	if err := r.createBuffers(); err != nil {
		return nil, err
	}
	if cfg.TexturePath != "" {
		if err := r.loadTexture(cfg.TexturePath); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.interiorVAO != 0 {
		gl.DeleteVertexArrays(1, &r.interiorVAO)
	}
	if r.interiorVBO != 0 {
		gl.DeleteBuffers(1, &r.interiorVBO)
	}
	if r.borderVAO != 0 {
		gl.DeleteVertexArrays(1, &r.borderVAO)
	}
	if r.borderVBO != 0 {
		gl.DeleteBuffers(1, &r.borderVBO)
	}
	if r.borderEBO != 0 {
		gl.DeleteBuffers(1, &r.borderEBO)
	}
	if r.vaneTexture != 0 {
		gl.DeleteTextures(1, &r.vaneTexture)
	}
	if r.interiorProgram != 0 {
		gl.DeleteProgram(r.interiorProgram)
	}
	if r.borderProgram != 0 {
		gl.DeleteProgram(r.borderProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// DrawFrame clears the screen and issues both passes for the assembled
// frame. Vertex and index data are re-uploaded every frame; the streams
// are transient by design.
func (r *Renderer) DrawFrame(f windmill.Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if len(f.Vertices) == 0 {
		return
	}

	data := flatten(f.Vertices)

	// Interior pass: every face as an unindexed triangle list.
	gl.UseProgram(r.interiorProgram)
	if r.vaneTexture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.vaneTexture)
	}
	gl.BindVertexArray(r.interiorVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.interiorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(f.Vertices)))

	if r.config.Borders && len(f.BorderIndices) > 0 {
		// Border pass: reuse only the front-block vertices with the line
		// indices. Depth testing is off so the outline stays visible.
		front := data[:f.FrontCount()*floatsPerVertex]

		gl.Disable(gl.DEPTH_TEST)
		gl.UseProgram(r.borderProgram)
		gl.BindVertexArray(r.borderVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.borderVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(front)*4, gl.Ptr(front), gl.STREAM_DRAW)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.borderEBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(f.BorderIndices)*2, gl.Ptr(f.BorderIndices), gl.STREAM_DRAW)
		gl.DrawElements(gl.LINES, int32(len(f.BorderIndices)), gl.UNSIGNED_SHORT, nil)
		gl.Enable(gl.DEPTH_TEST)
	}

	gl.BindVertexArray(0)
}

// ReadPixels copies the current framebuffer into an RGBA byte slice,
// bottom row first as OpenGL delivers it.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// flatten interleaves the vertex stream into the layout the shaders expect.
func flatten(verts []windmill.Vertex) []float32 {
	data := make([]float32, 0, len(verts)*floatsPerVertex)
	for _, v := range verts {
		data = append(data,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Texture.X, v.Texture.Y,
		)
	}
	return data
}

// createPrograms compiles the interior and border shader programs.
func (r *Renderer) createPrograms() error {
	interiorFrag := interiorFragSrc
	if r.config.TexturePath != "" {
		interiorFrag = texturedFragSrc
	}

	program, err := shader.CompileProgram(vaneVertSrc, interiorFrag)
	if err != nil {
		return fmt.Errorf("interior program: %w", err)
	}
	r.interiorProgram = program

	program, err = shader.CompileProgram(vaneVertSrc, borderFragSrc)
	if err != nil {
		return fmt.Errorf("border program: %w", err)
	}
	r.borderProgram = program

	if r.config.TexturePath != "" {
		gl.UseProgram(r.interiorProgram)
		gl.Uniform1i(shader.MustGetUniform(r.interiorProgram, "vaneTexture"), 0)
		gl.UseProgram(0)
	}

	logger.Debug("shader programs created",
		zap.Uint32("interior", r.interiorProgram),
		zap.Uint32("border", r.borderProgram),
	)
	return nil
}

// createBuffers sets up the streaming VAO/VBO pairs for both passes.
func (r *Renderer) createBuffers() error {
	gl.GenVertexArrays(1, &r.interiorVAO)
	gl.GenBuffers(1, &r.interiorVBO)
	configureVertexLayout(r.interiorVAO, r.interiorVBO)

	gl.GenVertexArrays(1, &r.borderVAO)
	gl.GenBuffers(1, &r.borderVBO)
	gl.GenBuffers(1, &r.borderEBO)
	configureVertexLayout(r.borderVAO, r.borderVBO)

	gl.BindVertexArray(r.borderVAO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.borderEBO)
	gl.BindVertexArray(0)

	logger.Debug("vertex buffers created",
		zap.Uint32("interiorVAO", r.interiorVAO),
		zap.Uint32("borderVAO", r.borderVAO),
	)
	return nil
}

// configureVertexLayout binds the interleaved position/normal/texture
// attribute layout to a VAO.
func configureVertexLayout(vao, vbo uint32) {
	const stride = floatsPerVertex * 4

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	// Texture attribute (location = 2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// loadTexture decodes the configured image and uploads it.
func (r *Renderer) loadTexture(path string) error {
	img, err := texture.Load(path)
	if err != nil {
		return err
	}
	r.vaneTexture = texture.Upload(img)

	size := img.Bounds().Size()
	logger.Info("vane texture loaded",
		zap.String("path", path),
		zap.Int("width", size.X),
		zap.Int("height", size.Y),
	)
	return nil
}
