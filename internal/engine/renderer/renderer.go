// Package renderer turns scene draw calls into OpenGL work.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/riverview3d/riverside/internal/assets"
	"github.com/riverview3d/riverside/internal/engine/geometry"
	"github.com/riverview3d/riverside/internal/engine/renderer/shaders"
	"github.com/riverview3d/riverside/internal/engine/shader"
	"github.com/riverview3d/riverside/internal/engine/texture"
	"github.com/riverview3d/riverside/internal/logger"
	"github.com/riverview3d/riverside/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]float32
	// Seed varies the procedural fallback textures.
	Seed int64
}

// Stats counts the work submitted in one frame.
type Stats struct {
	DrawCalls int
	Triangles int
	Skipped   int
}

type gpuMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Renderer draws meshes from an asset library. Meshes and textures are
// uploaded on first use and kept until Close.
type Renderer struct {
	config Config
	lib    *assets.Library
	log    *zap.Logger

	lit   *shader.Program
	water *shader.Program

	meshes   *assets.Cache[string, *gpuMesh]
	textures *assets.Cache[string, uint32] // 0 marks a missing texture

	bound *shader.Program
	blend scene.BlendMode
	stats Stats
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, lib *assets.Library) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		lib:      lib,
		log:      logger.Named("renderer"),
		meshes:   assets.NewCache[string, *gpuMesh](),
		textures: assets.NewCache[string, uint32](),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)

	var err error
	if r.lit, err = shader.New("lit", shaders.LitVertexShader, shaders.LitFragmentShader); err != nil {
		return nil, fmt.Errorf("compiling lit program: %w", err)
	}
	if r.water, err = shader.New("water", shaders.WaterVertexShader, shaders.WaterFragmentShader); err != nil {
		r.lit.Delete()
		return nil, fmt.Errorf("compiling water program: %w", err)
	}
	r.lit.Use()
	r.lit.SetInt("textureUnit", 0)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.meshes.Each(func(_ string, m *gpuMesh) {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
	})
	r.meshes.Clear()
	r.textures.Each(func(_ string, id uint32) {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	})
	r.textures.Clear()
	r.lit.Delete()
	r.water.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = max(width, 1)
	r.config.Height = max(height, 1)
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	r.log.Debug("renderer resized",
		zap.Int("width", r.config.Width),
		zap.Int("height", r.config.Height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the frame and loads the per-frame uniforms.
func (r *Renderer) Begin(fc scene.FrameContext) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.stats = Stats{}

	for _, p := range []*shader.Program{r.lit, r.water} {
		p.Use()
		p.SetMat4("view", fc.View)
		p.SetMat4("projection", fc.Projection)
		p.SetVec3("lightPos", fc.LightPos)
		p.SetVec3("viewPos", fc.ViewPos)
		p.SetVec3("lightColor", fc.LightColor)
	}
	r.water.SetFloat("time", fc.Time)
	r.bound = r.water

	r.setBlend(scene.BlendOpaque)
}

// Draw implements scene.Drawer.
func (r *Renderer) Draw(call scene.DrawCall) {
	mesh := r.mesh(call.Mesh)
	if mesh == nil {
		r.stats.Skipped++
		return
	}

	p := r.lit
	if call.Material.Shader == scene.ShaderWater {
		p = r.water
	}
	if p != r.bound {
		p.Use()
		r.bound = p
	}
	r.setBlend(call.Material.Blend)

	m := call.Material
	p.SetMat4("model", call.Model)
	p.SetVec3("objectColor", m.Color)
	p.SetFloat("alpha", m.Alpha)

	if p == r.lit {
		tex := r.texture(m.Texture)
		if tex != 0 {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, tex)
		}
		p.SetBool("useTexture", tex != 0)
	}

	gl.BindVertexArray(mesh.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, mesh.count)
	gl.BindVertexArray(0)

	r.stats.DrawCalls++
	r.stats.Triangles += int(mesh.count) / 3
}

// End finishes the frame and returns its statistics.
func (r *Renderer) End() Stats {
	r.setBlend(scene.BlendOpaque)
	return r.stats
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) setBlend(mode scene.BlendMode) {
	if mode == r.blend {
		return
	}
	r.blend = mode
	st := blendFor(mode)
	if st.enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(st.src, st.dst)
	} else {
		gl.Disable(gl.BLEND)
	}
	gl.DepthMask(st.depthWrite)
}

type blendState struct {
	enabled    bool
	src, dst   uint32
	depthWrite bool
}

// blendFor maps a material blend mode to GL state. Translucent draws test
// depth but do not write it.
func blendFor(mode scene.BlendMode) blendState {
	switch mode {
	case scene.BlendAlpha:
		return blendState{enabled: true, src: gl.SRC_ALPHA, dst: gl.ONE_MINUS_SRC_ALPHA}
	case scene.BlendAdditive:
		return blendState{enabled: true, src: gl.SRC_ALPHA, dst: gl.ONE}
	default:
		return blendState{depthWrite: true}
	}
}

// mesh returns the uploaded mesh for key, uploading it on first use.
func (r *Renderer) mesh(key string) *gpuMesh {
	m, err := r.meshes.GetOrLoad(key, func() (*gpuMesh, error) {
		buf, ok := r.lib.LookupMesh(key)
		if !ok || buf.TriangleCount() == 0 {
			return nil, fmt.Errorf("mesh %q not in library", key)
		}
		return upload(buf), nil
	})
	if err != nil {
		// Cache the miss so it is reported once.
		r.meshes.Set(key, nil)
		r.log.Warn("skipping draw", zap.Error(err))
		return nil
	}
	return m
}

func upload(buf geometry.Buffer) *gpuMesh {
	vertices := buf.Floats()
	const stride = geometry.FloatsPerVertex * 4

	m := &gpuMesh{count: int32(len(buf.Vertices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// texture returns the GL texture for name, or 0 when it is unavailable.
// A missing file falls back to a procedural image where one exists;
// otherwise the draw uses flat colour and the miss is logged once.
func (r *Renderer) texture(name string) uint32 {
	if name == "" {
		return 0
	}
	id, _ := r.textures.GetOrLoad(name, func() (uint32, error) {
		img, err := r.loadImage(name)
		if err != nil {
			r.log.Warn("texture unavailable, using flat colour",
				zap.String("texture", name),
				zap.Error(err),
			)
			return 0, nil
		}
		return uploadTexture(img), nil
	})
	return id
}

func (r *Renderer) loadImage(name string) (*image.RGBA, error) {
	path, ok := r.lib.TexturePath(name)
	if !ok {
		return nil, fmt.Errorf("texture %q not registered", name)
	}
	img, err := texture.Load(path)
	if err == nil {
		return img, nil
	}
	if gen, ok := fallbacks[name]; ok {
		r.log.Debug("generating procedural texture",
			zap.String("texture", name),
			zap.String("path", path),
		)
		return gen(r.config.Seed), nil
	}
	return nil, fmt.Errorf("loading %s: %w", path, err)
}

var fallbacks = map[string]func(seed int64) *image.RGBA{
	scene.TexCloud: func(seed int64) *image.RGBA { return texture.Puff(128, seed) },
	scene.TexGrass: func(seed int64) *image.RGBA { return texture.Grass(256, seed) },
}

func uploadTexture(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return texID
}
