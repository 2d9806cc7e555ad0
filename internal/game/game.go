// Package game owns the window and runs the frame loop.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/riverview3d/riverside/internal/assets"
	"github.com/riverview3d/riverside/internal/config"
	"github.com/riverview3d/riverside/internal/engine/camera"
	"github.com/riverview3d/riverside/internal/engine/input"
	"github.com/riverview3d/riverside/internal/engine/lighting"
	"github.com/riverview3d/riverside/internal/engine/renderer"
	"github.com/riverview3d/riverside/internal/engine/screenshot"
	"github.com/riverview3d/riverside/internal/engine/terrain"
	"github.com/riverview3d/riverside/internal/engine/window"
	"github.com/riverview3d/riverside/internal/logger"
	"github.com/riverview3d/riverside/internal/scene"
)

// Game is the running application.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.FlyCamera
	light    lighting.OrbitLight
	world    *scene.World
	shots    *screenshot.Writer
	log      *zap.Logger
}

// New opens the window and builds the scene.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		light:  lighting.DefaultOrbitLight(),
		shots:  screenshot.NewWriter(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
		log:    logger.Named("game"),
	}

	g.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int64("seed", cfg.Scene.Seed),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	lib := assets.NewLibrary(cfg.Scene.AssetDir)

	// The renderer needs the GL context the window just created.
	w, h := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		Background: cfg.Window.Background,
		Seed:       cfg.Scene.Seed,
	}, lib)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.input.SetRelativeMouse(true)

	c := cfg.Camera
	g.camera = camera.New(camera.Config{
		Position:    mgl32.Vec3(c.Position),
		Yaw:         c.Yaw,
		Pitch:       c.Pitch,
		Speed:       c.Speed,
		Sensitivity: c.Sensitivity,
		Zoom:        c.Zoom,
	})

	layout := scene.DefaultLayout(cfg.Scene.Seed)
	if cfg.Render.SlopeNormals {
		layout.Normals = terrain.NormalsSmooth
	}
	seed := uint64(cfg.Scene.Seed)
	g.world = scene.Build(layout, lib, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))

	g.log.Info("scene built",
		zap.Int("objects", g.world.Len()),
		zap.Int("meshes", lib.MeshCount()),
	)
	return g, nil
}

// Run drives frames until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true
	last := time.Now()
	var fps fpsCounter

	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		state := g.input.Update()
		if state.Quit || state.Pressed(keyQuit) {
			g.running = false
			break
		}
		if state.Resized {
			g.renderer.Resize(g.window.DrawableSize())
		}

		applyControls(g.camera, state, dt)

		g.world.Update(dt)

		g.renderer.Begin(frameContext(g.camera, g.light, g.world.Water.Surface(),
			g.renderer.Aspect(), g.config.Render.Near, g.config.Render.Far))
		g.world.Draw(g.renderer)
		stats := g.renderer.End()

		// Read back before the swap so the captured frame is the one drawn.
		if state.Pressed(keyScreenshot) {
			g.screenshot()
		}

		g.window.SwapBuffers()

		if rate, ok := fps.tick(dt); ok {
			g.log.Debug("fps",
				zap.Float32("fps", rate),
				zap.Int("draws", stats.DrawCalls),
				zap.Int("triangles", stats.Triangles),
				zap.Int("smoke", g.world.Smoke.System().Len()),
			)
		}
	}

	return nil
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.SaveFrame(pixels, w, h)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL resources and the window.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
