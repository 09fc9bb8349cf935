// Package app wires the windmill scene to the window, renderer and input,
// and runs the frame loop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/windmill/internal/config"
	"github.com/Faultbox/windmill/internal/engine/debug"
	"github.com/Faultbox/windmill/internal/engine/input"
	"github.com/Faultbox/windmill/internal/engine/renderer"
	"github.com/Faultbox/windmill/internal/engine/window"
	"github.com/Faultbox/windmill/internal/windmill"
	"github.com/Faultbox/windmill/pkg/math"
)

// App is the running application.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	scene *windmill.Scene
	clock windmill.Clock

	screenshots *debug.ScreenshotCapture
}

// New creates the window, renderer and scene from the configuration.
func New(cfg *config.Config) (*App, error) {
	slog.Info("initializing windmill",
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
		"windmills", len(cfg.Scene.Centers),
		"textured", cfg.Render.Texture != "",
	)

	a := &App{
		config: cfg,
	}

	// Create window (this also creates the OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      "Windmill",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:       cfg.Graphics.Width,
		Height:      cfg.Graphics.Height,
		TexturePath: cfg.Render.Texture,
		Borders:     cfg.Render.Borders,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.scene = windmill.NewScene(centers(cfg.Scene), cfg.Scene.DistantRate)
	a.screenshots = debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "windmill")

	slog.Info("windmill initialized", "vanes", a.scene.VaneCount())
	return a, nil
}

// centers converts the configured windmill placements.
func centers(cfg config.SceneConfig) []math.Vec3 {
	out := make([]math.Vec3, len(cfg.Centers))
	for i, c := range cfg.Centers {
		out[i] = math.Vec3{X: c.X, Y: c.Y, Z: c.Z}
	}
	return out
}

// Run starts the frame loop and blocks until the window closes.
func (a *App) Run() error {
	a.running = true
	a.clock = windmill.NewClock(time.Now())

	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting frame loop")

	for a.running {
		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.renderer.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					a.running = false
				case sdl.SCANCODE_F12:
					a.captureScreenshot()
				}
			}
		}

		// 2. Spin the vanes for this instant
		a.scene.Advance(a.clock.Elapsed(time.Now()))

		// 3. Assemble and draw
		frame := windmill.Assemble(a.scene)
		a.renderer.DrawFrame(frame)

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up application resources.
func (a *App) Close() {
	slog.Info("closing windmill")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// captureScreenshot saves the last drawn frame to disk.
func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		slog.Warn("screenshot failed", "error", err)
		return
	}
	slog.Info("screenshot saved", "path", path)
}
