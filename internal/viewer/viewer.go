// Package viewer runs the interactive terrain viewer: window, input routing,
// background terrain production and the fixed-rate render loop.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-viewer/internal/config"
	"github.com/Faultbox/terrain-viewer/internal/engine/camera"
	"github.com/Faultbox/terrain-viewer/internal/engine/frame"
	"github.com/Faultbox/terrain-viewer/internal/engine/input"
	"github.com/Faultbox/terrain-viewer/internal/engine/lighting"
	"github.com/Faultbox/terrain-viewer/internal/engine/scene"
	"github.com/Faultbox/terrain-viewer/internal/engine/screenshot"
	"github.com/Faultbox/terrain-viewer/internal/engine/terrain"
	"github.com/Faultbox/terrain-viewer/internal/engine/window"
	"github.com/Faultbox/terrain-viewer/internal/heightfield"
	"github.com/Faultbox/terrain-viewer/internal/logger"
	"github.com/Faultbox/terrain-viewer/internal/viewer/controls"
	"github.com/Faultbox/terrain-viewer/internal/viewer/pipeline"
)

const title = "Terrain Viewer"

var keyActions = map[sdl.Scancode]controls.Action{
	sdl.SCANCODE_W:         controls.ActionWaterUp,
	sdl.SCANCODE_S:         controls.ActionWaterDown,
	sdl.SCANCODE_LEFT:      controls.ActionLightLeft,
	sdl.SCANCODE_RIGHT:     controls.ActionLightRight,
	sdl.SCANCODE_UP:        controls.ActionLightUp,
	sdl.SCANCODE_DOWN:      controls.ActionLightDown,
	sdl.SCANCODE_G:         controls.ActionRegenerate,
	sdl.SCANCODE_BACKSPACE: controls.ActionReset,
	sdl.SCANCODE_F:         controls.ActionWireframe,
	sdl.SCANCODE_F12:       controls.ActionScreenshot,
	sdl.SCANCODE_ESCAPE:    controls.ActionQuit,
}

var mouseButtons = map[uint8]camera.Button{
	input.ButtonLeft:   camera.ButtonPrimary,
	input.ButtonMiddle: camera.ButtonMiddle,
	input.ButtonRight:  camera.ButtonSecondary,
}

// Viewer is the running application.
type Viewer struct {
	cfg *config.Config

	window   *window.Window
	renderer *scene.Renderer
	input    *input.Input

	camera   *camera.Controller
	controls *controls.Controls
	shots    *screenshot.Capture

	store    terrain.Store
	pipeline *pipeline.Pipeline
	seed     int64

	running  bool
	capture  bool
	status   string
	uploaded *terrain.Mesh
}

// New opens the window, initializes OpenGL and prepares the terrain source.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("lod_target", cfg.Terrain.LODTarget),
	)

	v := &Viewer{
		cfg:    cfg,
		input:  input.New(),
		camera: camera.NewController(),
		controls: controls.New(controls.Params{
			WaterLevel: cfg.View.WaterLevel,
			Light:      lighting.Angles{X: cfg.View.LightAngleX, Y: cfg.View.LightAngleY},
		}),
		shots: screenshot.New(cfg.Graphics.ScreenshotDir, "terrain"),
		seed:  cfg.Source.Seed,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w, h := v.window.DrawableSize()
	v.renderer, err = scene.New(w, h)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.pipeline = pipeline.New(v.source(), &v.store, cfg.Terrain.LODTarget)

	logger.Info("viewer initialized")
	return v, nil
}

func (v *Viewer) source() pipeline.Source {
	if path := v.cfg.Source.Heightmap; path != "" {
		logger.Info("using heightmap image", zap.String("path", path))
		return pipeline.ImageSource(path)
	}

	ns := heightfield.NewNoiseSource()
	ns.Progress = func(percent int) {
		v.pipeline.ReportProgress(percent)
		logger.Debug("generating terrain", zap.Int("percent", percent))
	}
	return pipeline.NoiseSource(ns, v.cfg.Source.Size)
}

// Run renders at the configured rate until the window closes, Escape is
// pressed or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	v.pipeline.Start(ctx)
	defer func() {
		// Stop any in-flight generation before waiting for the worker.
		cancel()
		v.pipeline.Close()
	}()

	if err := v.pipeline.Request(v.seed); err != nil {
		return fmt.Errorf("requesting terrain: %w", err)
	}

	ticker := time.NewTicker(time.Second / time.Duration(v.cfg.Graphics.FPSLimit))
	defer ticker.Stop()

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop", zap.Int("fps", v.cfg.Graphics.FPSLimit))
	v.running = true

	for v.running {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if v.input.Update() {
			v.running = false
		}
		v.handleEvents()

		v.render()
		if v.capture {
			v.capture = false
			v.saveScreenshot()
		}
		v.window.SwapBuffers()
		v.updateTitle()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := v.window.DrawableSize()
			v.renderer.Resize(w, h)

		case input.EventKeyDown:
			v.handleAction(keyActions[event.Key])

		case input.EventMouseDown:
			if b, ok := mouseButtons[event.Button]; ok {
				v.camera.Press(b, event.MouseX, event.MouseY)
			}

		case input.EventMouseUp:
			if b, ok := mouseButtons[event.Button]; ok {
				v.camera.Release(b)
			}

		case input.EventMouseMove:
			v.camera.Motion(event.MouseX, event.MouseY)

		case input.EventMouseWheel:
			v.camera.Wheel(event.Wheel)
		}
	}
}

func (v *Viewer) handleAction(a controls.Action) {
	switch a {
	case controls.ActionNone:
	case controls.ActionQuit:
		v.running = false
	case controls.ActionWireframe:
		v.renderer.Wireframe = !v.renderer.Wireframe
		logger.Debug("wireframe toggled", zap.Bool("enabled", v.renderer.Wireframe))
	case controls.ActionScreenshot:
		v.capture = true
	case controls.ActionRegenerate:
		v.seed++
		if err := v.pipeline.Request(v.seed); err != nil {
			logger.Warn("regenerate ignored", zap.Error(err))
			return
		}
		logger.Info("regenerating terrain", zap.Int64("seed", v.seed))
	default:
		if v.controls.Apply(a) {
			logger.Debug("view changed", zap.Stringer("action", a), zap.String("status", v.controls.Status()))
		}
	}
}

func (v *Viewer) render() {
	mesh := v.store.Current()
	if mesh != nil && mesh != v.uploaded {
		if err := v.renderer.Upload(mesh); err != nil {
			logger.Error("terrain upload failed", zap.Error(err))
		} else {
			v.uploaded = mesh
		}
	}

	p := v.controls.Params()
	f := frame.Plan(frame.State{
		Camera:     v.camera.State(),
		Light:      p.Light,
		WaterLevel: p.WaterLevel,
		Mesh:       v.uploaded,
	})
	v.renderer.Render(f)
}

func (v *Viewer) saveScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.Save(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) updateTitle() {
	status := controls.Title(v.controls.Status(), controls.Progress{
		Busy:    v.pipeline.Busy(),
		Percent: v.pipeline.Progress(),
		Err:     v.pipeline.Err(),
	})
	if status != v.status {
		v.status = status
		v.window.SetTitle(title + " | " + status)
	}
}

// Close releases the renderer and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
