package main

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/camera"
	"github.com/Faultbox/midgard-terrain/internal/engine/debug"
	"github.com/Faultbox/midgard-terrain/internal/engine/input"
	"github.com/Faultbox/midgard-terrain/internal/engine/renderer"
	"github.com/Faultbox/midgard-terrain/internal/engine/scene"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/engine/window"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// viewer owns the window, GL state and uploaded terrain.
type viewer struct {
	window   *window.Window
	renderer *renderer.Renderer
	terrain  *scene.TerrainRenderer
	input    *input.Input
	camera   *camera.OrbitCamera
	shots    *debug.Screenshots
	tiles    []*terrain.Tile
}

func newViewer(cfg *config.Config) (*viewer, error) {
	opts, err := cfg.TileOptions()
	if err != nil {
		return nil, err
	}

	v := &viewer{
		input:  input.New(),
		camera: camera.NewOrbitCamera(),
		shots:  debug.NewScreenshots("screenshots", "terrain"),
	}

	v.window, err = window.New(window.Config{
		Title:      "Midgard Terrain",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	width, height := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		Wireframe: cfg.Graphics.Wireframe,
	})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	v.terrain, err = scene.NewTerrainRenderer()
	if err != nil {
		v.Close()
		return nil, err
	}

	tc := cfg.Terrain
	start := time.Now()
	v.tiles, err = terrain.GenerateBlock(tc.ChunkSize, tc.LOD, tc.GridOffsetX, tc.GridOffsetZ, tc.TilesX, tc.TilesZ, opts...)
	if err != nil {
		v.Close()
		return nil, err
	}
	for _, t := range v.tiles {
		if err := v.terrain.AddTile(t); err != nil {
			v.Close()
			return nil, fmt.Errorf("upload tile: %w", err)
		}
	}
	logger.Info("terrain ready",
		zap.Int("tiles", len(v.tiles)),
		zap.Duration("took", time.Since(start)),
	)

	v.camera.FitToBounds(v.terrain.MinBounds, v.terrain.MaxBounds)
	return v, nil
}

// Run executes the frame loop until the window is closed or Escape is pressed.
func (v *viewer) Run() {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		frame := v.input.Poll()
		if frame.Quit || frame.WasPressed(sdl.SCANCODE_ESCAPE) {
			return
		}
		if frame.Resized {
			// Event sizes are in window points; the viewport needs pixels.
			v.renderer.Resize(v.window.Size())
		}

		v.update(frame, dt)
		v.render()
		if frame.WasPressed(sdl.SCANCODE_F12) {
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dtMs", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

func (v *viewer) update(frame *input.Frame, dt float32) {
	if frame.WasPressed(sdl.SCANCODE_F) {
		v.renderer.SetWireframe(!v.renderer.Wireframe())
	}
	if frame.WasPressed(sdl.SCANCODE_R) {
		v.camera.FitToBounds(v.terrain.MinBounds, v.terrain.MaxBounds)
	}

	v.camera.HandleDrag(frame.DragX, frame.DragY)
	if frame.Wheel != 0 {
		v.camera.HandleZoom(frame.Wheel)
	}

	var forward, right float32
	if input.Held(sdl.SCANCODE_W) {
		forward++
	}
	if input.Held(sdl.SCANCODE_S) {
		forward--
	}
	if input.Held(sdl.SCANCODE_D) {
		right++
	}
	if input.Held(sdl.SCANCODE_A) {
		right--
	}
	if forward != 0 || right != 0 {
		// Movement speed is tuned for 60 frames per second.
		v.camera.HandleMovement(forward*dt*60, right*dt*60)
	}
}

func (v *viewer) render() {
	v.renderer.Begin()

	proj := math.Perspective(float32(gomath.Pi/4), v.renderer.Aspect(), 1, 50000)
	viewProj := proj.Mul(v.camera.ViewMatrix())
	v.terrain.Render(viewProj)
}

// screenshot saves the frame just rendered.
func (v *viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.Save(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources, tiles and the window.
func (v *viewer) Close() {
	if v.terrain != nil {
		v.terrain.Destroy()
	}
	for _, t := range v.tiles {
		t.Release()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
