package blitter

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the windowed host loop.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Camera provides the output resolution and raster. Required.
	Camera *Camera
	// Store holds the placements to composite. Required.
	Store *Store
	// Update runs once per tick with the frame delta in seconds, before the
	// frame is composited. Scene logic (spawning placements, ticking fades,
	// moving the camera) goes here. Returning an error stops the loop.
	Update func(dt float32) error
	// Scale is the window scale factor over the logical resolution.
	// Defaults to 2, matching the low-resolution pixel look.
	Scale int
	// ShowFPS enables periodic frame-rate logging.
	ShowFPS bool
}

// game adapts the compositor pipeline to ebiten's Update/Draw split. The
// presentation sink writes the finished raster into whichever screen image
// ebiten hands to Draw.
type game struct {
	cfg        RunConfig
	compositor *Compositor
	fps        *FPSCounter
	screen     *ebiten.Image
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.cfg.Camera.Update(dt)
	if g.fps != nil {
		g.fps.LogUpdate(float64(dt))
	}
	if g.cfg.Update != nil {
		return g.cfg.Update(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.screen = screen
	g.compositor.Frame(g.cfg.Store)
	g.screen = nil
}

// Present implements PresentSink over the current frame's screen image.
func (g *game) Present(frame []uint8) {
	g.screen.WritePixels(frame)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.cfg.Camera.Size()
	return int(size.X), int(size.Y)
}

// Run opens a window and drives the compositor pipeline until the window
// closes or cfg.Update returns an error. For full control over the loop,
// implement ebiten.Game yourself and call Compositor.Frame directly.
func Run(cfg RunConfig) error {
	if cfg.Camera == nil || cfg.Store == nil {
		return fmt.Errorf("blitter: RunConfig requires Camera and Store")
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 2
	}

	g := &game{cfg: cfg}
	g.compositor = NewCompositor(cfg.Camera, g)
	if cfg.ShowFPS {
		g.fps = NewFPSCounter(1.0)
	}

	size := cfg.Camera.Size()
	ebiten.SetWindowSize(int(size.X)*scale, int(size.Y)*scale)
	ebiten.SetWindowTitle(cfg.Title)

	Logger().Info("run loop starting",
		slog.Int("width", int(size.X)),
		slog.Int("height", int(size.Y)),
		slog.Int("scale", scale))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run loop: %w", err)
	}
	return nil
}
