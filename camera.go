package blitter

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera owns the output raster and the viewport's world translation. The
// logical size matches the raster dimensions and never changes after
// construction: resolution is fixed for the process lifetime.
type Camera struct {
	translation Vec3
	size        Vec2
	raster      *Raster

	scrollTween *scrollAnim
}

// NewCamera creates a camera with a cleared output raster of the given size.
func NewCamera(width, height int) *Camera {
	return &Camera{
		size:   Vec2{X: float64(width), Y: float64(height)},
		raster: NewRaster(width, height),
	}
}

// Transform returns the viewport's world translation.
func (c *Camera) Transform() Vec3 {
	return c.translation
}

// SetTransform replaces the viewport's world translation.
func (c *Camera) SetTransform(t Vec3) {
	c.translation = t
}

// Translate moves the viewport by (dx, dy).
func (c *Camera) Translate(dx, dy float64) {
	c.translation.X += dx
	c.translation.Y += dy
}

// Size returns the logical viewport dimensions, fixed at construction.
func (c *Camera) Size() Vec2 {
	return c.size
}

// Raster returns the camera's output raster. The compositor holds exclusive
// access to it for the duration of a frame's composite pass; no other actor
// may read or write it during that window.
func (c *Camera) Raster() *Raster {
	return c.raster
}

// ToBoundingBox returns the world-space box covering the viewport,
// [translation, translation+size]. The compositor queries the spatial index
// with it for visibility culling.
func (c *Camera) ToBoundingBox() Rect {
	return Rect{
		X:      c.translation.X,
		Y:      c.translation.Y,
		Width:  c.size.X,
		Height: c.size.Y,
	}
}

// ScrollTo animates the camera translation to (x, y) over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.translation.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.translation.Y), float32(y), duration, easeFn),
	}
}

// Update advances any active scroll animation. Call once per frame with the
// frame delta in seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.translation.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.translation.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}

// FadeBundle groups everything needed to spawn a viewport fade: a solid-color
// bitmap, a screen-space placement position at infinite depth (so the fade
// draws above everything and stays pinned to the viewport), and the Fade
// controller that animates the bitmap's alpha.
type FadeBundle struct {
	Bitmap      *Bitmap
	Position    Vec3
	ScreenSpace bool
	Fade        *Fade
}

// FadeIn builds a fade that starts at the solid base color and ramps to fully
// transparent over duration seconds, revealing the scene beneath it.
func FadeIn(duration float32, width, height int, base Color) FadeBundle {
	return FadeBundle{
		Bitmap:      NewColorBitmap("fade", width, height, base),
		Position:    Vec3Inf(0, 0),
		ScreenSpace: true,
		Fade:        newFade(1, 0, duration, base),
	}
}

// FadeOut builds a fade that starts transparent and ramps to the solid base
// color over duration seconds, covering the scene.
func FadeOut(duration float32, width, height int, base Color) FadeBundle {
	return FadeBundle{
		Bitmap:      NewClearBitmap("fade", width, height),
		Position:    Vec3Inf(0, 0),
		ScreenSpace: true,
		Fade:        newFade(0, 1, duration, base),
	}
}
