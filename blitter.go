package blitter

import "math"

// Color is a premultiplied RGBA color with 8 bits per channel. The R, G, and B
// components are already scaled by A, so compositing never needs to
// un-premultiply. Construct from straight-alpha components with [Premultiply].
type Color struct {
	R, G, B, A uint8
}

// Transparent is fully transparent premultiplied black, the clear color.
var Transparent = Color{}

// ColorBlack is fully opaque black.
var ColorBlack = Color{A: 255}

// ColorWhite is fully opaque white.
var ColorWhite = Color{255, 255, 255, 255}

// Premultiply builds a premultiplied Color from straight-alpha components.
// The multiplication happens once, here, in the 8-bit domain; all later color
// math stays premultiplied.
func Premultiply(r, g, b, a uint8) Color {
	return Color{mul8(r, a), mul8(g, a), mul8(b, a), a}
}

// Scale multiplies every channel, including alpha, by alpha/255.
// Used to apply a uniform fade level to an already-premultiplied color.
func (c Color) Scale(alpha uint8) Color {
	return Color{mul8(c.R, alpha), mul8(c.G, alpha), mul8(c.B, alpha), mul8(c.A, alpha)}
}

// mul8 is the fixed-point channel product a*b/255.
func mul8(a, b uint8) uint8 {
	return uint8(int(a) * int(b) / 255)
}

// Vec2 is a 2D vector used for positions, sizes, and offsets.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector. The Z component is the drawing depth: it orders
// placements back-to-front and doubles as the parallax factor for
// world-space placements.
type Vec3 struct {
	X, Y, Z float64
}

// XY returns the X and Y components as a Vec2.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Vec3Inf returns a position at (x, y) with infinite depth. Infinite depth
// sorts above everything else and pins the placement to the camera (parallax
// factor clamps to 1), which is what a full-viewport fade needs.
func Vec3Inf(x, y float64) Vec3 {
	return Vec3{X: x, Y: y, Z: math.Inf(1)}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromMinMax builds a Rect from its min and max corners.
func RectFromMinMax(min, max Vec2) Rect {
	return Rect{X: min.X, Y: min.Y, Width: max.X - min.X, Height: max.Y - min.Y}
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest Rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// CenterX returns the X coordinate of the rectangle's center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the Y coordinate of the rectangle's center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }
