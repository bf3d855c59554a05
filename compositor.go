package blitter

import (
	"log/slog"
	"math"
	"sort"
	"time"
)

// PresentSink receives the finished frame each time the compositor completes a
// pass. The buffer is the camera raster's storage: width*height*4 bytes,
// row-major, premultiplied RGBA8. Sinks must copy it out before returning if
// they keep it past the call.
type PresentSink interface {
	Present(frame []uint8)
}

// PresentFunc adapts a function to the PresentSink interface.
type PresentFunc func(frame []uint8)

// Present calls f.
func (f PresentFunc) Present(frame []uint8) { f(frame) }

// frameStats holds per-frame timing and volume metrics, populated only when
// the compositor's Debug flag is set.
type frameStats struct {
	rebuildTime   time.Duration
	sortTime      time.Duration
	compositeTime time.Duration
	visibleCount  int
	blitCount     int
}

// Compositor runs the per-frame pipeline: rebuild the spatial index, collect
// the visible set, order it by depth, resolve positions, composite into the
// camera raster, and present. The whole pass is frame-synchronous and
// single-threaded; the compositor owns the camera raster while Frame runs.
type Compositor struct {
	camera *Camera
	index  *SpatialIndex
	sink   PresentSink

	// Debug enables per-frame stat logging at debug level.
	Debug bool

	seen    map[PlacementID]struct{}
	visible []*Placement
}

// NewCompositor creates a compositor drawing through the given camera and
// delivering finished frames to sink.
func NewCompositor(camera *Camera, sink PresentSink) *Compositor {
	return &Compositor{
		camera: camera,
		index:  NewSpatialIndex(),
		sink:   sink,
		seen:   make(map[PlacementID]struct{}),
	}
}

// Camera returns the camera this compositor draws through.
func (c *Compositor) Camera() *Camera {
	return c.camera
}

// Index returns the compositor's spatial index, rebuilt on every Frame call.
func (c *Compositor) Index() *SpatialIndex {
	return c.index
}

// Frame composites every visible placement in store into the camera raster and
// presents the result. All referenced bitmaps must already be decoded; asset
// failures belong to the asset layer and never surface here.
//
// The frame starts with a full clear, so an aborted pass leaves no
// half-composited state behind: the next Frame resets everything.
func (c *Compositor) Frame(store *Store) {
	var stats frameStats
	var t0 time.Time
	if c.Debug {
		t0 = time.Now()
	}

	raster := c.camera.Raster()
	raster.Clear()

	c.index.Rebuild(store)

	if c.Debug {
		stats.rebuildTime = time.Since(t0)
		t0 = time.Now()
	}

	// Visible set: spatial index hits against the camera box, plus every
	// tiled and screen-space placement. The seen map de-dupes; a placement
	// matching more than one criterion still composites exactly once.
	clear(c.seen)
	c.index.QueryOverlaps(c.camera.ToBoundingBox(), func(id PlacementID) {
		c.seen[id] = struct{}{}
	})
	store.Each(func(p *Placement) {
		if p.Tiled || p.ScreenSpace {
			c.seen[p.ID] = struct{}{}
		}
	})

	// Collect in store insertion order so the stable sort below has a
	// deterministic starting order for equal depths.
	c.visible = c.visible[:0]
	store.Each(func(p *Placement) {
		if _, ok := c.seen[p.ID]; ok {
			c.visible = append(c.visible, p)
		}
	})

	sort.SliceStable(c.visible, func(i, j int) bool {
		return depthKey(c.visible[i].Position.Z) < depthKey(c.visible[j].Position.Z)
	})

	if c.Debug {
		stats.sortTime = time.Since(t0)
		stats.visibleCount = len(c.visible)
		t0 = time.Now()
	}

	camTransform := c.camera.Transform()
	width := raster.Width()
	height := raster.Height()

	for _, p := range c.visible {
		x, y := resolvePosition(p, camTransform)

		if p.Tiled {
			// Composite at every offset pair needed to cover the frame.
			cols := p.Bitmap.TileCols(x, width)
			for {
				tx, ok := cols.Next()
				if !ok {
					break
				}
				rows := p.Bitmap.TileRows(y, height)
				for {
					ty, ok := rows.Next()
					if !ok {
						break
					}
					raster.CompositeAt(tx, ty, p.Bitmap.Raster(), 0, 0)
					stats.blitCount++
				}
			}
		} else {
			raster.CompositeAt(x, y, p.Bitmap.Raster(), 0, 0)
			stats.blitCount++
		}
	}

	if c.Debug {
		stats.compositeTime = time.Since(t0)
		c.logStats(stats)
	}

	c.sink.Present(raster.Bytes())
}

// resolvePosition computes a placement's integer screen position.
//
// Screen-space placements use their raw coordinates. World-space placements
// subtract the camera translation scaled by depth: depth is deliberately both
// the z-order key and the parallax factor. Non-finite depth clamps the factor
// to 1, pinning "infinitely far" layers (fades) to the viewport exactly.
func resolvePosition(p *Placement, camera Vec3) (int, int) {
	if p.ScreenSpace {
		return int(p.Position.X), int(p.Position.Y)
	}
	z := p.Position.Z
	if !isFinite(z) {
		z = 1.0
	}
	return int(p.Position.X - camera.X*z), int(p.Position.Y - camera.Y*z)
}

// depthKey scales depth to a stable integer sort key. Only relative order
// matters; infinities pin to the extremes because a float-to-int conversion
// of ±Inf is not defined in Go.
func depthKey(z float64) int64 {
	switch {
	case math.IsInf(z, 1):
		return math.MaxInt64
	case math.IsInf(z, -1):
		return math.MinInt64
	case math.IsNaN(z):
		return math.MaxInt64
	default:
		return int64(z * 1000)
	}
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// logStats emits the frame's timing and volume metrics at debug level.
func (c *Compositor) logStats(stats frameStats) {
	Logger().Debug("frame",
		slog.Duration("rebuild", stats.rebuildTime),
		slog.Duration("sort", stats.sortTime),
		slog.Duration("composite", stats.compositeTime),
		slog.Int("visible", stats.visibleCount),
		slog.Int("blits", stats.blitCount))
}
