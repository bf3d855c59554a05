package blitter

import (
	"log/slog"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates a uniform alpha ramp over a fixed duration and applies it to
// a solid-color bitmap. Every tick rebinds the bitmap to a freshly built
// raster (copy-on-write); the pixels of the previous raster are never touched,
// so other handles sharing them are unaffected.
//
// The interpolated alpha is quantized to 8 bits before it scales the base
// color, keeping the fade in the same fixed-point channel domain as
// compositing.
type Fade struct {
	tween *gween.Tween
	base  Color
	done  bool
}

// newFade builds a linear alpha ramp from from to to over duration seconds.
func newFade(from, to, duration float32, base Color) *Fade {
	return &Fade{
		tween: gween.New(from, to, duration, ease.Linear),
		base:  base,
	}
}

// Update advances the fade by dt seconds and rebinds bitmap to a solid color
// at the current alpha level. It returns true exactly once, on the tick the
// fade completes; the caller removes the owning placement in response.
func (f *Fade) Update(dt float32, bitmap *Bitmap) bool {
	if f.done {
		return false
	}
	alpha, finished := f.tween.Update(dt)
	bitmap.SetColor(f.base.Scale(quantizeAlpha(alpha)))
	if finished {
		f.done = true
		return true
	}
	return false
}

// Done reports whether the fade has run to completion.
func (f *Fade) Done() bool {
	return f.done
}

// quantizeAlpha converts a [0, 1] alpha to the 8-bit channel domain.
func quantizeAlpha(a float32) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	default:
		return uint8(a*255 + 0.5)
	}
}

// RemovalListener is notified when a fade finishes and its placement is
// removed from the store. The ecs package provides an adapter that republishes
// these notifications as events.
type RemovalListener interface {
	PlacementRemoved(id PlacementID)
}

// RemovalEvent is the notification payload carried by ECS adapters.
type RemovalEvent struct {
	ID PlacementID
}

// FadeSet owns the active fades, keyed by the placement each one drives.
// Ticking the set advances every fade, applies the recomputed bitmap to the
// placement, and removes placements whose fades completed.
type FadeSet struct {
	fades    map[PlacementID]*Fade
	order    []PlacementID
	listener RemovalListener
}

// NewFadeSet creates an empty fade set.
func NewFadeSet() *FadeSet {
	return &FadeSet{fades: make(map[PlacementID]*Fade)}
}

// SetRemovalListener installs a listener notified after each completed fade's
// placement is removed. Pass nil to remove the listener.
func (s *FadeSet) SetRemovalListener(l RemovalListener) {
	s.listener = l
}

// Spawn inserts the bundle's placement into the store and registers its fade.
// Returns the new placement's ID.
func (s *FadeSet) Spawn(store *Store, b FadeBundle) PlacementID {
	id := store.Insert(Placement{
		Bitmap:      b.Bitmap,
		Position:    b.Position,
		ScreenSpace: b.ScreenSpace,
	})
	s.fades[id] = b.Fade
	s.order = append(s.order, id)
	return id
}

// Len returns the number of active fades.
func (s *FadeSet) Len() int {
	return len(s.fades)
}

// Update ticks every active fade by dt seconds, in spawn order. Completed
// fades have their placements removed from the store and the listener (if any)
// notified. A placement removed externally mid-fade simply drops its fade.
func (s *FadeSet) Update(dt float32, store *Store) {
	live := s.order[:0]
	for _, id := range s.order {
		fade := s.fades[id]
		p, ok := store.Get(id)
		if !ok {
			// The scene layer removed the placement early.
			delete(s.fades, id)
			continue
		}
		if fade.Update(dt, p.Bitmap) {
			store.Remove(id)
			delete(s.fades, id)
			Logger().Debug("fade complete", slog.Uint64("placement", uint64(id)))
			if s.listener != nil {
				s.listener.PlacementRemoved(id)
			}
			continue
		}
		live = append(live, id)
	}
	s.order = live
}
