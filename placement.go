package blitter

// PlacementID is a stable identifier for a placement within a Store.
// IDs are never reused for the lifetime of a Store.
type PlacementID uint32

// Placement positions one bitmap for drawing. The external scene layer creates
// and destroys placements; the compositor only reads them.
//
// Position.Z is the depth: it orders placements back-to-front and, for
// world-space placements, scales the camera translation (parallax). Tiled
// placements repeat across the whole viewport; screen-space placements are
// anchored to the viewport origin and ignore the camera.
type Placement struct {
	ID          PlacementID
	Bitmap      *Bitmap
	Position    Vec3
	Tiled       bool
	ScreenSpace bool
}

// Store is an arena of placements with stable IDs and insertion-ordered
// iteration. The iteration order is what makes equal-depth draw order
// deterministic: the compositor's stable sort preserves it.
type Store struct {
	placements []Placement
	index      map[PlacementID]int
	nextID     PlacementID
}

// NewStore creates an empty placement store.
func NewStore() *Store {
	return &Store{index: make(map[PlacementID]int)}
}

// Insert adds a placement and returns its assigned ID. Any ID already set on
// p is overwritten.
func (s *Store) Insert(p Placement) PlacementID {
	s.nextID++
	p.ID = s.nextID
	s.index[p.ID] = len(s.placements)
	s.placements = append(s.placements, p)
	return p.ID
}

// Remove deletes the placement with the given ID, preserving the relative
// order of the rest. Reports whether the ID was present.
func (s *Store) Remove(id PlacementID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	copy(s.placements[i:], s.placements[i+1:])
	s.placements = s.placements[:len(s.placements)-1]
	delete(s.index, id)
	for j := i; j < len(s.placements); j++ {
		s.index[s.placements[j].ID] = j
	}
	return true
}

// Get returns a pointer to the placement with the given ID. The pointer is
// valid until the next Insert or Remove.
func (s *Store) Get(id PlacementID) (*Placement, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.placements[i], true
}

// Each calls fn for every placement in insertion order. fn must not insert or
// remove placements.
func (s *Store) Each(fn func(*Placement)) {
	for i := range s.placements {
		fn(&s.placements[i])
	}
}

// Len returns the number of live placements.
func (s *Store) Len() int {
	return len(s.placements)
}
