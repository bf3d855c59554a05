package blitter

import "sort"

// indexEntry pairs a placement with its world-space bounding box.
type indexEntry struct {
	id  PlacementID
	box Rect
}

// indexNode is one node of the bounding-volume tree. Leaves reference an
// entry; interior nodes reference two children.
type indexNode struct {
	box         Rect
	left, right int32
	entry       int32 // >= 0 for leaves
}

// SpatialIndex is a bounding-volume hierarchy over world-space placements,
// rebuilt from scratch every frame. Placement counts in this domain are tens,
// not thousands, so a full rebuild is cheaper than maintaining an incremental
// structure. Backing slices are recycled across frames.
type SpatialIndex struct {
	entries []indexEntry
	nodes   []indexNode
	order   []int32
	root    int32
}

// NewSpatialIndex creates an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{root: -1}
}

// Rebuild clears the index and inserts one entry per placement that is neither
// tiled nor screen-space. Those two kinds are excluded on purpose: tiled
// backgrounds cover the viewport by definition and screen-space placements are
// anchored to the viewport origin, so both bypass world-space culling.
//
// A placement's box spans its world position plus its bitmap's dimensions.
func (x *SpatialIndex) Rebuild(store *Store) {
	x.entries = x.entries[:0]
	x.nodes = x.nodes[:0]
	x.order = x.order[:0]

	store.Each(func(p *Placement) {
		if p.Tiled || p.ScreenSpace {
			return
		}
		x.entries = append(x.entries, indexEntry{
			id: p.ID,
			box: Rect{
				X:      p.Position.X,
				Y:      p.Position.Y,
				Width:  float64(p.Bitmap.Width()),
				Height: float64(p.Bitmap.Height()),
			},
		})
	})

	for i := range x.entries {
		x.order = append(x.order, int32(i))
	}
	if len(x.order) == 0 {
		x.root = -1
		return
	}
	x.root = x.build(x.order)
}

// build constructs the subtree over the given entry indices by splitting at
// the median centroid along the wider spread axis. Returns the node index.
func (x *SpatialIndex) build(order []int32) int32 {
	if len(order) == 1 {
		e := order[0]
		x.nodes = append(x.nodes, indexNode{
			box:   x.entries[e].box,
			left:  -1,
			right: -1,
			entry: e,
		})
		return int32(len(x.nodes) - 1)
	}

	bounds := x.entries[order[0]].box
	for _, e := range order[1:] {
		bounds = bounds.Union(x.entries[e].box)
	}

	if bounds.Width >= bounds.Height {
		sort.Slice(order, func(i, j int) bool {
			return x.entries[order[i]].box.CenterX() < x.entries[order[j]].box.CenterX()
		})
	} else {
		sort.Slice(order, func(i, j int) bool {
			return x.entries[order[i]].box.CenterY() < x.entries[order[j]].box.CenterY()
		})
	}

	mid := len(order) / 2
	left := x.build(order[:mid])
	right := x.build(order[mid:])
	x.nodes = append(x.nodes, indexNode{
		box:   bounds,
		left:  left,
		right: right,
		entry: -1,
	})
	return int32(len(x.nodes) - 1)
}

// QueryOverlaps invokes fn once per entry whose bounding box intersects box.
// The index imposes no ordering; callers needing a deterministic order must
// impose it themselves.
func (x *SpatialIndex) QueryOverlaps(box Rect, fn func(PlacementID)) {
	if x.root < 0 {
		return
	}
	x.query(x.root, box, fn)
}

func (x *SpatialIndex) query(node int32, box Rect, fn func(PlacementID)) {
	n := &x.nodes[node]
	if !n.box.Intersects(box) {
		return
	}
	if n.entry >= 0 {
		fn(x.entries[n.entry].id)
		return
	}
	x.query(n.left, box, fn)
	x.query(n.right, box, fn)
}

// Len returns the number of indexed entries.
func (x *SpatialIndex) Len() int {
	return len(x.entries)
}
