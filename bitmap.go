package blitter

import (
	"bytes"
	"fmt"
	"image"

	// Registered image formats for DecodeBitmap.
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
)

// Bitmap is a named handle to a shared, read-mostly raster. Copying the handle
// (Clone) is cheap; the pixels are shared. Whether a bitmap tiles is a property
// of its Placement, not of the bitmap itself, so one decoded image can be drawn
// tiled and non-tiled at the same time.
type Bitmap struct {
	name   string
	raster *Raster
}

// NewBitmap wraps an existing raster. The bitmap takes shared ownership; the
// caller must not mutate the raster afterward.
func NewBitmap(name string, raster *Raster) *Bitmap {
	return &Bitmap{name: name, raster: raster}
}

// NewColorBitmap creates a bitmap backed by a solid-color raster.
func NewColorBitmap(name string, width, height int, c Color) *Bitmap {
	return &Bitmap{name: name, raster: NewRasterColor(width, height, c)}
}

// NewClearBitmap creates a bitmap backed by a fully transparent raster.
func NewClearBitmap(name string, width, height int) *Bitmap {
	return &Bitmap{name: name, raster: NewRaster(width, height)}
}

// DecodeBitmap decodes an encoded image (PNG or TGA) into a premultiplied
// bitmap.
func DecodeBitmap(name string, data []byte) (*Bitmap, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode bitmap %q: %w", name, err)
	}
	return &Bitmap{name: name, raster: RasterFromImage(img)}, nil
}

// Name returns the bitmap's name, typically the asset path it was decoded from.
func (b *Bitmap) Name() string { return b.name }

// Width returns the pixel width of the underlying raster.
func (b *Bitmap) Width() int { return b.raster.width }

// Height returns the pixel height of the underlying raster.
func (b *Bitmap) Height() int { return b.raster.height }

// Raster returns the shared raster for read-only access.
func (b *Bitmap) Raster() *Raster { return b.raster }

// Clone returns a new handle sharing the same raster.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{name: b.name, raster: b.raster}
}

// SetColor replaces the bitmap's raster with a new solid-color raster of the
// same size. The old raster is never written: other handles sharing it keep
// their pixels. This is the copy-on-write path the fade effect uses every tick.
func (b *Bitmap) SetColor(c Color) {
	b.raster = NewRasterColor(b.raster.width, b.raster.height, c)
}

// TileIter yields the ascending sequence of tile offsets along one axis.
// A fresh iterator is built for every call to TileCols or TileRows; there is
// no shared cursor.
type TileIter struct {
	current int
	step    int
	end     int
}

// newTileIter starts the sequence at start mod step, shifted one step left
// when positive so the first tile still covers the left/top viewport edge.
// A non-positive step is a programming error: real bitmaps always have
// positive dimensions.
func newTileIter(start, step, end int) TileIter {
	if step <= 0 {
		panic(fmt.Sprintf("blitter: tile step must be positive, got %d", step))
	}
	current := start % step
	if current > 0 {
		current -= step
	}
	return TileIter{current: current, step: step, end: end}
}

// Next returns the next offset in the sequence. The second result is false
// once the sequence is exhausted.
func (it *TileIter) Next() (int, bool) {
	if it.current >= it.end {
		return 0, false
	}
	last := it.current
	it.current += it.step
	return last, true
}

// Collect drains the iterator into a slice. Mostly useful in tests.
func (it *TileIter) Collect() []int {
	var out []int
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// TileCols returns the column offsets needed to tile this bitmap horizontally
// across [0, end) when drawing begins at start. Offsets may be negative.
func (b *Bitmap) TileCols(start, end int) TileIter {
	return newTileIter(start, b.raster.width, end)
}

// TileRows returns the row offsets needed to tile this bitmap vertically
// across [0, end) when drawing begins at start.
func (b *Bitmap) TileRows(start, end int) TileIter {
	return newTileIter(start, b.raster.height, end)
}
