package blitter

import (
	"fmt"
	"io/fs"
	"log/slog"
)

// AssetSource supplies encoded asset bytes by path. It is the only capability
// the compositor core needs from the asset layer; loading and existence errors
// belong to the source, never to the compositor.
type AssetSource interface {
	Load(path string) ([]byte, error)
}

// FSSource adapts an fs.FS (an embed.FS, os.DirFS, ...) to AssetSource.
type FSSource struct {
	FS fs.FS
}

// Load reads the file at path from the wrapped filesystem.
func (s FSSource) Load(path string) ([]byte, error) {
	data, err := fs.ReadFile(s.FS, path)
	if err != nil {
		return nil, fmt.Errorf("load asset %q: %w", path, err)
	}
	return data, nil
}

// BitmapCache decodes bitmaps on first use and retains them by path for the
// process lifetime. Each lookup returns a fresh handle sharing the cached
// raster, so callers can rebind their handle without disturbing the cache.
type BitmapCache struct {
	source  AssetSource
	bitmaps map[string]*Bitmap
}

// NewBitmapCache creates an empty cache backed by the given source.
func NewBitmapCache(source AssetSource) *BitmapCache {
	return &BitmapCache{
		source:  source,
		bitmaps: make(map[string]*Bitmap),
	}
}

// Get returns a handle to the bitmap at key, decoding and caching it on the
// first request.
func (c *BitmapCache) Get(key string) (*Bitmap, error) {
	if b, ok := c.bitmaps[key]; ok {
		return b.Clone(), nil
	}
	data, err := c.source.Load(key)
	if err != nil {
		return nil, err
	}
	b, err := DecodeBitmap(key, data)
	if err != nil {
		return nil, err
	}
	Logger().Debug("bitmap decoded",
		slog.String("key", key),
		slog.Int("width", b.Width()),
		slog.Int("height", b.Height()))
	c.bitmaps[key] = b
	return b.Clone(), nil
}

// Len returns the number of cached bitmaps.
func (c *BitmapCache) Len() int {
	return len(c.bitmaps)
}
