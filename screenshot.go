package blitter

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// Screenshot writes the raster to path as a still image. The encoder follows
// the file extension: .webp for WebP, anything else for PNG. The premultiplied
// buffer is converted to straight alpha first, since both encoders expect it.
func Screenshot(r *Raster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}

	img := r.toNRGBA()
	switch filepath.Ext(path) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	return f.Close()
}

// Screenshot writes the camera's current output raster to path. Call it after
// a Frame completes, never during one.
func (c *Camera) Screenshot(path string) error {
	return Screenshot(c.raster, path)
}
