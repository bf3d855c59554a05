package blitter

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Raster is an owned 2D pixel buffer of premultiplied RGBA8 pixels, stored
// row-major at 4 bytes per pixel. Dimensions are fixed for the raster's
// lifetime. A Raster is not safe to share for mutation; Bitmap handles share
// rasters read-only and rebind on mutation.
type Raster struct {
	width  int
	height int
	pix    []uint8
}

// NewRaster allocates a fully transparent raster.
// Panics if either dimension is less than 1.
func NewRaster(width, height int) *Raster {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("blitter: invalid raster size %dx%d", width, height))
	}
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// NewRasterColor allocates a raster filled with the given color.
func NewRasterColor(width, height int, c Color) *Raster {
	r := NewRaster(width, height)
	r.Fill(c)
	return r
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// Clear sets every pixel to fully transparent premultiplied black.
func (r *Raster) Clear() {
	clear(r.pix)
}

// Fill sets every pixel to the given premultiplied color.
func (r *Raster) Fill(c Color) {
	for i := 0; i < len(r.pix); i += 4 {
		r.pix[i] = c.R
		r.pix[i+1] = c.G
		r.pix[i+2] = c.B
		r.pix[i+3] = c.A
	}
}

// Pixel returns the premultiplied color at (x, y).
// Out-of-bounds coordinates return Transparent.
func (r *Raster) Pixel(x, y int) Color {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return Transparent
	}
	i := (y*r.width + x) * 4
	return Color{r.pix[i], r.pix[i+1], r.pix[i+2], r.pix[i+3]}
}

// CompositeAt draws src onto r with the source-over operator, placing the
// source pixel at (srcX, srcY) on the destination pixel (dstX, dstY).
// Destination coordinates outside the raster are silently clipped; partially
// off-screen sources are routine, not errors.
//
// The blend is exact 8-bit fixed point on premultiplied channels:
//
//	dst = src + dst*(255-src.A)/255
//
// No un-premultiply round trip is performed.
func (r *Raster) CompositeAt(dstX, dstY int, src *Raster, srcX, srcY int) {
	for sy := srcY; sy < src.height; sy++ {
		dy := dstY + sy - srcY
		if dy < 0 || dy >= r.height {
			continue
		}
		srcRow := sy * src.width * 4
		dstRow := dy * r.width * 4
		for sx := srcX; sx < src.width; sx++ {
			dx := dstX + sx - srcX
			if dx < 0 || dx >= r.width {
				continue
			}
			si := srcRow + sx*4
			di := dstRow + dx*4
			switch a := src.pix[si+3]; a {
			case 255:
				copy(r.pix[di:di+4], src.pix[si:si+4])
			case 0:
				// Premultiplied: src channels are zero, dst is unchanged.
			default:
				inv := int(255 - a)
				for k := 0; k < 4; k++ {
					v := int(src.pix[si+k]) + int(r.pix[di+k])*inv/255
					if v > 255 {
						v = 255
					}
					r.pix[di+k] = uint8(v)
				}
			}
		}
	}
}

// Bytes exposes the raw pixel buffer: exactly width*height*4 bytes, row-major
// top to bottom, premultiplied RGBA8. The slice aliases the raster's storage;
// it is handed verbatim to the presentation sink each frame.
func (r *Raster) Bytes() []uint8 {
	return r.pix
}

// RasterFromImage converts any decoded image into a premultiplied raster.
// Go's image.RGBA is premultiplied by definition, so drawing into one performs
// the straight-to-premultiplied conversion for NRGBA and paletted sources.
func RasterFromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	dst := &image.RGBA{Pix: r.pix, Stride: r.width * 4, Rect: image.Rect(0, 0, r.width, r.height)}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return r
}

// toNRGBA converts the premultiplied buffer to straight alpha for image
// encoders that expect it.
func (r *Raster) toNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for i := 0; i < len(r.pix); i += 4 {
		cr, cg, cb, ca := r.pix[i], r.pix[i+1], r.pix[i+2], r.pix[i+3]
		if ca > 0 && ca < 255 {
			cr = uint8(min(int(cr)*255/int(ca), 255))
			cg = uint8(min(int(cg)*255/int(ca), 255))
			cb = uint8(min(int(cb)*255/int(ca), 255))
		}
		img.Pix[i] = cr
		img.Pix[i+1] = cg
		img.Pix[i+2] = cb
		img.Pix[i+3] = ca
	}
	return img
}
