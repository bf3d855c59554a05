package blitter

import (
	"image"
	"testing"
)

func TestNewRasterPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero-width raster")
		}
	}()
	NewRaster(0, 4)
}

func TestRasterClearAndFill(t *testing.T) {
	r := NewRasterColor(3, 2, Color{10, 20, 30, 255})
	if got := r.Pixel(2, 1); got != (Color{10, 20, 30, 255}) {
		t.Errorf("Pixel(2,1) = %v after Fill", got)
	}

	r.Clear()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := r.Pixel(x, y); got != Transparent {
				t.Errorf("Pixel(%d,%d) = %v after Clear, want transparent", x, y, got)
			}
		}
	}
}

func TestBytesLayout(t *testing.T) {
	r := NewRasterColor(2, 2, Color{1, 2, 3, 4})
	b := r.Bytes()
	if len(b) != 2*2*4 {
		t.Fatalf("Bytes len = %d, want 16", len(b))
	}
	for i := 0; i < len(b); i += 4 {
		if b[i] != 1 || b[i+1] != 2 || b[i+2] != 3 || b[i+3] != 4 {
			t.Fatalf("pixel at byte %d = %v, want {1 2 3 4}", i, b[i:i+4])
		}
	}
}

func TestCompositeOpaqueReplaces(t *testing.T) {
	dst := NewRasterColor(4, 4, Color{0, 255, 0, 255})
	src := NewRasterColor(2, 2, Color{255, 0, 0, 255})

	dst.CompositeAt(1, 1, src, 0, 0)

	// Covered pixels fully replaced.
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if got := dst.Pixel(p[0], p[1]); got != (Color{255, 0, 0, 255}) {
			t.Errorf("Pixel(%d,%d) = %v, want opaque red", p[0], p[1], got)
		}
	}
	// Uncovered pixels untouched.
	if got := dst.Pixel(0, 0); got != (Color{0, 255, 0, 255}) {
		t.Errorf("Pixel(0,0) = %v, want opaque green", got)
	}
}

func TestCompositeZeroAlphaIsIdentity(t *testing.T) {
	dst := NewRasterColor(2, 2, Color{7, 8, 9, 200})
	src := NewRaster(2, 2) // fully transparent

	dst.CompositeAt(0, 0, src, 0, 0)

	if got := dst.Pixel(1, 1); got != (Color{7, 8, 9, 200}) {
		t.Errorf("Pixel(1,1) = %v, want unchanged {7 8 9 200}", got)
	}
}

func TestCompositeBlendExact(t *testing.T) {
	// dst = src + dst*(255-a)/255, truncating, per channel.
	dst := NewRasterColor(1, 1, Color{0, 200, 0, 255})
	src := NewRasterColor(1, 1, Color{100, 0, 0, 100})

	dst.CompositeAt(0, 0, src, 0, 0)

	want := Color{
		R: 100,                    // 100 + 0*155/255
		G: uint8(200 * 155 / 255), // 121
		B: 0,
		A: uint8(100 + 255*155/255), // 255
	}
	if got := dst.Pixel(0, 0); got != want {
		t.Errorf("blend = %v, want %v", got, want)
	}
}

func TestCompositeClipsOutOfBounds(t *testing.T) {
	dst := NewRaster(2, 2)
	src := NewRasterColor(2, 2, Color{255, 255, 255, 255})

	// Top-left corner of src hangs off the raster; no panic, partial write.
	dst.CompositeAt(-1, -1, src, 0, 0)

	if got := dst.Pixel(0, 0); got != (Color{255, 255, 255, 255}) {
		t.Errorf("Pixel(0,0) = %v, want white", got)
	}
	if got := dst.Pixel(1, 0); got != Transparent {
		t.Errorf("Pixel(1,0) = %v, want transparent", got)
	}
	if got := dst.Pixel(1, 1); got != Transparent {
		t.Errorf("Pixel(1,1) = %v, want transparent", got)
	}

	// Entirely off-screen composite is a no-op.
	dst.Clear()
	dst.CompositeAt(10, 10, src, 0, 0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.Pixel(x, y); got != Transparent {
				t.Errorf("Pixel(%d,%d) = %v after off-screen composite", x, y, got)
			}
		}
	}
}

func TestCompositeSrcOffset(t *testing.T) {
	dst := NewRaster(2, 2)
	src := NewRaster(2, 2)
	src.Fill(Color{50, 0, 0, 255})
	// Distinguish the bottom-right source pixel.
	one := NewRasterColor(1, 1, Color{0, 60, 0, 255})
	src.CompositeAt(1, 1, one, 0, 0)

	// Starting from src offset (1,1) only copies that one pixel.
	dst.CompositeAt(0, 0, src, 1, 1)

	if got := dst.Pixel(0, 0); got != (Color{0, 60, 0, 255}) {
		t.Errorf("Pixel(0,0) = %v, want {0 60 0 255}", got)
	}
	if got := dst.Pixel(1, 0); got != Transparent {
		t.Errorf("Pixel(1,0) = %v, want transparent", got)
	}
}

func TestRasterFromImagePremultiplies(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0] = 255 // straight-alpha red at 50% opacity
	img.Pix[3] = 128

	r := RasterFromImage(img)
	got := r.Pixel(0, 0)
	if got.A != 128 {
		t.Errorf("alpha = %d, want 128", got.A)
	}
	if diff := int(got.R) - 128; diff < -1 || diff > 1 {
		t.Errorf("premultiplied red = %d, want 128 (±1)", got.R)
	}
	if got.G != 0 || got.B != 0 {
		t.Errorf("green/blue = %d/%d, want 0/0", got.G, got.B)
	}
}

func TestPremultiply(t *testing.T) {
	c := Premultiply(255, 255, 255, 128)
	if c.A != 128 || c.R != 128 || c.G != 128 || c.B != 128 {
		t.Errorf("Premultiply(white, 128) = %v", c)
	}
	if Premultiply(10, 20, 30, 0) != Transparent {
		t.Error("Premultiply with alpha 0 should be fully transparent")
	}
}

func TestColorScale(t *testing.T) {
	c := Color{200, 100, 50, 255}.Scale(128)
	want := Color{uint8(200 * 128 / 255), uint8(100 * 128 / 255), uint8(50 * 128 / 255), 128}
	if c != want {
		t.Errorf("Scale(128) = %v, want %v", c, want)
	}
}
