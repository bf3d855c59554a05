// Package blitter is a software sprite compositor: a fixed-resolution,
// CPU-side pipeline that culls, orders, and alpha-blends positioned bitmaps
// into a pixel buffer every frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	camera := blitter.NewCamera(320, 240)
//	store := blitter.NewStore()
//	// ... insert placements ...
//	blitter.Run(blitter.RunConfig{
//		Title: "My Game", Camera: camera, Store: store,
//	})
//
// For full control, implement ebiten.Game yourself and call
// [Compositor.Frame] directly with any [PresentSink]:
//
//	comp := blitter.NewCompositor(camera, sink)
//	comp.Frame(store)
//
// # Pipeline
//
// Each frame runs clear, spatial index rebuild, visibility query, stable
// depth sort, position resolve, composite, and present. Placements are plain
// records in a [Store]; the compositor assumes nothing about how the host
// manages scene lifecycle.
//
// Pixels are premultiplied RGBA8 throughout, and all blending is exact 8-bit
// fixed point ([Raster.CompositeAt]). Depth deliberately serves double duty:
// it is both the z-order key and the parallax factor for world-space
// placements, with non-finite depth pinning a layer to the viewport. The
// timed viewport fades ([FadeIn], [FadeOut]) rely on that pinning.
//
// # Key features
//
// Infinite tiling ([Bitmap.TileCols], [Bitmap.TileRows]), screen-fixed
// placements, a per-frame rebuilt BVH for culling ([SpatialIndex]), timed
// fades driven by gween tweens ([Fade], [FadeSet]), camera scroll animation
// ([Camera.ScrollTo]), an asset-backed bitmap cache ([BitmapCache]), and
// PNG/WebP screenshots ([Screenshot]).
package blitter
