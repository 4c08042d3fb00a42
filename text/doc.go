// Package text shapes and draws text on a vg.Canvas.
//
// The package bridges three layers:
//
//   - go-text/typesetting performs HarfBuzz shaping: ligatures,
//     kerning, and complex-script glyph selection.
//   - golang.org/x/text/unicode/bidi splits mixed-direction paragraphs
//     into runs before shaping.
//   - golang.org/x/image (sfnt + vector) rasterizes glyph outlines
//     into an atlas texture owned by a vg.TextureProvider.
//
// Shaped glyphs reach the canvas as textured quads through the
// AddVertex/AddTriangle injection surface; the canvas batches them
// like any other geometry.
//
// Typical use:
//
//	source, err := text.NewFontSource(fontData)
//	if err != nil {
//		return err
//	}
//	face := source.Face(16)
//
//	drawer, err := text.NewDrawer(textureProvider)
//	if err != nil {
//		return err
//	}
//	err = drawer.DrawText(canvas, face, 10, 40, "Hello, world", vg.RGBA{A: 1})
//
// FontSource is heavyweight and should be shared; Face is a cheap
// size-bound view. Drawer owns the glyph atlas and is bound to one
// TextureProvider.
package text
