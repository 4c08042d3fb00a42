package text

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/vg"
)

// DefaultAtlasSize is the side length of the glyph atlas texture.
const DefaultAtlasSize = 1024

// Drawer shapes text and emits glyph quads onto a vg.Canvas. It owns
// a glyph atlas bound to one TextureProvider; one Drawer serves any
// number of canvases rendered by that provider.
//
// Drawer is not safe for concurrent use.
type Drawer struct {
	shaper    *Shaper
	segmenter Segmenter
	atlas     *Atlas
}

// NewDrawer creates a Drawer with a DefaultAtlasSize atlas.
func NewDrawer(provider vg.TextureProvider) (*Drawer, error) {
	return NewDrawerSize(provider, DefaultAtlasSize)
}

// NewDrawerSize creates a Drawer with an atlas of the given side
// length. Larger atlases hold more distinct glyph/size pairs before
// returning ErrAtlasFull.
func NewDrawerSize(provider vg.TextureProvider, atlasSize int) (*Drawer, error) {
	atlas, err := NewAtlas(provider, atlasSize)
	if err != nil {
		return nil, err
	}
	return &Drawer{
		shaper: NewShaper(),
		atlas:  atlas,
	}, nil
}

// Atlas returns the drawer's glyph atlas.
func (d *Drawer) Atlas() *Atlas { return d.atlas }

// DrawText shapes str and draws it on the canvas with the pen starting
// at (x, y) on the baseline, in the canvas's current transform. Mixed
// LTR/RTL text is split into directional runs before shaping.
//
// The glyph quads join the canvas's normal batching: consecutive
// DrawText calls under the same state share one draw call.
func (d *Drawer) DrawText(c *vg.Canvas, face *Face, x, y float64, str string, col vg.RGBA) error {
	if str == "" {
		return nil
	}

	m := c.CurrentTransform()
	rgba := col.Premul()

	c.SetTexture(d.atlas.Texture())
	defer c.SetTexture(vg.NoTexture)

	pen := x
	for _, seg := range d.segmenter.Split(str) {
		glyphs := d.shaper.Shape(face, seg.Text, seg.Direction)
		for _, g := range glyphs {
			entry, err := d.atlas.Glyph(face, g.GID)
			if err != nil {
				return err
			}
			if entry.W == 0 || entry.H == 0 {
				continue
			}

			gx := pen + g.X + entry.BearingX
			gy := y + g.Y + entry.BearingY
			d.quad(c, m, gx, gy, entry, rgba)
		}
		// Glyph positions are pen-relative within the run; the pen
		// moves once per run.
		for _, g := range glyphs {
			pen += g.XAdvance
		}
	}

	return nil
}

// Measure returns the advance width of str at the given face without
// drawing it.
func (d *Drawer) Measure(face *Face, str string) float64 {
	var width float64
	for _, seg := range d.segmenter.Split(str) {
		for _, g := range d.shaper.Shape(face, seg.Text, seg.Direction) {
			width += g.XAdvance
		}
	}
	return width
}

// quad emits two triangles for one glyph bitmap.
func (d *Drawer) quad(c *vg.Canvas, m vg.Matrix, x, y float64, e *AtlasEntry, rgba [4]uint8) {
	x1 := x + float64(e.W)
	y1 := y + float64(e.H)

	i0 := c.AddVertex(glyphVertex(m, x, y, e.U0, e.V0, rgba))
	i1 := c.AddVertex(glyphVertex(m, x1, y, e.U1, e.V0, rgba))
	i2 := c.AddVertex(glyphVertex(m, x1, y1, e.U1, e.V1, rgba))
	i3 := c.AddVertex(glyphVertex(m, x, y1, e.U0, e.V1, rgba))

	c.AddTriangle(i0, i1, i2)
	c.AddTriangle(i0, i2, i3)
}

func glyphVertex(m vg.Matrix, x, y, u, v float64, rgba [4]uint8) vg.Vertex {
	p := m.TransformPoint(vg.Point{X: x, Y: y})
	return vg.Vertex{
		Pos:   f32.Vec2{float32(p.X), float32(p.Y)},
		UV:    f32.Vec2{float32(u), float32(v)},
		Color: rgba,
	}
}
