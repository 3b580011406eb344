package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// heroCanvas is the offscreen image behind the hero section. Its
// container is the viewport.
type heroCanvas struct {
	container func() (float64, float64)
	img       *ebiten.Image
}

func (c *heroCanvas) ContainerSize() (float64, float64) {
	return c.container()
}

func (c *heroCanvas) SetSize(width, height float64) {
	w, h := max(1, int(width)), max(1, int(height))
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *heroCanvas) Clear() {
	c.img.Clear()
}

func (c *heroCanvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, true)
}

func (c *heroCanvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}
