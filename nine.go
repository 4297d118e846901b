package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/zucenko/folio/view"
)

const (
	cardTexture = 48
	cardCorner  = 16
)

// Nine stretches a rounded texture over a rectangle, keeping the corners
// unscaled.
type Nine struct {
	image   *ebiten.Image
	corner  int
	R, G, B float64
	Alpha   float64
}

// roundedTexture is a white square with circular corners of radius r.
func roundedTexture(size, r int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx, cy := x, y
			if cx < r {
				cx = r
			} else if cx >= size-r {
				cx = size - r - 1
			}
			if cy < r {
				cy = r
			} else if cy >= size-r {
				cy = size - r - 1
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func NewNine(c GameColor) (*Nine, error) {
	img, err := ebiten.NewImageFromImage(roundedTexture(cardTexture, cardCorner), ebiten.FilterLinear)
	if err != nil {
		return nil, err
	}
	return &Nine{image: img, corner: cardCorner, R: c.r, G: c.g, B: c.b, Alpha: 1}, nil
}

func (n *Nine) Tinted(c GameColor) *Nine {
	cp := *n
	cp.R, cp.G, cp.B = c.r, c.g, c.b
	return &cp
}

func (n *Nine) Draw(screen *ebiten.Image, r view.Rect) {
	c := float64(n.corner)
	if r.W < 2*c || r.H < 2*c {
		c = min(r.W, r.H) / 2
	}
	src := [4]int{0, n.corner, cardTexture - n.corner, cardTexture}
	dstX := [4]float64{r.X, r.X + c, r.X + r.W - c, r.X + r.W}
	dstY := [4]float64{r.Y, r.Y + c, r.Y + r.H - c, r.Y + r.H}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			part := image.Rect(src[col], src[row], src[col+1], src[row+1])
			w := dstX[col+1] - dstX[col]
			h := dstY[row+1] - dstY[row]
			if w <= 0 || h <= 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(w/float64(part.Dx()), h/float64(part.Dy()))
			op.GeoM.Translate(dstX[col], dstY[row])
			op.ColorM.Scale(n.R, n.G, n.B, n.Alpha)
			screen.DrawImage(n.image.SubImage(part).(*ebiten.Image), op)
		}
	}
}
