// Package render draws actors onto ebiten images.
package render

import (
	"image"
	"image/color"
	"io"

	"github.com/automoto/tilewalk/actors"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sink is an actors.RenderSink backed by an ebiten screen. World
// coordinates are multiplied by Scale before drawing.
type Sink struct {
	screen *ebiten.Image
	scale  float64
	fill   color.Color
	op     ebiten.DrawImageOptions
	draws  int
}

var _ actors.RenderSink = (*Sink)(nil)

func NewSink(screen *ebiten.Image, scale float64, fill color.Color) *Sink {
	if scale <= 0 {
		scale = 1
	}
	return &Sink{screen: screen, scale: scale, fill: fill}
}

// DrawImage copies src from the image's ebiten handle onto dst. Images
// without an ebiten handle are skipped.
func (s *Sink) DrawImage(img *actors.Image, src, dst gamemath.Rect) {
	handle, ok := img.Handle().(*ebiten.Image)
	if !ok || src.W <= 0 || src.H <= 0 {
		return
	}
	sub := handle.SubImage(SourceRect(src)).(*ebiten.Image)

	s.op.GeoM = Placement(src, dst, s.scale)
	s.screen.DrawImage(sub, &s.op)
	s.draws++
}

// FillRect fills dst with the sink's colour.
func (s *Sink) FillRect(dst gamemath.Rect) {
	r := dst.Scale(s.scale)
	vector.FillRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), s.fill, false)
}

// Draws counts DrawImage calls that reached the screen.
func (s *Sink) Draws() int {
	return s.draws
}

// SourceRect converts a sheet rectangle to pixel bounds.
func SourceRect(src gamemath.Rect) image.Rectangle {
	return image.Rect(int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H))
}

// Placement maps a src-sized image onto dst on a screen scaled by scale.
func Placement(src, dst gamemath.Rect, scale float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(dst.W/src.W*scale, dst.H/src.H*scale)
	g.Translate(dst.X*scale, dst.Y*scale)
	return g
}

// Outline draws a one pixel border around r.
func Outline(screen *ebiten.Image, r gamemath.Rect, scale float64, clr color.Color) {
	r = r.Scale(scale)
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, clr, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, clr, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, clr, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, clr, false) // Right
}

// Decode turns encoded image bytes into an ebiten image for an
// assets.ImageLoader.
func Decode(r io.Reader) (int, int, any, error) {
	img, _, err := ebitenutil.NewImageFromReader(r)
	if err != nil {
		return 0, 0, nil, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), img, nil
}
