// Package raster paints renderer output into an RGBA frame buffer.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"wolfcast/raycast"
	"wolfcast/texture"
)

type Frame struct {
	img *image.RGBA
}

func NewFrame(width, height int) *Frame {
	return &Frame{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (f *Frame) Image() *image.RGBA { return f.img }

// Pix is the row-major RGBA buffer, suitable for uploading as a texture.
func (f *Frame) Pix() []byte { return f.img.Pix }

func (f *Frame) Width() int  { return f.img.Rect.Dx() }
func (f *Frame) Height() int { return f.img.Rect.Dy() }

// FillBackground paints the upper half of the frame with ceiling and the
// lower half with floor.
func (f *Frame) FillBackground(ceiling, floor color.RGBA) {
	b := f.img.Bounds()
	mid := b.Min.Y + b.Dy()/2
	draw.Draw(f.img, image.Rect(b.Min.X, b.Min.Y, b.Max.X, mid), image.NewUniform(ceiling), image.Point{}, draw.Src)
	draw.Draw(f.img, image.Rect(b.Min.X, mid, b.Max.X, b.Max.Y), image.NewUniform(floor), image.Point{}, draw.Src)
}

// Draw copies one wall column into the frame, clipping rows that fall
// outside it. Commands for columns off the frame are ignored.
func (f *Frame) Draw(cmd raycast.DrawCommand) {
	w, h := f.Width(), f.Height()
	if cmd.Column < 0 || cmd.Column >= w {
		return
	}
	first := max(0, -cmd.TopY)
	last := min(cmd.Height, h-cmd.TopY, len(cmd.Pixels)/texture.BytesPerPixel)
	for i := first; i < last; i++ {
		src := cmd.Pixels[i*texture.BytesPerPixel : (i+1)*texture.BytesPerPixel]
		dst := f.img.PixOffset(cmd.Column, cmd.TopY+i)
		copy(f.img.Pix[dst:dst+texture.BytesPerPixel], src)
	}
}

func (f *Frame) DrawAll(cmds []raycast.DrawCommand) {
	for _, cmd := range cmds {
		f.Draw(cmd)
	}
}
