package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD draws lines of text in the top left corner of a frame. It is not safe
// for concurrent use.
type HUD struct {
	ctx  *freetype.Context
	size float64
}

func NewHUD(size float64) (*HUD, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	return &HUD{ctx: ctx, size: size}, nil
}

func (h *HUD) Draw(f *Frame, lines []string, c color.Color) error {
	h.ctx.SetDst(f.img)
	h.ctx.SetClip(f.img.Bounds())
	h.ctx.SetSrc(image.NewUniform(c))

	margin := 2
	pt := freetype.Pt(margin, margin+int(h.ctx.PointToFixed(h.size)>>6))
	for _, line := range lines {
		if _, err := h.ctx.DrawString(line, pt); err != nil {
			return fmt.Errorf("raster: draw %q: %w", line, err)
		}
		pt.Y += h.ctx.PointToFixed(h.size * 1.2)
	}
	return nil
}
