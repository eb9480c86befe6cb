package w3d

import (
	"fmt"
	"image/color"
	"image/color/palette"
)

// PaletteSize is the byte length of a raw 256 colour RGB palette.
const PaletteSize = 256 * 3

// LoadPalette reads a raw RGB palette. Files whose components never exceed
// 63 hold 6-bit VGA DAC values and are widened to 8 bits.
func LoadPalette(data []byte) (color.Palette, error) {
	if len(data) != PaletteSize {
		return nil, fmt.Errorf("%w: palette of %d bytes, want %d", ErrCorrupt, len(data), PaletteSize)
	}
	vga := true
	for _, b := range data {
		if b > 63 {
			vga = false
			break
		}
	}

	pal := make(color.Palette, 256)
	for i := range pal {
		r, g, b := data[i*3], data[i*3+1], data[i*3+2]
		if vga {
			r, g, b = widen(r), widen(g), widen(b)
		}
		pal[i] = color.RGBA{r, g, b, 0xFF}
	}
	return pal, nil
}

func widen(v byte) byte { return v<<2 | v>>4 }

// DefaultPalette stands in when no palette file is configured.
func DefaultPalette() color.Palette { return palette.Plan9 }
