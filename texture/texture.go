package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// BytesPerPixel is the RGBA stride of every texture column.
const BytesPerPixel = 4

var ErrColumnRange = errors.New("texture: column out of range")

// Texture is a square RGBA image stored column first: cols[x] holds the
// Size pixels of column x top to bottom. Textures are immutable once built.
type Texture struct {
	Size int
	cols [][]byte
}

// FromColumns wraps pre-built pixel columns. Each column must hold exactly
// len(cols) RGBA pixels.
func FromColumns(cols [][]byte) (*Texture, error) {
	size := len(cols)
	if size == 0 {
		return nil, errors.New("texture: no columns")
	}
	for x, col := range cols {
		if len(col) != size*BytesPerPixel {
			return nil, fmt.Errorf("texture: column %d has %d bytes, want %d", x, len(col), size*BytesPerPixel)
		}
	}
	return &Texture{Size: size, cols: cols}, nil
}

// FromRGBA converts a row-major RGBA buffer of a size x size image.
func FromRGBA(size int, pix []byte) (*Texture, error) {
	if size <= 0 || len(pix) != size*size*BytesPerPixel {
		return nil, fmt.Errorf("texture: %d bytes is not a %dx%d RGBA image", len(pix), size, size)
	}
	cols := make([][]byte, size)
	for x := range cols {
		col := make([]byte, size*BytesPerPixel)
		for y := 0; y < size; y++ {
			src := (y*size + x) * BytesPerPixel
			copy(col[y*BytesPerPixel:(y+1)*BytesPerPixel], pix[src:src+BytesPerPixel])
		}
		cols[x] = col
	}
	return &Texture{Size: size, cols: cols}, nil
}

// FromImage converts any square image.
func FromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() || b.Dx() == 0 {
		return nil, fmt.Errorf("texture: image is %dx%d, want a non-empty square", b.Dx(), b.Dy())
	}
	size := b.Dx()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == size*BytesPerPixel {
		return FromRGBA(size, rgba.Pix[:size*size*BytesPerPixel])
	}
	cols := make([][]byte, size)
	for x := range cols {
		col := make([]byte, size*BytesPerPixel)
		for y := 0; y < size; y++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			setPixel(col, y, c)
		}
		cols[x] = col
	}
	return &Texture{Size: size, cols: cols}, nil
}

// Column returns the RGBA bytes of column x. The slice must not be modified.
func (t *Texture) Column(x int) ([]byte, error) {
	if x < 0 || x >= len(t.cols) {
		return nil, fmt.Errorf("%w: %d of %d", ErrColumnRange, x, len(t.cols))
	}
	return t.cols[x], nil
}

// Remap returns a copy of t with f applied to every pixel.
func (t *Texture) Remap(f func(color.RGBA) color.RGBA) *Texture {
	cols := make([][]byte, len(t.cols))
	for x, src := range t.cols {
		col := make([]byte, len(src))
		for y := 0; y < t.Size; y++ {
			setPixel(col, y, f(t.At(x, y)))
		}
		cols[x] = col
	}
	return &Texture{Size: t.Size, cols: cols}
}

// At returns the pixel at column x, row y.
func (t *Texture) At(x, y int) color.RGBA {
	i := y * BytesPerPixel
	col := t.cols[x]
	return color.RGBA{col[i], col[i+1], col[i+2], col[i+3]}
}

func setPixel(col []byte, y int, c color.RGBA) {
	i := y * BytesPerPixel
	col[i], col[i+1], col[i+2], col[i+3] = c.R, c.G, c.B, c.A
}
