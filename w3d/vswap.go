// Package w3d reads Wolfenstein 3-D data files: wall textures from VSWAP and
// tile maps from MAPHEAD and GAMEMAPS.
// Layouts are documented at https://vpoupet.github.io/wolfenstein/docs/files.html
package w3d

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/color"
	"math"

	"wolfcast/texture"
)

// VSWAP header. Sprite and sound starts are chunk indices; every chunk
// before SpriteStart is a wall texture.
type binVSwapHeader struct {
	Chunks      uint16
	SpriteStart uint16
	SoundStart  uint16
}

// LoadVSwap decodes the wall textures of a VSWAP file. Each texture is stored
// column-major as palette indices and is converted to RGBA through pal.
// Sparse chunks (zero offset or length) come back as nil.
func LoadVSwap(data []byte, pal color.Palette) ([]*texture.Texture, error) {
	r := bytes.NewReader(data)

	var header binVSwapHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("w3d: vswap header: %w", err)
	}
	if header.SpriteStart > header.Chunks {
		return nil, fmt.Errorf("%w: vswap sprite start %d past %d chunks", ErrCorrupt, header.SpriteStart, header.Chunks)
	}

	offsets := make([]uint32, header.Chunks)
	if err := binary.Read(r, binary.LittleEndian, offsets); err != nil {
		return nil, fmt.Errorf("w3d: vswap offsets: %w", err)
	}
	lengths := make([]uint16, header.Chunks)
	if err := binary.Read(r, binary.LittleEndian, lengths); err != nil {
		return nil, fmt.Errorf("w3d: vswap lengths: %w", err)
	}

	textures := make([]*texture.Texture, header.SpriteStart)
	for i := range textures {
		off, n := int(offsets[i]), int(lengths[i])
		if off == 0 || n == 0 {
			continue
		}
		if off+n > len(data) {
			return nil, fmt.Errorf("%w: texture %d at [%d,%d) past %d bytes", ErrCorrupt, i, off, off+n, len(data))
		}
		t, err := indexedTexture(data[off:off+n], pal)
		if err != nil {
			return nil, fmt.Errorf("w3d: texture %d: %w", i, err)
		}
		textures[i] = t
	}
	return textures, nil
}

func indexedTexture(indices []byte, pal color.Palette) (*texture.Texture, error) {
	size := int(math.Sqrt(float64(len(indices))))
	if size*size != len(indices) {
		return nil, fmt.Errorf("%w: %d pixels is not square", ErrCorrupt, len(indices))
	}

	cols := make([][]byte, size)
	for x := range cols {
		col := make([]byte, size*texture.BytesPerPixel)
		for y := 0; y < size; y++ {
			c, err := paletteColor(pal, indices[x*size+y])
			if err != nil {
				return nil, err
			}
			o := y * texture.BytesPerPixel
			col[o], col[o+1], col[o+2], col[o+3] = c.R, c.G, c.B, 0xFF
		}
		cols[x] = col
	}
	return texture.FromColumns(cols)
}

func paletteColor(pal color.Palette, i byte) (color.RGBA, error) {
	if int(i) >= len(pal) {
		return color.RGBA{}, fmt.Errorf("%w: palette index %d of %d", ErrCorrupt, i, len(pal))
	}
	return color.RGBAModel.Convert(pal[i]).(color.RGBA), nil
}
