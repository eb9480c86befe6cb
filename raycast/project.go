package raycast

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/harbdog/raycaster-go/geom"

	"wolfcast/texture"
)

const (
	// DefaultReferenceDistance is the distance in feet at which an 8' wall
	// exactly fills the vertical view of a viewer with 5' eye height.
	DefaultReferenceDistance = 10.0
	// DefaultMinDistance keeps wall height bounded when the viewer is flush
	// against a wall.
	DefaultMinDistance = 1.0
	// MaxHeightFactor caps wall columns at this many screen heights however
	// small MinDistance is.
	MaxHeightFactor = 16
)

// Projection turns corrected distances into on-screen wall columns. A wall
// ReferenceDistance away is exactly ScreenHeight pixels tall, so
// Scale = ScreenHeight * ReferenceDistance. No column is taller than
// MaxHeight.
type Projection struct {
	ScreenHeight int
	Scale        float64
	MinDistance  float64
	MaxHeight    int
}

func NewProjection(screenHeight int, referenceDistance, minDistance float64) Projection {
	if referenceDistance <= 0 {
		referenceDistance = DefaultReferenceDistance
	}
	if minDistance <= 0 {
		minDistance = DefaultMinDistance
	}
	return Projection{
		ScreenHeight: screenHeight,
		Scale:        float64(screenHeight) * referenceDistance,
		MinDistance:  minDistance,
		MaxHeight:    MaxHeightFactor * screenHeight,
	}
}

// WallHeight is the on-screen height of a wall d units from the camera plane.
func (p Projection) WallHeight(d float64) int {
	h := math.Round(p.Scale / math.Max(d, p.MinDistance))
	return int(math.Min(h, float64(p.MaxHeight)))
}

// TopY centres a column of height h vertically. The result may be negative
// or the column may run past the bottom; clipping belongs to the sink.
func (p Projection) TopY(h int) int {
	return int(math.Round(float64(p.ScreenHeight)/2 - float64(h)/2))
}

// TextureColumn maps the hit's offset along the face it struck to a source
// column. Faces on vertical grid lines run along y, horizontal ones along x.
func TextureColumn(hit Hit, blockSize float64, texSize int) int {
	coord := hit.Point.X
	if hit.Axis == AxisVertical {
		coord = hit.Point.Y
	}
	offset := math.Mod(coord, blockSize)
	if offset < 0 {
		offset += blockSize
	}
	col := math.Floor(offset / blockSize * float64(texSize))
	return int(geom.Clamp(col, 0, float64(texSize-1)))
}

// Resample scales a source column of texSize RGBA pixels to height pixels
// with nearest-neighbour sampling: destination row i reads source row
// floor(i*texSize/height).
func Resample(src []byte, texSize, height int) ([]byte, error) {
	if height <= 0 {
		return nil, nil
	}
	if texSize <= 0 {
		return nil, invariant(ComponentTexture, ErrTextureBounds, texSize)
	}
	last := ((height-1)*texSize/height)*texture.BytesPerPixel + texture.BytesPerPixel
	if last > len(src) {
		return nil, invariant(ComponentTexture, ErrTextureBounds,
			fmt.Sprintf("reads byte %d of %d (height %d, size %d)", last-1, len(src), height, texSize))
	}

	out := make([]byte, height*texture.BytesPerPixel)
	for i := 0; i < height; i++ {
		s := (i * texSize / height) * texture.BytesPerPixel
		d := i * texture.BytesPerPixel
		copy(out[d:d+texture.BytesPerPixel], src[s:s+texture.BytesPerPixel])
	}
	return out, nil
}

// WallMode selects how wall columns are filled.
type WallMode int

const (
	Textured WallMode = iota
	// Flat fills walls with a solid colour, lighter on vertical faces.
	Flat
)

var (
	FlatLight = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	FlatDark  = color.RGBA{0x00, 0x00, 0xAA, 0xFF}
)

func (m WallMode) String() string {
	switch m {
	case Textured:
		return "textured"
	case Flat:
		return "flat"
	}
	return fmt.Sprintf("WallMode(%d)", int(m))
}

func ParseWallMode(s string) (WallMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "textured":
		return Textured, nil
	case "flat":
		return Flat, nil
	}
	return 0, fmt.Errorf("raycast: unknown wall mode %q", s)
}

func solidColumn(height int, c color.RGBA) []byte {
	if height <= 0 {
		return nil
	}
	out := make([]byte, height*texture.BytesPerPixel)
	for i := 0; i < len(out); i += texture.BytesPerPixel {
		out[i], out[i+1], out[i+2], out[i+3] = c.R, c.G, c.B, c.A
	}
	return out
}
