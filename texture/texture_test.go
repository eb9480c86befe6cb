package texture

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"wolfcast/level"
)

func TestFromRGBATransposes(t *testing.T) {
	// 2x2 image, row-major: (0,0)=1 (1,0)=2 / (0,1)=3 (1,1)=4 in the red channel
	pix := []byte{
		1, 0, 0, 255, 2, 0, 0, 255,
		3, 0, 0, 255, 4, 0, 0, 255,
	}
	tex, err := FromRGBA(2, pix)
	if err != nil {
		t.Fatalf("FromRGBA: %v", err)
	}
	col, err := tex.Column(1)
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if col[0] != 2 || col[4] != 4 {
		t.Fatalf("column 1 = %v, want reds 2 then 4", col)
	}
	if got := tex.At(0, 1); got.R != 3 {
		t.Fatalf("At(0, 1) = %v, want red 3", got)
	}
}

func TestFromRGBARejectsBadLength(t *testing.T) {
	if _, err := FromRGBA(2, make([]byte, 15)); err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestFromColumns(t *testing.T) {
	if _, err := FromColumns([][]byte{make([]byte, 8), make([]byte, 4)}); err == nil {
		t.Fatal("expected error for ragged columns")
	}
	tex, err := FromColumns([][]byte{make([]byte, 8), make([]byte, 8)})
	if err != nil || tex.Size != 2 {
		t.Fatalf("FromColumns = %v, %v", tex, err)
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.Set(2, 1, color.RGBA{9, 8, 7, 255})
	tex, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if got := tex.At(2, 1); got != (color.RGBA{9, 8, 7, 255}) {
		t.Fatalf("At(2, 1) = %v", got)
	}
	if _, err := FromImage(image.NewRGBA(image.Rect(0, 0, 3, 2))); err == nil {
		t.Fatal("expected error for non-square image")
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.Set(1, 0, color.Gray{Y: 0x40})
	tex, err = FromImage(gray)
	if err != nil {
		t.Fatalf("FromImage(gray): %v", err)
	}
	if got := tex.At(1, 0); got != (color.RGBA{0x40, 0x40, 0x40, 0xFF}) {
		t.Fatalf("gray At(1, 0) = %v", got)
	}
}

func TestRemap(t *testing.T) {
	src := Solid(2, color.RGBA{0x90, 0x30, 0x60, 0xFF})
	half := src.Remap(func(c color.RGBA) color.RGBA {
		return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
	})
	if got := half.At(1, 1); got != (color.RGBA{0x48, 0x18, 0x30, 0xFF}) {
		t.Fatalf("remapped = %v", got)
	}
	if got := src.At(1, 1); got != (color.RGBA{0x90, 0x30, 0x60, 0xFF}) {
		t.Fatalf("source changed to %v", got)
	}
}

func TestColumnRange(t *testing.T) {
	tex := Solid(4, color.RGBA{1, 1, 1, 255})
	for _, x := range []int{-1, 4} {
		if _, err := tex.Column(x); !errors.Is(err, ErrColumnRange) {
			t.Errorf("Column(%d) err = %v, want ErrColumnRange", x, err)
		}
	}
}

func TestDemoPair(t *testing.T) {
	pair := DemoPair(DemoSize)
	if pair.Light.Size != DemoSize || pair.Dark.Size != DemoSize {
		t.Fatalf("sizes = %d, %d", pair.Light.Size, pair.Dark.Size)
	}
	// column 4, row 4 is plain brick in both variants
	if got := pair.Light.At(4, 4); got.B != 0xFF || got.R != 0 {
		t.Errorf("light brick = %v", got)
	}
	if got := pair.Dark.At(4, 4); got.B != 0xAA || got.R != 0 {
		t.Errorf("dark brick = %v", got)
	}
	// horizontal grout line at row 16
	if got := pair.Light.At(4, 16); got != groutColor {
		t.Errorf("grout = %v, want %v", got, groutColor)
	}
	// vertical grout in the first course at column 16
	if got := pair.Light.At(16, 4); got != groutColor {
		t.Errorf("vertical grout = %v, want %v", got, groutColor)
	}
}

func TestDemoScalesToSmallSizes(t *testing.T) {
	for _, size := range []int{1, 4, 16, 128} {
		if tex := Demo(size, 0xFF); tex.Size != size {
			t.Errorf("Demo(%d).Size = %d", size, tex.Size)
		}
	}
}

func TestAtlasWallPair(t *testing.T) {
	a := Solid(2, color.RGBA{1, 0, 0, 255})
	b := Solid(2, color.RGBA{2, 0, 0, 255})
	c := Solid(2, color.RGBA{3, 0, 0, 255})
	d := Solid(2, color.RGBA{4, 0, 0, 255})
	fallback := DemoPair(2)
	atlas := NewAtlas([]*Texture{a, b, c, d}, fallback)

	if got := atlas.WallPair(1); got.Light != a || got.Dark != b {
		t.Errorf("tile 1 pair wrong")
	}
	if got := atlas.WallPair(2); got.Light != c || got.Dark != d {
		t.Errorf("tile 2 pair wrong")
	}
	if got := atlas.WallPair(3); got != fallback {
		t.Errorf("tile 3 should fall back")
	}
	if got := atlas.WallPair(level.Empty); got != fallback {
		t.Errorf("empty tile should fall back")
	}
}
