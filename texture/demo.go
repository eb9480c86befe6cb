package texture

import "image/color"

// DemoSize is the edge length the demo brick pattern is laid out for.
const DemoSize = 64

var (
	groutColor      = color.RGBA{0xAA, 0xAA, 0xAA, 0xFF}
	groutEdgeColor  = color.RGBA{0xBB, 0xBB, 0xBB, 0xFF}
	demoLightBlue   = uint8(0xFF)
	demoDarkBlue    = uint8(0xAA)
	horizontalGrout = []int{16, 32, 48}
)

// verticalGrout lists, per 16-pixel brick course, the columns carrying a
// vertical grout line.
var verticalGrout = [4][]int{
	{0, 16, 32, 48},
	{8, 20, 28, 44, 52},
	{0, 16, 34, 56},
	{20, 44},
}

// Demo builds a blue brick texture of the given size. The pattern is laid
// out on a 64 pixel grid and scaled to size.
func Demo(size int, blue uint8) *Texture {
	if size <= 0 {
		size = DemoSize
	}
	cols := make([][]byte, size)
	fill := color.RGBA{0, 0, blue, 0xFF}
	for x := range cols {
		cols[x] = solidColumn(size, fill)
	}

	scale := func(p int) int { return p * size / DemoSize }

	for _, row := range horizontalGrout {
		y := scale(row)
		for _, col := range cols {
			drawHorizontalGrout(col, size, y)
		}
	}

	course := size / 4
	for i, xs := range verticalGrout {
		for _, x := range xs {
			col := cols[scale(x)]
			for y := i * course; y < (i+1)*course; y++ {
				setPixel(col, y, groutColor)
			}
		}
	}

	return &Texture{Size: size, cols: cols}
}

// DemoPair returns the light and dark variants of the demo brick.
func DemoPair(size int) Pair {
	return Pair{Light: Demo(size, demoLightBlue), Dark: Demo(size, demoDarkBlue)}
}

// Solid returns a single-colour texture.
func Solid(size int, c color.RGBA) *Texture {
	cols := make([][]byte, size)
	for x := range cols {
		cols[x] = solidColumn(size, c)
	}
	return &Texture{Size: size, cols: cols}
}

func solidColumn(size int, c color.RGBA) []byte {
	col := make([]byte, size*BytesPerPixel)
	for y := 0; y < size; y++ {
		setPixel(col, y, c)
	}
	return col
}

func drawHorizontalGrout(col []byte, size, y int) {
	if y-1 >= 0 {
		setPixel(col, y-1, groutEdgeColor)
	}
	setPixel(col, y, groutColor)
	if y+1 < size {
		setPixel(col, y+1, groutEdgeColor)
	}
}
