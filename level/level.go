// level.go
package level

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"slices"

	// map images may be authored as PNG or BMP
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"wolfcast/model"
)

// Tile is one grid cell. Empty is open floor; any other value is a wall whose
// value also selects its wall textures.
type Tile uint16

const (
	Empty Tile = 0
	Wall  Tile = 1
)

func (t Tile) IsWall() bool { return t != Empty }

// Map is a fixed-size tile grid stored in row-major order. It is read-only
// once loaded.
type Map struct {
	Rows, Cols int
	tiles      []Tile
}

// New allocates an empty rows x cols map. Both dimensions must be positive;
// New panics otherwise, the way make does for a negative length.
func New(rows, cols int) *Map {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("level: invalid map size %dx%d", rows, cols))
	}
	return &Map{Rows: rows, Cols: cols, tiles: make([]Tile, rows*cols)}
}

func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// TileAt returns the tile at (row, col). Callers bounds check first.
func (m *Map) TileAt(row, col int) Tile { return m.tiles[row*m.Cols+col] }

func (m *Map) Set(row, col int, t Tile) { m.tiles[row*m.Cols+col] = t }

func (m *Map) IsWall(row, col int) bool { return m.TileAt(row, col).IsWall() }

func (m *Map) Dims() (rows, cols int) { return m.Rows, m.Cols }

// Spawn is the designated start tile and heading (degrees) of a map.
type Spawn struct {
	Row, Col int
	Heading  float64
}

var ErrBadSpawn = errors.New("level: spawn is not an open tile")

// CheckSpawn reports whether s stands on an open tile of m.
func (m *Map) CheckSpawn(s Spawn) error {
	if !m.InBounds(s.Row, s.Col) {
		return fmt.Errorf("%w: (%d, %d) is outside the %dx%d map", ErrBadSpawn, s.Row, s.Col, m.Rows, m.Cols)
	}
	if m.IsWall(s.Row, s.Col) {
		return fmt.Errorf("%w: (%d, %d) is wall %d", ErrBadSpawn, s.Row, s.Col, m.TileAt(s.Row, s.Col))
	}
	return nil
}

// State places the player at the centre of the spawn tile.
func (s Spawn) State(blockSize float64) model.PlayerState {
	return model.PlayerState{
		Location: model.Point{
			X: (float64(s.Col) + 0.5) * blockSize,
			Y: (float64(s.Row) + 0.5) * blockSize,
		},
		Heading: s.Heading,
	}
}

// Room returns a rows x cols map whose border is wall and whose interior is
// open, with the spawn in the middle facing north. A room needs at least one
// open tile, so Room panics when rows or cols is below 3.
func Room(rows, cols int) (*Map, Spawn) {
	if rows < 3 || cols < 3 {
		panic(fmt.Sprintf("level: room %dx%d has no interior", rows, cols))
	}
	m := New(rows, cols)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if r == 0 || c == 0 || r == m.Rows-1 || c == m.Cols-1 {
				m.Set(r, c, Wall)
			}
		}
	}
	return m, Spawn{Row: m.Rows / 2, Col: m.Cols / 2}
}

var (
	ColorEmpty = color.RGBA{255, 255, 255, 255}
	ColorSpawn = color.RGBA{0, 0, 255, 255}
)

// wallColors maps map-image colours to wall tiles.
var wallColors = map[color.RGBA]Tile{
	{0, 0, 0, 255}:       1,
	{255, 0, 0, 255}:     2,
	{0, 255, 0, 255}:     3,
	{255, 255, 0, 255}:   4,
	{128, 128, 128, 255}: 5,
}

var ErrNoSpawn = errors.New("level: map has no spawn tile")

// Decode reads a colour-coded map image, one pixel per tile. White is open
// floor, blue is the spawn tile (facing north) and the colours in wallColors
// are walls.
func Decode(r io.Reader) (*Map, Spawn, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, Spawn{}, fmt.Errorf("level: decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, Spawn{}, errors.New("level: map image is empty")
	}
	m := New(bounds.Dy(), bounds.Dx())
	spawn := Spawn{Row: -1, Col: -1}

	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)

			switch {
			case c == ColorEmpty:
			case c == ColorSpawn:
				if spawn.Row >= 0 {
					return nil, Spawn{}, fmt.Errorf("level: second spawn tile at (%d, %d)", y, x)
				}
				spawn.Row, spawn.Col = y, x
			default:
				t, ok := wallColors[c]
				if !ok {
					return nil, Spawn{}, fmt.Errorf("level: unknown tile colour %v at (%d, %d)", c, y, x)
				}
				m.Set(y, x, t)
			}
		}
	}

	if spawn.Row < 0 {
		return nil, Spawn{}, ErrNoSpawn
	}
	return m, spawn, nil
}

// WallColor returns the map-image colour that encodes wall tile t.
func WallColor(t Tile) (color.RGBA, bool) {
	for c, wt := range wallColors {
		if wt == t {
			return c, true
		}
	}
	return color.RGBA{}, false
}

// WallTiles lists the wall tiles a map image can encode, in ascending order.
func WallTiles() []Tile {
	tiles := make([]Tile, 0, len(wallColors))
	for _, t := range wallColors {
		tiles = append(tiles, t)
	}
	slices.Sort(tiles)
	return tiles
}
