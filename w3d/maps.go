package w3d

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"wolfcast/level"
)

// MapSize is the side of every Wolfenstein 3-D map.
const MapSize = 64

// MapHead is the MAPHEAD file: the RLEW tag shared by all maps and the
// GAMEMAPS offset of each map header, zero for absent maps.
type MapHead struct {
	RLEWTag uint16
	Offsets []uint32
}

func LoadMapHead(data []byte) (MapHead, error) {
	if len(data) < 2 {
		return MapHead{}, fmt.Errorf("%w: maphead of %d bytes", ErrCorrupt, len(data))
	}
	head := MapHead{
		RLEWTag: binary.LittleEndian.Uint16(data),
		Offsets: make([]uint32, (len(data)-2)/4),
	}
	if err := binary.Read(bytes.NewReader(data[2:]), binary.LittleEndian, head.Offsets); err != nil {
		return MapHead{}, fmt.Errorf("w3d: maphead offsets: %w", err)
	}
	return head, nil
}

type binMapHeader struct {
	PlaneOffsets [3]uint32
	PlaneSizes   [3]uint16
	Width        uint16
	Height       uint16
	Name         [16]byte
}

// GameMap is one decompressed map. Plane 0 holds walls and floor areas,
// plane 1 holds objects including the player start. Plane 2 is unused.
type GameMap struct {
	Name          string
	Width, Height int
	Plane0        []uint16
	Plane1        []uint16
}

// LoadGameMaps decodes every map present in a GAMEMAPS file.
func LoadGameMaps(data []byte, head MapHead) ([]GameMap, error) {
	var maps []GameMap
	for i, off := range head.Offsets {
		if off == 0 {
			continue
		}
		m, err := loadGameMap(data, int(off), head.RLEWTag)
		if err != nil {
			return nil, fmt.Errorf("w3d: map %d: %w", i, err)
		}
		maps = append(maps, m)
	}
	return maps, nil
}

func loadGameMap(data []byte, off int, tag uint16) (GameMap, error) {
	if off >= len(data) {
		return GameMap{}, fmt.Errorf("%w: header offset %d past %d bytes", ErrCorrupt, off, len(data))
	}
	var header binMapHeader
	if err := binary.Read(bytes.NewReader(data[off:]), binary.LittleEndian, &header); err != nil {
		return GameMap{}, fmt.Errorf("header: %w", err)
	}
	if header.Width != MapSize || header.Height != MapSize {
		return GameMap{}, fmt.Errorf("%w: map is %dx%d, want %dx%d", ErrCorrupt, header.Width, header.Height, MapSize, MapSize)
	}

	m := GameMap{
		Name:   cString(header.Name[:]),
		Width:  int(header.Width),
		Height: int(header.Height),
	}
	var err error
	if m.Plane0, err = loadPlane(data, header.PlaneOffsets[0], header.PlaneSizes[0], tag); err != nil {
		return GameMap{}, fmt.Errorf("plane 0: %w", err)
	}
	if m.Plane1, err = loadPlane(data, header.PlaneOffsets[1], header.PlaneSizes[1], tag); err != nil {
		return GameMap{}, fmt.Errorf("plane 1: %w", err)
	}
	return m, nil
}

func loadPlane(data []byte, off uint32, size uint16, tag uint16) ([]uint16, error) {
	start, end := int(off), int(off)+int(size)
	if end > len(data) {
		return nil, fmt.Errorf("%w: plane [%d,%d) past %d bytes", ErrCorrupt, start, end, len(data))
	}
	expanded, err := DecodeCarmack(data[start:end])
	if err != nil {
		return nil, err
	}
	plane, err := DecodeRLEW(expanded, tag)
	if err != nil {
		return nil, err
	}
	if len(plane) != MapSize*MapSize {
		return nil, fmt.Errorf("%w: plane has %d tiles, want %d", ErrCorrupt, len(plane), MapSize*MapSize)
	}
	return plane, nil
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

const (
	// plane 0 values below this are solid walls; doors and floor areas
	// start here
	firstNonWall = 90

	playerStartNorth = 19
	playerStartWest  = 22
)

var ErrNoPlayerStart = errors.New("w3d: map has no player start")

// Level converts the map into a tile grid. Plane 0 walls keep their value as
// the wall texture id; plane 1 values 19 to 22 place the player facing north,
// east, south or west.
func (m GameMap) Level() (*level.Map, level.Spawn, error) {
	if m.Width <= 0 || m.Height <= 0 {
		return nil, level.Spawn{}, fmt.Errorf("%w: map is %dx%d", ErrCorrupt, m.Width, m.Height)
	}
	if len(m.Plane0) != m.Width*m.Height || len(m.Plane1) != m.Width*m.Height {
		return nil, level.Spawn{}, fmt.Errorf("%w: planes do not match %dx%d", ErrCorrupt, m.Width, m.Height)
	}

	grid := level.New(m.Height, m.Width)
	var spawn level.Spawn
	found := false
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			i := row*m.Width + col
			if v := m.Plane0[i]; v > 0 && v < firstNonWall {
				grid.Set(row, col, level.Tile(v))
			}
			if v := m.Plane1[i]; v >= playerStartNorth && v <= playerStartWest && !found {
				spawn = level.Spawn{Row: row, Col: col, Heading: float64(v-playerStartNorth) * 90}
				found = true
			}
		}
	}
	if !found {
		return nil, level.Spawn{}, ErrNoPlayerStart
	}
	return grid, spawn, nil
}
