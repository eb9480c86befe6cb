package w3d

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"wolfcast/texture"
)

// Assets is the content of one game data directory.
type Assets struct {
	Textures []*texture.Texture
	Maps     []GameMap
}

// Load reads VSWAP, MAPHEAD and GAMEMAPS with extension ext (WL1, WL6, ...)
// from dir.
func Load(dir, ext string, pal color.Palette) (*Assets, error) {
	if pal == nil {
		pal = DefaultPalette()
	}
	read := func(name string) ([]byte, error) {
		path := filepath.Join(dir, name+"."+strings.ToUpper(ext))
		log.Printf("Loading %s ...", path)
		return os.ReadFile(path)
	}

	vswap, err := read("VSWAP")
	if err != nil {
		return nil, err
	}
	textures, err := LoadVSwap(vswap, pal)
	if err != nil {
		return nil, err
	}

	mapHead, err := read("MAPHEAD")
	if err != nil {
		return nil, err
	}
	head, err := LoadMapHead(mapHead)
	if err != nil {
		return nil, err
	}

	gameMaps, err := read("GAMEMAPS")
	if err != nil {
		return nil, err
	}
	maps, err := LoadGameMaps(gameMaps, head)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %d textures and %d maps", len(textures), len(maps))
	return &Assets{Textures: textures, Maps: maps}, nil
}

// Map returns map i, reporting a range error instead of panicking.
func (a *Assets) Map(i int) (GameMap, error) {
	if i < 0 || i >= len(a.Maps) {
		return GameMap{}, fmt.Errorf("w3d: map %d out of range [0,%d)", i, len(a.Maps))
	}
	return a.Maps[i], nil
}

// Atlas exposes the textures to the renderer, falling back to fallback for
// walls without a texture pair.
func (a *Assets) Atlas(fallback texture.Pair) *texture.Atlas {
	return texture.NewAtlas(a.Textures, fallback)
}
