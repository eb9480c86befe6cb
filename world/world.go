// Package world assembles the grid, spawn and wall textures selected by the
// configuration.
package world

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"wolfcast/config"
	"wolfcast/level"
	"wolfcast/texture"
	"wolfcast/w3d"
)

type World struct {
	Name     string
	Grid     *level.Map
	Spawn    level.Spawn
	Textures *texture.Atlas
}

// Load builds the world named by cfg.Level and checks that its spawn stands
// on open floor.
func Load(cfg *config.Config) (*World, error) {
	w, err := load(cfg)
	if err != nil {
		return nil, err
	}
	if err := w.Grid.CheckSpawn(w.Spawn); err != nil {
		return nil, fmt.Errorf("world: %s: %w", w.Name, err)
	}
	log.Printf("Loaded %s (%dx%d, %d textures)", w.Name, w.Grid.Rows, w.Grid.Cols, w.Textures.Len())
	return w, nil
}

func load(cfg *config.Config) (*World, error) {
	size := cfg.Render.TextureSize
	switch cfg.Level.Source {
	case config.SourceDemo:
		wall, err := wallPair(cfg.Level.WallTexture, size)
		if err != nil {
			return nil, err
		}
		grid, spawn := level.Room(cfg.Level.Rows, cfg.Level.Cols)
		return &World{
			Name:     fmt.Sprintf("demo room %dx%d", grid.Rows, grid.Cols),
			Grid:     grid,
			Spawn:    spawn,
			Textures: texture.NewAtlas([]*texture.Texture{wall.Light, wall.Dark}, wall),
		}, nil

	case config.SourceImage:
		wall, err := wallPair(cfg.Level.WallTexture, size)
		if err != nil {
			return nil, err
		}
		return loadImage(cfg.Level.Path, size, wall)

	case config.SourceW3D:
		return loadW3D(cfg.Level, size)
	}
	return nil, fmt.Errorf("world: unknown level source %q", cfg.Level.Source)
}

// wallPair is the demo brick, or the image at path with a shaded dark side.
func wallPair(path string, size int) (texture.Pair, error) {
	if path == "" {
		return texture.DemoPair(size), nil
	}
	log.Printf("Loading wall texture %s ...", path)
	file, err := os.Open(path)
	if err != nil {
		return texture.Pair{}, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return texture.Pair{}, fmt.Errorf("world: %s: %w", path, err)
	}
	light, err := texture.FromImage(img)
	if err != nil {
		return texture.Pair{}, fmt.Errorf("world: %s: %w", path, err)
	}
	return texture.Pair{Light: light, Dark: light.Remap(shade)}, nil
}

func loadImage(path string, size int, wall texture.Pair) (*World, error) {
	log.Printf("Loading map %s ...", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	grid, spawn, err := level.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("world: %s: %w", path, err)
	}
	return &World{Name: path, Grid: grid, Spawn: spawn, Textures: colourAtlas(size, wall)}, nil
}

// colourAtlas gives plain walls the wall pair and every other map colour a
// solid texture of that colour.
func colourAtlas(size int, wall texture.Pair) *texture.Atlas {
	tiles := level.WallTiles()
	textures := make([]*texture.Texture, 2*int(tiles[len(tiles)-1]))
	for _, t := range tiles {
		i := 2 * (int(t) - 1)
		if t == level.Wall {
			textures[i], textures[i+1] = wall.Light, wall.Dark
			continue
		}
		c, _ := level.WallColor(t)
		textures[i], textures[i+1] = texture.Solid(size, c), texture.Solid(size, shade(c))
	}
	return texture.NewAtlas(textures, wall)
}

// shade darkens c the way the dark wall variants are darkened: 0xFF to 0xAA.
func shade(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 3 * 2, c.G / 3 * 2, c.B / 3 * 2, c.A}
}

func loadW3D(lc config.LevelConfig, size int) (*World, error) {
	var pal color.Palette
	if lc.Palette != "" {
		data, err := os.ReadFile(lc.Palette)
		if err != nil {
			return nil, err
		}
		if pal, err = w3d.LoadPalette(data); err != nil {
			return nil, fmt.Errorf("world: %s: %w", lc.Palette, err)
		}
	}

	assets, err := w3d.Load(lc.Path, lc.Ext, pal)
	if err != nil {
		return nil, err
	}
	gm, err := assets.Map(lc.Index)
	if err != nil {
		return nil, err
	}
	grid, spawn, err := gm.Level()
	if err != nil {
		return nil, fmt.Errorf("world: map %d %q: %w", lc.Index, gm.Name, err)
	}
	return &World{
		Name:     gm.Name,
		Grid:     grid,
		Spawn:    spawn,
		Textures: assets.Atlas(texture.DemoPair(size)),
	}, nil
}
