package world

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"wolfcast/config"
	"wolfcast/level"
)

func TestLoadDemo(t *testing.T) {
	cfg := config.Default()
	cfg.Level.Rows, cfg.Level.Cols = 9, 11
	w, err := Load(&cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Grid.Rows != 9 || w.Grid.Cols != 11 || w.Spawn != (level.Spawn{Row: 4, Col: 5}) {
		t.Fatalf("world = %dx%d spawn %+v", w.Grid.Rows, w.Grid.Cols, w.Spawn)
	}
	if pair := w.Textures.WallPair(level.Wall); pair.Light == nil || pair.Light.Size != 64 {
		t.Fatalf("wall pair = %+v", pair)
	}
}

func writeMap(t *testing.T) string {
	t.Helper()
	black := color.RGBA{0, 0, 0, 255}
	red := color.RGBA{255, 0, 0, 255}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, black)
		}
	}
	img.SetRGBA(1, 1, level.ColorSpawn)
	img.SetRGBA(2, 1, level.ColorEmpty)
	img.SetRGBA(1, 2, level.ColorEmpty)
	img.SetRGBA(2, 2, level.ColorEmpty)
	img.SetRGBA(3, 1, red)

	path := filepath.Join(t.TempDir(), "map.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	cfg := config.Default()
	cfg.Level.Source = config.SourceImage
	cfg.Level.Path = writeMap(t)
	cfg.Render.TextureSize = 8

	w, err := Load(&cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Spawn.Row != 1 || w.Spawn.Col != 1 {
		t.Errorf("spawn = %+v", w.Spawn)
	}
	if w.Grid.TileAt(1, 3) != 2 {
		t.Fatalf("tile (1, 3) = %d, want red wall 2", w.Grid.TileAt(1, 3))
	}

	pair := w.Textures.WallPair(2)
	if got := pair.Light.At(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("red light = %v", got)
	}
	if got := pair.Dark.At(3, 3); got != (color.RGBA{170, 0, 0, 255}) {
		t.Errorf("red dark = %v", got)
	}
}

func writeTexture(t *testing.T, c color.RGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, c.A})
		}
	}
	path := filepath.Join(t.TempDir(), "wall.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWallTexture(t *testing.T) {
	green := color.RGBA{0, 0xFF, 0, 0xFF}
	cfg := config.Default()
	cfg.Level.Rows, cfg.Level.Cols = 5, 5
	cfg.Level.WallTexture = writeTexture(t, green)

	w, err := Load(&cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pair := w.Textures.WallPair(level.Wall)
	if pair.Light.Size != 4 || pair.Light.At(2, 3) != green {
		t.Fatalf("light = size %d, %v", pair.Light.Size, pair.Light.At(2, 3))
	}
	if got := pair.Dark.At(2, 3); got != (color.RGBA{0, 0xAA, 0, 0xFF}) {
		t.Fatalf("dark = %v", got)
	}

	cfg.Level.WallTexture = filepath.Join(t.TempDir(), "missing.png")
	if _, err := Load(&cfg); err == nil {
		t.Fatal("missing wall texture should fail")
	}
}

func TestLoadErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Level.Source = config.SourceImage
	cfg.Level.Path = filepath.Join(t.TempDir(), "missing.png")
	if _, err := Load(&cfg); err == nil {
		t.Error("missing image should fail")
	}

	cfg.Level.Source = config.SourceW3D
	cfg.Level.Path = t.TempDir()
	if _, err := Load(&cfg); err == nil {
		t.Error("empty data directory should fail")
	}

	cfg.Level.Source = "doom"
	if _, err := Load(&cfg); err == nil {
		t.Error("unknown source should fail")
	}
}
