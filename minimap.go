// minimap.go
package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wolfcast/level"
	"wolfcast/rcmath"
)

const (
	minimapScale  = 2
	minimapMargin = 4
)

var (
	minimapFloor  = color.RGBA{200, 200, 200, 255}
	minimapWall   = color.RGBA{50, 50, 50, 255}
	minimapPlayer = color.RGBA{0, 255, 255, 255}
)

func (g *Game) generateStaticMinimap() {
	grid := g.world.Grid
	g.minimap = ebiten.NewImage(grid.Cols*minimapScale, grid.Rows*minimapScale)
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			tile := grid.TileAt(y, x)
			tileColor := minimapFloor
			if tile.IsWall() {
				tileColor = minimapWall
				if c, ok := level.WallColor(tile); ok && tile != level.Wall {
					tileColor = c
				}
			}
			vector.DrawFilledRect(g.minimap, float32(x*minimapScale), float32(y*minimapScale), float32(minimapScale), float32(minimapScale), tileColor, false)
		}
	}
}

func (g *Game) minimapOrigin() (float32, float32) {
	return float32(g.cfg.Screen.Width - g.minimap.Bounds().Dx() - minimapMargin), minimapMargin
}

func (g *Game) drawDynamicMinimap(screen *ebiten.Image) {
	ox, oy := g.minimapOrigin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(g.minimap, op)

	g.drawMinimapPlayer(screen)
}

func (g *Game) drawMinimapPlayer(screen *ebiten.Image) {
	ox, oy := g.minimapOrigin()
	unit := float64(minimapScale) / g.cfg.Render.BlockSize

	// calculate player position on minimap
	playerX := ox + float32(g.player.Location.X*unit)
	playerY := oy + float32(g.player.Location.Y*unit)

	// heading 0 points up the screen
	angle := math.Atan2(-rcmath.CosDeg(g.player.Heading), rcmath.SinDeg(g.player.Heading))
	triangleSize := float32(minimapScale * 2)

	var path vector.Path
	path.MoveTo(playerX+triangleSize*float32(math.Cos(angle)), playerY+triangleSize*float32(math.Sin(angle)))
	path.LineTo(playerX+triangleSize*float32(math.Cos(angle+2.5)), playerY+triangleSize*float32(math.Sin(angle+2.5)))
	path.LineTo(playerX+triangleSize*float32(math.Cos(angle-2.5)), playerY+triangleSize*float32(math.Sin(angle-2.5)))
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vertices {
		vertices[i].SrcX, vertices[i].SrcY = 1, 1
		vertices[i].ColorR = float32(minimapPlayer.R) / 255
		vertices[i].ColorG = float32(minimapPlayer.G) / 255
		vertices[i].ColorB = float32(minimapPlayer.B) / 255
		vertices[i].ColorA = 1
	}
	screen.DrawTriangles(vertices, indices, whiteSubImage, nil)
}

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()
