// ui.go
package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawUI lists the controls while the game is paused.
func (g *Game) drawUI(screen *ebiten.Image) {
	if !g.paused {
		return
	}
	h := g.cfg.Screen.Height
	ebitenutil.DebugPrintAt(screen, "W/S or arrows: move, A/D: turn", 4, h-64)
	ebitenutil.DebugPrintAt(screen, "F: fisheye, T: flat walls", 4, h-48)
	ebitenutil.DebugPrintAt(screen, "P to resume", 4, h-32)
	ebitenutil.DebugPrintAt(screen, "ESC to exit", 4, h-16)
}
