package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wolfcast/model"
)

func (g *Game) handleInput() {
	// if p, pause game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	// F and T switch the distance and wall modes
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.switchModes(g.cfg.SwitchDistanceMode)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.switchModes(g.cfg.SwitchWallMode)
	}

	// if escape, exit game
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.quit = true
	}

	if g.paused {
		g.input = model.InputState{}
		return
	}
	g.input = pollInput()
}

func pollInput() model.InputState {
	return model.InputState{
		MoveForward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		MoveBackward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		TurnLeft:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
	}
}
