package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"wolfcast/config"
	"wolfcast/model"
	"wolfcast/raster"
	"wolfcast/raycast"
	"wolfcast/world"
)

// main game object
type Game struct {
	cfg    *config.Config
	paused bool
	quit   bool

	world    *world.World
	renderer *raycast.Renderer
	motion   model.Motion

	player model.PlayerState
	input  model.InputState

	// frame is rendered on the CPU and uploaded to scene every Draw
	frame          *raster.Frame
	scene          *ebiten.Image
	hud            *raster.HUD
	ceiling, floor color.RGBA

	minimap *ebiten.Image

	// last invariant error, so a stuck viewer logs once instead of every frame
	lastErr string
}

// NewGame builds the game from its own copy of cfg.
func NewGame(cfg *config.Config) (*Game, error) {
	log.Printf("Initializing Game")

	cfg, err := cfg.Clone()
	if err != nil {
		return nil, err
	}
	w, err := world.Load(cfg)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	renderer, err := raycast.NewRenderer(opts)
	if err != nil {
		return nil, err
	}
	ceiling, floor, err := cfg.Background()
	if err != nil {
		return nil, err
	}
	hud, err := raster.NewHUD(8)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		world:    w,
		renderer: renderer,
		motion:   cfg.Motion(),
		player:   w.Spawn.State(cfg.Render.BlockSize),
		frame:    raster.NewFrame(cfg.Screen.Width, cfg.Screen.Height),
		scene:    ebiten.NewImage(cfg.Screen.Width, cfg.Screen.Height),
		hud:      hud,
		ceiling:  ceiling,
		floor:    floor,
	}
	if cfg.Window.Minimap {
		g.generateStaticMinimap()
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(cfg.Screen.Width)*cfg.Window.Scale), int(float64(cfg.Screen.Height)*cfg.Window.Scale))
	ebiten.SetTPS(cfg.Window.TPS)
	return g, nil
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() {
	g.paused = false

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// Layout returns the fixed render resolution; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Update advances the world by one frame of input.
func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}

	if !g.paused {
		g.player = model.Update(g.player, g.input, g.motion)
	}
	return nil
}

// Draw renders the player's view. A frame that breaks a ray caster invariant
// is skipped and the previous frame stays on screen.
func (g *Game) Draw(screen *ebiten.Image) {
	cmds, err := g.renderer.RenderFrame(g.world.Grid, g.world.Textures, g.player)
	if err != nil {
		if msg := err.Error(); msg != g.lastErr {
			log.Printf("skipping frame at %+v: %v", g.player, err)
			g.lastErr = msg
		}
	} else {
		g.lastErr = ""
		g.frame.FillBackground(g.ceiling, g.floor)
		g.frame.DrawAll(cmds)
		if err := g.hud.Draw(g.frame, g.hudLines(), color.White); err != nil {
			log.Printf("hud: %v", err)
		}
		g.scene.WritePixels(g.frame.Pix())
	}

	screen.DrawImage(g.scene, nil)

	if g.minimap != nil {
		g.drawDynamicMinimap(screen)
	}
	g.drawUI(screen)
}

// switchModes swaps in the settings returned by next and a renderer built
// from them. The old settings stay in use if next fails.
func (g *Game) switchModes(next func() (*config.Config, error)) {
	cfg, err := next()
	if err != nil {
		log.Printf("switch modes: %v", err)
		return
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		log.Printf("switch modes: %v", err)
		return
	}
	renderer, err := raycast.NewRenderer(opts)
	if err != nil {
		log.Printf("switch modes: %v", err)
		return
	}
	g.cfg, g.renderer, g.lastErr = cfg, renderer, ""
	log.Printf("render modes: %v %v", opts.Distance, opts.Walls)
}

func (g *Game) hudLines() []string {
	lines := make([]string, 0, len(g.cfg.Window.HUD)+1)
	for _, item := range g.cfg.Window.HUD {
		switch item {
		case config.HUDFPS:
			lines = append(lines, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()))
		case config.HUDPosition:
			lines = append(lines, fmt.Sprintf("x %.1f y %.1f", g.player.Location.X, g.player.Location.Y))
		case config.HUDHeading:
			lines = append(lines, fmt.Sprintf("heading %.0f", g.player.Heading))
		case config.HUDModes:
			opts := g.renderer.Options()
			lines = append(lines, fmt.Sprintf("%v %v", opts.Distance, opts.Walls))
		}
	}
	if g.paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}
