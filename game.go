package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"gadzooks/config"
	"gadzooks/game"
)

// Game hosts a scene in an ebiten window. The scene renders into its own buffer,
// which is copied to the screen each frame.
type Game struct {
	scene *game.Scene
	keys  *Keyboard
	menu  *PauseMenu

	screenWidth  int
	screenHeight int
	fullscreen   bool
	vsync        bool

	crosshairs bool
	debug      bool
	quit       bool
}

func NewGame(cfg *config.Config, scene *game.Scene) (*Game, error) {
	g := &Game{
		scene:      scene,
		keys:       NewKeyboard(),
		crosshairs: cfg.View.Crosshair,
	}

	menu, err := NewPauseMenu(
		func() { g.scene.SetPaused(false) },
		func() { g.quit = true },
	)
	if err != nil {
		return nil, err
	}
	g.menu = menu

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)
	g.setResolution(cfg.Window.Width, cfg.Window.Height)
	g.setFullscreen(cfg.Window.Fullscreen)
	g.setVsyncEnabled(cfg.Window.VSync)

	return g, nil
}

func (g *Game) Run() {
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game stopped")
	}
}

// Layout keeps the logical screen at the scene buffer size so the buffer can be
// written to it pixel for pixel; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.scene.Buffer().Bounds()
	return b.Dx(), b.Dy()
}

// Update is called every tick (1/TPS seconds).
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		g.setFullscreen(!g.fullscreen)
	}

	if g.quit || g.scene.Step(g.keys) {
		log.Info("quit requested")
		return ebiten.Termination
	}

	if g.scene.Paused() {
		g.menu.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.scene.Render(); err != nil {
		log.WithError(err).Error("frame render failed")
		return
	}
	screen.WritePixels(g.scene.Buffer().Pix)

	if g.crosshairs {
		drawCrosshairs(screen, g.scene.ViewRect())
	}
	if g.scene.Paused() {
		g.menu.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f  FPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS()), 10, 10)
	}
}

func (g *Game) setFullscreen(fullscreen bool) {
	g.fullscreen = fullscreen
	ebiten.SetFullscreen(fullscreen)
}

func (g *Game) setResolution(screenWidth, screenHeight int) {
	g.screenWidth, g.screenHeight = screenWidth, screenHeight
	ebiten.SetWindowSize(screenWidth, screenHeight)
}

func (g *Game) setVsyncEnabled(enableVsync bool) {
	g.vsync = enableVsync
	ebiten.SetVsyncEnabled(enableVsync)
}
