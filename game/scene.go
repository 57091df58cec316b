// Package game wires the map, textures, player and renderer into a scene that any
// host can step and present.
package game

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"math"
	"os"

	"github.com/harbdog/raycaster-go/geom"
	log "github.com/sirupsen/logrus"

	"gadzooks/assets"
	"gadzooks/config"
	"gadzooks/hud"
	"gadzooks/input"
	"gadzooks/level"
	"gadzooks/model"
	"gadzooks/render"
	"gadzooks/texture"
)

// layer priorities, lowest drawn first
const (
	layerView    = 0
	layerMinimap = 10
	layerStatus  = 20
)

var background = color.RGBA{0, 0, 0, 255}

// Scene owns everything one running game needs. It is not safe for concurrent use;
// hosts call Step and Render from their frame loop only.
type Scene struct {
	cfg *config.Config

	grid      *level.Grid
	store     *texture.Store
	ids       model.IDSource
	player    *model.Player
	start     model.State
	projector *render.Projector
	minimap   *render.Minimap
	status    *hud.Status
	layers    render.Layers
	buf       *render.Buffer

	edges   input.Edges
	paused  bool
	showMap bool
	ticks   uint64

	// statusDirty is set when the status line no longer matches the player
	statusDirty bool
}

// NewScene builds a scene from cfg. Textures and level images are read from
// cfg.Assets, or from the embedded assets when it is empty.
func NewScene(cfg *config.Config) (*Scene, error) {
	fsys := fs.FS(assets.FS)
	if cfg.Assets != "" {
		fsys = os.DirFS(cfg.Assets)
	}

	grid, err := buildGrid(fsys, cfg.Map)
	if err != nil {
		return nil, err
	}

	store := texture.NewStore()
	if failed := store.LoadAll(fsys, cfg.Textures); failed > 0 {
		log.WithField("failed", failed).Warn("some textures fell back to the default")
	}
	for _, ref := range grid.Textures() {
		if !store.Has(ref) {
			log.WithField("texture", ref).Warn("map references an unknown texture")
		}
	}

	start, err := startState(cfg, grid)
	if err != nil {
		return nil, err
	}

	fog, err := level.ParseColor(cfg.View.Ceiling)
	if err != nil {
		return nil, fmt.Errorf("view ceiling: %w", err)
	}
	ground, err := level.ParseColor(cfg.View.Floor)
	if err != nil {
		return nil, fmt.Errorf("view floor: %w", err)
	}
	projector, err := render.NewProjector(render.ProjectorOptions{
		Viewport:    cfg.View.Rect(),
		Resolution:  cfg.View.Resolution,
		FOV:         cfg.View.FOVRadians(),
		MaxDepth:    cfg.View.MaxDepth,
		ShadeFactor: cfg.View.Shade,
		Ceiling:     fog,
		Floor:       ground,
	})
	if err != nil {
		return nil, fmt.Errorf("projector: %w", err)
	}

	status, err := hud.NewStatus(14, color.White, image.Pt(cfg.View.X, 8))
	if err != nil {
		return nil, err
	}

	turn, speed := cfg.Player.PerTick(cfg.TPS)
	s := &Scene{
		cfg:       cfg,
		grid:      grid,
		store:     store,
		start:     start,
		projector: projector,
		minimap:   render.NewMinimap(cfg.Minimap.Rect()),
		status:    status,
		buf:       render.NewBuffer(cfg.Window.Width, cfg.Window.Height),
		showMap:   cfg.Minimap.Visible,

		statusDirty: true,
	}
	s.player = model.NewPlayer(&s.ids, grid, start, model.Settings{
		TurnRate:     turn,
		Speed:        speed,
		CollisionGap: cfg.Player.CollisionGap,
	})

	s.layers.Add(render.DrawFunc(s.drawView), layerView)
	s.layers.Add(render.DrawFunc(s.drawMinimap), layerMinimap)
	s.layers.Add(render.DrawFunc(s.drawStatus), layerStatus)

	w, h := grid.Size()
	log.WithFields(log.Fields{
		"map":      fmt.Sprintf("%dx%d", w, h),
		"textures": store.Len(),
		"player":   start.Position,
	}).Info("scene ready")
	return s, nil
}

func buildGrid(fsys fs.FS, m config.MapConfig) (*level.Grid, error) {
	if m.Image == "" {
		g, err := level.Parse(m.Rows, m.Legend, m.CellSize)
		if err != nil {
			return nil, fmt.Errorf("map rows: %w", err)
		}
		return g, nil
	}

	palette := make(map[color.RGBA]string, len(m.Palette))
	for key, ref := range m.Palette {
		c, err := level.ParseColor(key)
		if err != nil {
			return nil, fmt.Errorf("map palette: %w", err)
		}
		palette[c] = ref
	}

	f, err := fsys.Open(m.Image)
	if err != nil {
		return nil, fmt.Errorf("map image: %w", err)
	}
	defer f.Close()

	g, err := level.Decode(f, palette, m.CellSize)
	if err != nil {
		return nil, fmt.Errorf("map image %s: %w", m.Image, err)
	}
	return g, nil
}

func startState(cfg *config.Config, grid *level.Grid) (model.State, error) {
	pos := geom.Vector2{X: cfg.Player.X, Y: cfg.Player.Y}
	if spawn, ok := grid.Spawn(); ok && cfg.Player.UseSpawn {
		pos = spawn
	}
	if !grid.IsEmpty(grid.WorldToCell(pos.X, pos.Y)) {
		return model.State{}, fmt.Errorf("player start (%v, %v) is not in an empty cell", pos.X, pos.Y)
	}
	_, speed := cfg.Player.PerTick(cfg.TPS)
	return model.NewState(pos, cfg.Player.AngleRadians(), speed), nil
}

// Step advances the scene by one tick and reports whether the player asked to quit.
func (s *Scene) Step(in input.Source) (quit bool) {
	if in.IsKeyDown(input.Quit) {
		return true
	}

	// both edges are sampled every tick so a held key never re-triggers
	pause := s.edges.Pressed(in, input.Pause)
	toggleMap := s.edges.Pressed(in, input.ToggleMap)
	respawn := s.edges.Pressed(in, input.Respawn)

	if pause {
		s.SetPaused(!s.paused)
		log.WithField("paused", s.paused).Debug("pause toggled")
	}
	if toggleMap {
		s.showMap = !s.showMap
	}

	if !s.paused {
		if respawn {
			s.Respawn()
		}
		s.player.Update(in)
		if s.player.Moved {
			s.statusDirty = true
		}
		s.ticks++
	}
	return false
}

// Render draws the current frame into the buffer.
func (s *Scene) Render() error {
	s.buf.Clear(background)
	return s.layers.Draw(s.buf)
}

func (s *Scene) drawView(dst *render.Buffer) error {
	return s.projector.Render(dst, s.player.State(), s.grid, s.store)
}

func (s *Scene) drawMinimap(dst *render.Buffer) error {
	if s.showMap {
		s.minimap.Draw(dst, s.grid, s.player.State(), s.player.MapColor, s.projector.Rays())
	}
	return nil
}

func (s *Scene) drawStatus(dst *render.Buffer) error {
	if s.statusDirty {
		s.statusDirty = false
		s.status.SetLines(s.statusLine())
	}
	return s.status.Draw(dst)
}

func (s *Scene) statusLine() string {
	st := s.player.State()
	deg := st.Angle * 180 / math.Pi
	line := fmt.Sprintf("x %.0f  y %.0f  facing %.0f°", st.Position.X, st.Position.Y, deg)
	if s.paused {
		line += "  [paused]"
	}
	return line
}

// Respawn puts the player back where the scene started.
func (s *Scene) Respawn() {
	s.player.SetState(s.start)
	s.statusDirty = true
}

// SetPaused pauses or resumes the scene from outside the key bindings, such as a
// menu button.
func (s *Scene) SetPaused(paused bool) {
	if s.paused != paused {
		s.paused = paused
		s.statusDirty = true
	}
}

func (s *Scene) Buffer() *render.Buffer    { return s.buf }
func (s *Scene) Player() *model.Player     { return s.player }
func (s *Scene) Grid() *level.Grid         { return s.grid }
func (s *Scene) Paused() bool              { return s.paused }
func (s *Scene) MapVisible() bool          { return s.showMap }
func (s *Scene) Ticks() uint64             { return s.ticks }
func (s *Scene) ViewRect() image.Rectangle { return s.cfg.View.Rect() }
