package game

import (
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"gadzooks/config"
	"gadzooks/input"
)

func newTestScene(t *testing.T, edit func(*config.Config)) *Scene {
	t.Helper()
	cfg := config.Default()
	if edit != nil {
		edit(cfg)
	}
	s, err := NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestNewSceneDefaults(t *testing.T) {
	s := newTestScene(t, nil)

	if pos := s.Player().State().Position; pos != (geom.Vector2{X: 100, Y: 100}) {
		t.Errorf("start = %+v, want (100,100)", pos)
	}
	if s.store.Len() != 2 {
		t.Errorf("textures = %d, want 2 embedded textures", s.store.Len())
	}
	if !s.MapVisible() || s.Paused() {
		t.Errorf("map visible = %v, paused = %v", s.MapVisible(), s.Paused())
	}
	if b := s.Buffer().Bounds(); b.Dx() != 1440 || b.Dy() != 600 {
		t.Errorf("buffer = %v", b)
	}
}

func TestStepQuit(t *testing.T) {
	s := newTestScene(t, nil)
	if s.Step(input.Held{}) {
		t.Error("idle step should not quit")
	}
	if !s.Step(input.Held{input.Quit: true}) {
		t.Error("quit key should quit")
	}
}

func TestStepTogglesAreEdgeTriggered(t *testing.T) {
	s := newTestScene(t, nil)
	frames := []struct {
		held    input.Held
		paused  bool
		showMap bool
	}{
		{input.Held{input.Pause: true}, true, true},
		{input.Held{input.Pause: true}, true, true},
		{input.Held{}, true, true},
		{input.Held{input.Pause: true, input.ToggleMap: true}, false, false},
		{input.Held{input.ToggleMap: true}, false, false},
		{input.Held{}, false, false},
		{input.Held{input.ToggleMap: true}, false, true},
	}
	for i, f := range frames {
		s.Step(f.held)
		if s.Paused() != f.paused || s.MapVisible() != f.showMap {
			t.Errorf("frame %d: paused=%v map=%v, want %v %v", i, s.Paused(), s.MapVisible(), f.paused, f.showMap)
		}
	}
}

func TestStepMovesUnlessPaused(t *testing.T) {
	s := newTestScene(t, nil)
	forward := input.Held{input.Forward: true}

	s.Step(forward)
	pos := s.Player().State().Position
	if pos.X <= 100 || pos.Y != 100 {
		t.Fatalf("forward step moved to %+v", pos)
	}
	if s.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", s.Ticks())
	}

	s.Step(input.Held{input.Pause: true})
	s.Step(forward)
	if got := s.Player().State().Position; got != pos {
		t.Errorf("paused scene moved the player to %+v", got)
	}
	if s.Ticks() != 1 {
		t.Errorf("ticks advanced while paused: %d", s.Ticks())
	}
}

func TestStepRespawn(t *testing.T) {
	s := newTestScene(t, nil)
	for i := 0; i < 3; i++ {
		s.Step(input.Held{input.Forward: true})
	}
	s.Step(input.Held{input.Respawn: true})
	if pos := s.Player().State().Position; pos != (geom.Vector2{X: 100, Y: 100}) {
		t.Errorf("after respawn = %+v", pos)
	}
}

func TestRenderDrawsLayers(t *testing.T) {
	s := newTestScene(t, nil)
	if err := s.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	buf := s.Buffer()

	view := s.ViewRect()
	centre := view.Min.Add(view.Size().Div(2))
	if got := buf.RGBAAt(centre.X, centre.Y); got == background {
		t.Error("view centre was not drawn")
	}
	if got := buf.RGBAAt(17, 45); got != s.minimap.Wall {
		t.Errorf("minimap corner = %v, want wall colour", got)
	}
	// one world unit per map pixel; the player stands at (100,100)
	if got := buf.RGBAAt(16+100, 44+100); got != s.Player().MapColor {
		t.Errorf("minimap player = %v, want %v", got, s.Player().MapColor)
	}

	s.Step(input.Held{input.ToggleMap: true})
	if err := s.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.RGBAAt(17, 45); got != background {
		t.Errorf("hidden minimap still drawn: %v", got)
	}
}

func TestStatusLineFollowsPlayer(t *testing.T) {
	s := newTestScene(t, nil)
	render := func() string {
		t.Helper()
		if err := s.Render(); err != nil {
			t.Fatalf("Render: %v", err)
		}
		return s.status.Lines()[0]
	}

	if got := render(); got != "x 100  y 100  facing 0°" {
		t.Errorf("initial status = %q", got)
	}

	s.Step(input.Held{input.Forward: true})
	if got := render(); got != "x 103  y 100  facing 0°" {
		t.Errorf("after moving = %q", got)
	}

	// an idle tick leaves the line alone
	s.status.SetLines("kept")
	s.Step(input.Held{})
	if got := render(); got != "kept" {
		t.Errorf("idle tick rebuilt the status to %q", got)
	}

	s.Step(input.Held{input.Pause: true})
	if got := render(); got != "x 103  y 100  facing 0°  [paused]" {
		t.Errorf("paused status = %q", got)
	}

	s.SetPaused(false)
	s.Respawn()
	if got := render(); got != "x 100  y 100  facing 0°" {
		t.Errorf("after respawn = %q", got)
	}
}

func TestNewSceneFromImage(t *testing.T) {
	s := newTestScene(t, func(c *config.Config) {
		c.Map.Image = "levels/gadzooks.png"
	})
	if pos := s.Player().State().Position; pos != (geom.Vector2{X: 96, Y: 96}) {
		t.Errorf("start = %+v, want the spawn cell centre", pos)
	}
	if got := s.Grid().At(5, 5).Texture; got != "stone" {
		t.Errorf("palette texture = %q, want stone", got)
	}
}

func TestNewSceneErrors(t *testing.T) {
	cases := []struct {
		name string
		edit func(*config.Config)
	}{
		{"start inside a wall", func(c *config.Config) { c.Player.X, c.Player.Y = 10, 10 }},
		{"missing level image", func(c *config.Config) { c.Map.Image = "levels/none.png" }},
		{"bad palette colour", func(c *config.Config) {
			c.Map.Image = "levels/gadzooks.png"
			c.Map.Palette = map[string]string{"zz": "stone"}
		}},
		{"bad ceiling colour", func(c *config.Config) { c.View.Ceiling = "blue" }},
		{"ragged rows", func(c *config.Config) { c.Map.Rows = []string{"111", "11"} }},
	}
	for _, c := range cases {
		cfg := config.Default()
		c.edit(cfg)
		if _, err := NewScene(cfg); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}
