package model

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"gadzooks/input"
	"gadzooks/level"
	"gadzooks/raycast"
)

var gadzooksRows = []string{
	"11111111",
	"1.1....1",
	"1.1....1",
	"1.1....1",
	"1......1",
	"1....1.1",
	"1......1",
	"11111111",
}

func testGrid(t *testing.T) *level.Grid {
	t.Helper()
	g, err := level.Parse(gadzooksRows, nil, 64)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTurnWraps(t *testing.T) {
	var ids IDSource
	p := NewPlayer(&ids, testGrid(t), NewState(geom.Vector2{X: 100, Y: 100}, 0.05, 3), Settings{TurnRate: 0.1, Speed: 3, CollisionGap: 20})

	p.Turn(-1)
	st := p.State()
	if !near(st.Angle, raycast.TwoPi-0.05) {
		t.Errorf("angle = %v, want %v", st.Angle, raycast.TwoPi-0.05)
	}
	if !near(st.Delta.X, math.Cos(st.Angle)*3) || !near(st.Delta.Y, math.Sin(st.Angle)*3) {
		t.Errorf("delta = %+v not recomputed", st.Delta)
	}

	for i := 0; i < 200; i++ {
		p.Turn(1)
		if a := p.State().Angle; a < 0 || a >= raycast.TwoPi {
			t.Fatalf("angle %v left [0, 2π)", a)
		}
	}
}

func TestMoveOpen(t *testing.T) {
	var ids IDSource
	p := NewPlayer(&ids, testGrid(t), NewState(geom.Vector2{X: 300, Y: 280}, 0, 5), Settings{TurnRate: 0.1, Speed: 5, CollisionGap: 20})

	p.Move(1)
	if pos := p.State().Position; !near(pos.X, 305) || !near(pos.Y, 280) {
		t.Errorf("forward: position = %+v, want (305,280)", pos)
	}
	p.Move(-1)
	if pos := p.State().Position; !near(pos.X, 300) || !near(pos.Y, 280) {
		t.Errorf("backward: position = %+v, want (300,280)", pos)
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	var ids IDSource
	start := geom.Vector2{X: 120, Y: 100}
	p := NewPlayer(&ids, testGrid(t), NewState(start, math.Pi/4, 5), Settings{TurnRate: 0.1, Speed: 5, CollisionGap: 20})

	p.Move(1)
	pos := p.State().Position
	if pos.X != start.X {
		t.Errorf("x moved into the wall column: %v", pos.X)
	}
	if !near(pos.Y, start.Y+5*math.Sin(math.Pi/4)) {
		t.Errorf("y = %v, want %v", pos.Y, start.Y+5*math.Sin(math.Pi/4))
	}
}

func TestMoveBlockedCorner(t *testing.T) {
	var ids IDSource
	// top-left corner of the open room, facing into both walls
	start := geom.Vector2{X: 80, Y: 80}
	p := NewPlayer(&ids, testGrid(t), NewState(start, 5*math.Pi/4, 5), Settings{TurnRate: 0.1, Speed: 5, CollisionGap: 20})

	p.Moved = false
	p.Move(1)
	if got := p.State().Position; got != start {
		t.Errorf("position = %+v, want unchanged %+v", got, start)
	}
	if p.Moved {
		t.Error("blocked move should not mark the player moved")
	}
}

func TestUpdatePriorities(t *testing.T) {
	var ids IDSource
	grid := testGrid(t)
	settings := Settings{TurnRate: 0.1, Speed: 5, CollisionGap: 20}
	start := NewState(geom.Vector2{X: 300, Y: 280}, 1, 5)

	cases := []struct {
		name  string
		held  input.Held
		angle float64
		dx    float64
	}{
		{"idle", input.Held{}, 1, 0},
		{"left wins", input.Held{input.TurnLeft: true, input.TurnRight: true}, 0.9, 0},
		{"right", input.Held{input.TurnRight: true}, 1.1, 0},
		{"forward wins", input.Held{input.Forward: true, input.Backward: true}, 1, 5 * math.Cos(1)},
		{"backward", input.Held{input.Backward: true}, 1, -5 * math.Cos(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlayer(&ids, grid, start, settings)
			p.Update(c.held)
			st := p.State()
			if !near(st.Angle, c.angle) {
				t.Errorf("angle = %v, want %v", st.Angle, c.angle)
			}
			if !near(st.Position.X-start.Position.X, c.dx) {
				t.Errorf("dx = %v, want %v", st.Position.X-start.Position.X, c.dx)
			}
		})
	}
}

func TestSetStateNormalizes(t *testing.T) {
	var ids IDSource
	p := NewPlayer(&ids, testGrid(t), State{Position: geom.Vector2{X: 100, Y: 100}}, Settings{Speed: 2})
	p.SetState(State{Position: geom.Vector2{X: 90, Y: 90}, Angle: -math.Pi / 2})

	st := p.State()
	if !near(st.Angle, 3*math.Pi/2) {
		t.Errorf("angle = %v", st.Angle)
	}
	if !near(st.Delta.Y, -2) {
		t.Errorf("delta = %+v", st.Delta)
	}
}

func TestIDsAreUniquePerSource(t *testing.T) {
	var a, b IDSource
	e1, e2 := NewEntity(&a, ColorNone), NewEntity(&a, ColorNone)
	if e1.ID == e2.ID {
		t.Error("IDs from one source should differ")
	}
	if NewEntity(&b, ColorNone).ID != e1.ID {
		t.Error("independent sources should start from the same first ID")
	}
}
