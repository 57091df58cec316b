package model

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"gadzooks/input"
	"gadzooks/level"
	"gadzooks/raycast"
)

// State is where the player stands and looks. Delta is the per-tick forward step.
type State struct {
	Position geom.Vector2
	Angle    float64
	Delta    geom.Vector2
}

// NewState builds a state facing angle with the forward step for speed.
func NewState(pos geom.Vector2, angle, speed float64) State {
	s := State{Position: pos, Angle: raycast.Normalize(angle)}
	s.Delta = delta(s.Angle, speed)
	return s
}

func delta(angle, speed float64) geom.Vector2 {
	return geom.Vector2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}

// Settings are per tick: radians per turn step, world units per move step and how
// far ahead of the player walls are probed.
type Settings struct {
	TurnRate     float64
	Speed        float64
	CollisionGap float64
}

// PlayerColor marks the player on the map view.
var PlayerColor = color.RGBA{0, 255, 255, 255}

type Player struct {
	*Entity
	// Moved reports whether the last Update, Turn, Move or SetState changed the
	// position or angle.
	Moved bool

	grid     *level.Grid
	state    State
	settings Settings
}

func NewPlayer(ids *IDSource, grid *level.Grid, start State, s Settings) *Player {
	p := &Player{
		Entity:   NewEntity(ids, PlayerColor),
		grid:     grid,
		settings: s,
	}
	p.SetState(start)
	return p
}

// State returns a copy of the player's state.
func (p *Player) State() State { return p.state }

// SetState places the player, e.g. on respawn. Delta is recomputed from the angle.
func (p *Player) SetState(s State) {
	s.Angle = raycast.Normalize(s.Angle)
	s.Delta = delta(s.Angle, p.settings.Speed)
	p.state = s
	p.Moved = true
}

// Turn rotates by dir turn steps; negative turns left (anticlockwise on screen).
func (p *Player) Turn(dir float64) {
	if dir == 0 {
		return
	}
	p.state.Angle = raycast.Normalize(p.state.Angle + dir*p.settings.TurnRate)
	p.state.Delta = delta(p.state.Angle, p.settings.Speed)
	p.Moved = true
}

// Move steps forward (dir > 0) or backward (dir < 0). Each axis is gated on its
// own, so a blocked axis slides along the wall while the other still moves.
func (p *Player) Move(dir float64) {
	dir = geom.Clamp(dir, -1, 1)
	if dir == 0 {
		return
	}

	dx := p.state.Delta.X * dir
	dy := p.state.Delta.Y * dir
	pos := p.state.Position

	if dx != 0 && p.clear(probe(pos.X, dx, p.settings.CollisionGap), pos.Y) {
		pos.X += dx
	}
	if dy != 0 && p.clear(pos.X, probe(pos.Y, dy, p.settings.CollisionGap)) {
		pos.Y += dy
	}

	if pos != p.state.Position {
		p.state.Position = pos
		p.Moved = true
	}
}

// Update applies one tick of keyboard input. Forward wins over backward and left
// over right; there is no inertia.
func (p *Player) Update(in input.Source) {
	p.Moved = false

	switch {
	case in.IsKeyDown(input.TurnLeft):
		p.Turn(-1)
	case in.IsKeyDown(input.TurnRight):
		p.Turn(1)
	}

	switch {
	case in.IsKeyDown(input.Forward):
		p.Move(1)
	case in.IsKeyDown(input.Backward):
		p.Move(-1)
	}
}
