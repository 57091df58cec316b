package config

import (
	"errors"
	"fmt"
	"image"
	"math"

	log "github.com/sirupsen/logrus"
)

var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks every value the game cannot run without.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	}

	window := image.Rect(0, 0, c.Window.Width, c.Window.Height)
	view := c.View.Rect()
	if view.Empty() || !view.In(window) {
		return invalid("view %v must lie inside the %dx%d window", view, c.Window.Width, c.Window.Height)
	}
	if c.View.Resolution <= 0 || c.View.Resolution > c.View.Width {
		return invalid("view resolution %d must be in 1..%d", c.View.Resolution, c.View.Width)
	}
	if c.View.FOV <= 0 || c.View.FOV >= 180 {
		return invalid("view fov %v must be in (0, 180) degrees", c.View.FOV)
	}
	if c.View.MaxDepth < 1 {
		return invalid("view max_depth %d < 1", c.View.MaxDepth)
	}
	if c.View.Shade < 0 || c.View.Shade > 1 {
		return invalid("view shade %v must be in [0, 1]", c.View.Shade)
	}

	if c.Minimap.Visible && c.Minimap.Rect().Empty() {
		return invalid("minimap %v is empty", c.Minimap.Rect())
	}

	if c.TPS <= 0 {
		return invalid("tps %d <= 0", c.TPS)
	}

	if c.Map.CellSize <= 0 {
		return invalid("map cell_size %v <= 0", c.Map.CellSize)
	}
	if len(c.Map.Rows) == 0 && c.Map.Image == "" {
		return invalid("map needs rows or an image")
	}

	if c.Player.TurnRate <= 0 || c.Player.Speed <= 0 {
		return invalid("player turn_rate and speed must be positive")
	}
	if _, speed := c.Player.PerTick(c.TPS); c.Player.CollisionGap < speed {
		return invalid("player collision_gap %v is smaller than one step (%v)", c.Player.CollisionGap, speed)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log level: %v", err)
	}
	return nil
}

func (v ViewConfig) Rect() image.Rectangle {
	return image.Rect(v.X, v.Y, v.X+v.Width, v.Y+v.Height)
}

// FOVRadians converts the configured field of view.
func (v ViewConfig) FOVRadians() float64 {
	return v.FOV * math.Pi / 180
}

func (m MinimapConfig) Rect() image.Rectangle {
	return image.Rect(m.X, m.Y, m.X+m.Width, m.Y+m.Height)
}

// PerTick converts the per-second turn rate (degrees) and speed to one tick at tps
// ticks per second, returning radians and world units.
func (p PlayerConfig) PerTick(tps int) (turn, speed float64) {
	return p.TurnRate * math.Pi / 180 / float64(tps), p.Speed / float64(tps)
}

func (p PlayerConfig) AngleRadians() float64 {
	return p.Angle * math.Pi / 180
}
