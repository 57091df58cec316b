// Package input describes the keyboard state the game reads each tick.
package input

import "fmt"

// Key is a game action, not a physical key. Hosts map their own key codes onto it.
type Key int

const (
	TurnLeft Key = iota
	TurnRight
	Forward
	Backward
	Quit
	Pause
	ToggleMap
	Respawn

	keyCount
)

var keyNames = [...]string{
	TurnLeft:  "turn-left",
	TurnRight: "turn-right",
	Forward:   "forward",
	Backward:  "backward",
	Quit:      "quit",
	Pause:     "pause",
	ToggleMap: "toggle-map",
	Respawn:   "respawn",
}

func (k Key) String() string {
	if k >= 0 && k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Source answers whether an action's key is currently held.
type Source interface {
	IsKeyDown(k Key) bool
}

// Held is a fixed key set, used for replays and tests.
type Held map[Key]bool

func (h Held) IsKeyDown(k Key) bool { return h[k] }

// Edges turns held keys into presses: Pressed reports true only on the first tick
// a key is seen down.
type Edges struct {
	prev [keyCount]bool
}

// Pressed must be called once per tick for each key it tracks.
func (e *Edges) Pressed(in Source, k Key) bool {
	down := in.IsKeyDown(k)
	was := e.prev[k]
	e.prev[k] = down
	return down && !was
}
