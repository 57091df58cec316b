package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gadzooks/input"
)

// Keyboard reads game actions from ebiten's keyboard state.
type Keyboard struct {
	bindings map[input.Key][]ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{bindings: map[input.Key][]ebiten.Key{
		input.TurnLeft:  {ebiten.KeyA, ebiten.KeyLeft},
		input.TurnRight: {ebiten.KeyD, ebiten.KeyRight},
		input.Forward:   {ebiten.KeyW, ebiten.KeyUp},
		input.Backward:  {ebiten.KeyS, ebiten.KeyDown},
		input.Quit:      {ebiten.KeyEscape},
		input.Pause:     {ebiten.KeyP},
		input.ToggleMap: {ebiten.KeyTab, ebiten.KeyM},
		input.Respawn:   {ebiten.KeyR},
	}}
}

func (k *Keyboard) IsKeyDown(key input.Key) bool {
	for _, ek := range k.bindings[key] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}
