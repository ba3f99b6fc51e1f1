package console

import (
	"github.com/bdwalton/gintendo/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyAdapter binds ebiten's keyboard state to player 1's controller
// port, per the external interface contract: Z, X, Backspace, Return,
// Up, Down, Left, Right map to A, B, Select, Start, Up, Down, Left,
// Right. Player 2 has no keyboard binding; it only moves via whatever a
// future gamepad adapter drives on input.Port2.
type keyAdapter struct {
	bindings map[ebiten.Key]input.Button
}

func newKeyAdapter() *keyAdapter {
	return &keyAdapter{bindings: map[ebiten.Key]input.Button{
		ebiten.KeyZ:         input.A,
		ebiten.KeyX:         input.B,
		ebiten.KeyBackspace: input.Select,
		ebiten.KeyEnter:     input.Start,
		ebiten.KeyUp:        input.Up,
		ebiten.KeyDown:      input.Down,
		ebiten.KeyLeft:      input.Left,
		ebiten.KeyRight:     input.Right,
	}}
}

func (k *keyAdapter) poll(pad *input.Pad) {
	for key, btn := range k.bindings {
		pad.Set(input.Port1, btn, ebiten.IsKeyPressed(key))
	}
}
