package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a user request handled once per Update
type Command int

const (
	// CommandStep runs one extra simulation step
	CommandStep Command = iota
	// CommandPause toggles the fixed-rate stepping
	CommandPause
	// CommandToggleProbes shows or hides the probe overlay
	CommandToggleProbes
	// CommandToggleHUD shows or hides the HUD
	CommandToggleHUD
)

func (c Command) String() string {
	switch c {
	case CommandStep:
		return "step"
	case CommandPause:
		return "pause"
	case CommandToggleProbes:
		return "toggle-probes"
	case CommandToggleHUD:
		return "toggle-hud"
	default:
		return "unknown"
	}
}

// InputProvider defines where the game reads its commands from
type InputProvider interface {
	// Poll returns the commands issued since the previous call
	Poll() []Command
}

// KeyboardInput maps edge-triggered key presses to commands
type KeyboardInput struct {
	bindings map[ebiten.Key]Command
	pending  []Command
}

// NewKeyboardInput creates the default key bindings:
// R steps, P pauses, F1 toggles probes, F2 toggles the HUD.
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		bindings: map[ebiten.Key]Command{
			ebiten.KeyR:  CommandStep,
			ebiten.KeyP:  CommandPause,
			ebiten.KeyF1: CommandToggleProbes,
			ebiten.KeyF2: CommandToggleHUD,
		},
		pending: make([]Command, 0, 4),
	}
}

// Poll returns the commands whose keys were pressed this frame
func (k *KeyboardInput) Poll() []Command {
	k.pending = k.pending[:0]
	for key, cmd := range k.bindings {
		if inpututil.IsKeyJustPressed(key) {
			k.pending = append(k.pending, cmd)
		}
	}
	return k.pending
}
