package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/runner/internal/infrastructure/config"
)

// ErrUnboundAction is returned when an action has no usable key
var ErrUnboundAction = errors.New("unbound input action")

var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "h": ebiten.KeyH, "j": ebiten.KeyJ,
	"k": ebiten.KeyK, "l": ebiten.KeyL, "q": ebiten.KeyQ, "s": ebiten.KeyS,
	"w": ebiten.KeyW, "x": ebiten.KeyX, "z": ebiten.KeyZ,
	"space":      ebiten.KeySpace,
	"enter":      ebiten.KeyEnter,
	"shift":      ebiten.KeyShift,
	"shiftleft":  ebiten.KeyShiftLeft,
	"shiftright": ebiten.KeyShiftRight,
	"control":    ebiten.KeyControl,
	"arrowleft":  ebiten.KeyArrowLeft,
	"arrowright": ebiten.KeyArrowRight,
	"arrowup":    ebiten.KeyArrowUp,
	"arrowdown":  ebiten.KeyArrowDown,
	"left":       ebiten.KeyArrowLeft,
	"right":      ebiten.KeyArrowRight,
	"up":         ebiten.KeyArrowUp,
	"down":       ebiten.KeyArrowDown,
}

// ParseKey resolves a key name from the tuning file (case-insensitive)
func ParseKey(name string) (ebiten.Key, error) {
	key, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return key, nil
}

// Bindings maps each named action to its keys
type Bindings struct {
	MoveLeft  []ebiten.Key
	MoveRight []ebiten.Key
	Jump      []ebiten.Key
	Brake     []ebiten.Key
}

// NewBindings resolves every action. An action with no keys or an unknown
// key name fails with ErrUnboundAction.
func NewBindings(cfg config.InputConfig) (Bindings, error) {
	var b Bindings
	for _, a := range []struct {
		name  string
		names []string
		keys  *[]ebiten.Key
	}{
		{"moveLeft", cfg.MoveLeft, &b.MoveLeft},
		{"moveRight", cfg.MoveRight, &b.MoveRight},
		{"jump", cfg.Jump, &b.Jump},
		{"brake", cfg.Brake, &b.Brake},
	} {
		if len(a.names) == 0 {
			return Bindings{}, fmt.Errorf("%w: %s has no keys", ErrUnboundAction, a.name)
		}
		for _, n := range a.names {
			key, err := ParseKey(n)
			if err != nil {
				return Bindings{}, fmt.Errorf("%w: %s: %v", ErrUnboundAction, a.name, err)
			}
			*a.keys = append(*a.keys, key)
		}
	}
	return b, nil
}

// InputState holds the action levels read this tick
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
	Brake bool
}

// InputSystem turns key levels into latch events
type InputSystem struct {
	bindings Bindings
	prev     InputState
}

// NewInputSystem resolves the configured bindings
func NewInputSystem(cfg config.InputConfig) (*InputSystem, error) {
	b, err := NewBindings(cfg)
	if err != nil {
		return nil, err
	}
	return &InputSystem{bindings: b}, nil
}

// SetBindings replaces the key bindings. The previous key state is kept so
// a key held across the swap does not read as a fresh press.
func (s *InputSystem) SetBindings(b Bindings) {
	s.bindings = b
}

// GetInput reads the current key state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  anyPressed(s.bindings.MoveLeft),
		Right: anyPressed(s.bindings.MoveRight),
		Jump:  anyPressed(s.bindings.Jump),
		Brake: anyPressed(s.bindings.Brake),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Apply writes the transitions between the previous and current state into latch
func (s *InputSystem) Apply(latch *InputLatch, in InputState) {
	axis := 0.0
	if in.Left {
		axis--
	}
	if in.Right {
		axis++
	}
	latch.SetMove(axis)

	if in.Jump && !s.prev.Jump {
		latch.PressJump()
	} else if !in.Jump && s.prev.Jump {
		latch.ReleaseJump()
	}

	if in.Brake && !s.prev.Brake {
		latch.PressBrake()
	} else if !in.Brake && s.prev.Brake {
		latch.ReleaseBrake()
	}

	s.prev = in
}

// Update polls the keyboard and feeds latch
func (s *InputSystem) Update(latch *InputLatch) {
	s.Apply(latch, s.GetInput())
}
