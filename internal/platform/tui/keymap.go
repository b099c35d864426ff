package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/poemwalk/internal/core"
)

// Terminals report key presses and auto-repeats but never releases.
// A movement key counts as held for a window after each press; the first
// window spans the usual auto-repeat delay, later ones the repeat interval.
const (
	holdInitial = 500 * time.Millisecond
	holdRepeat  = 150 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// the held state of movement keys between ticks.
type KeyMapper struct {
	initialTicks int
	repeatTicks  int
	held         map[core.Action]int // remaining ticks per held action
}

// NewKeyMapper creates a key mapper for the given tick rate.
func NewKeyMapper(tickRate int) *KeyMapper {
	if tickRate <= 0 {
		tickRate = core.ReferenceTickRate
	}
	toTicks := func(d time.Duration) int {
		return max(1, int(d*time.Duration(tickRate)/time.Second))
	}
	return &KeyMapper{
		initialTicks: toTicks(holdInitial),
		repeatTicks:  toTicks(holdRepeat),
		held:         make(map[core.Action]int),
	}
}

// MapKey translates a key message to actions.
// Returns the actions (possibly none) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	case "w", "k", "up":
		return []core.Action{core.ActionUp}, false
	case "s", "j", "down":
		return []core.Action{core.ActionDown}, false
	case "a", "h", "left":
		return []core.Action{core.ActionLeft}, false
	case "d", "l", "right":
		return []core.Action{core.ActionRight}, false
	case "z":
		return []core.Action{core.ActionInteract}, false
	case "enter", " ":
		return []core.Action{core.ActionStart, core.ActionInteract}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	case "m":
		return []core.Action{core.ActionMute}, false
	case "+", "=":
		return []core.Action{core.ActionVolumeUp}, false
	case "-", "_":
		return []core.Action{core.ActionVolumeDown}, false
	}
	return nil, false
}

// MapKeyToFrame records a key message in an input frame.
// Movement keys also start or refresh their hold window.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Press(a)
		if isMovement(a) {
			km.hold(a)
		}
	}
	return isQuit
}

func (km *KeyMapper) hold(a core.Action) {
	// reversing direction drops the old key at once
	delete(km.held, opposite(a))

	if km.held[a] > 0 {
		km.held[a] = km.repeatTicks
		return
	}
	km.held[a] = km.initialTicks
}

// Apply marks every action still inside its hold window as held in frame,
// then advances the windows by one tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	for a, left := range km.held {
		frame.Hold(a)
		if left <= 1 {
			delete(km.held, a)
			continue
		}
		km.held[a] = left - 1
	}
}

// Release forgets all held keys.
func (km *KeyMapper) Release() {
	clear(km.held)
}

// Holding reports whether a is inside its hold window.
func (km *KeyMapper) Holding(a core.Action) bool {
	return km.held[a] > 0
}

func isMovement(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionJournal
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionJournal
	}
	return MenuActionNone
}
