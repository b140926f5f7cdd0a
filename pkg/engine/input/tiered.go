package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionRotateLeft
	ActionRotateRight
	ActionMoveForward
	ActionMoveBack

	// Meta / UI
	ActionTogglePause
	ActionReset
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑independent key name (e.g. "w", "arrow_up", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Every backend delivers at most one key per poll, so each RawInput is already
// debounced; the type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// Source is a non-blocking key stream. Poll returns false when no key is pending.
type Source interface {
	Poll() (RawInput, bool)
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Turning
	"a":           ActionRotateLeft,
	"arrow_left":  ActionRotateLeft,
	"d":           ActionRotateRight,
	"arrow_right": ActionRotateRight,

	// Walking
	"w":          ActionMoveForward,
	"arrow_up":   ActionMoveForward,
	"s":          ActionMoveBack,
	"arrow_down": ActionMoveBack,

	"p": ActionTogglePause,
	"r": ActionReset,

	// Quit
	"escape": ActionQuit,
	"q":      ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// PollIntent polls src once and maps the result through all input layers.
// It returns ActionNone when no key is pending or the key is not bound.
func PollIntent(src Source) Intent {
	raw, ok := src.Poll()
	if !ok {
		return Intent{Action: ActionNone}
	}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionRotateLeft:
		return "Rotate Left"
	case ActionRotateRight:
		return "Rotate Right"
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBack:
		return "Move Back"
	case ActionTogglePause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// String implements fmt.Stringer
func (a Action) String() string {
	return ActionName(a)
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so the help line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
