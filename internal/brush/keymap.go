package brush

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"falling-sand/internal/sims/sand"
)

// ActionKind says what a key press did.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelect
	ActionGrow
	ActionShrink
	ActionReset
)

// Action is the outcome of HandleKey. Element is set for ActionSelect.
type Action struct {
	Kind    ActionKind
	Element sand.Element
}

// Command names accepted by Keymap.Bind besides element names.
const (
	CommandGrow   = "grow"
	CommandShrink = "shrink"
	CommandReset  = "reset"
)

// Keymap translates typed characters into painter actions. Characters with
// no binding select the fallback element.
type Keymap struct {
	elements map[rune]sand.Element
	commands map[rune]ActionKind
	fallback sand.Element
	// unbound keys are ignored when noFallback is set
	noFallback bool
}

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		elements: map[rune]sand.Element{
			'q': sand.Sand,
			'w': sand.Water,
			'e': sand.Stone,
			'r': sand.Magic,
			't': sand.Nothing,
			'y': sand.Fire,
			'm': sand.Maze,
			'g': sand.Steam,
			'p': sand.Spout,
		},
		commands: map[rune]ActionKind{
			'[': ActionShrink,
			']': ActionGrow,
			'z': ActionReset,
		},
		fallback: sand.Stone,
	}
}

// Bind maps a single-character key to an element name or command.
func (k *Keymap) Bind(key, target string) error {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return fmt.Errorf("key %q: must be a single character", key)
	}
	delete(k.elements, r)
	delete(k.commands, r)
	switch strings.ToLower(target) {
	case CommandGrow:
		k.commands[r] = ActionGrow
	case CommandShrink:
		k.commands[r] = ActionShrink
	case CommandReset:
		k.commands[r] = ActionReset
	default:
		e, ok := sand.ByName(target)
		if !ok {
			return fmt.Errorf("key %q: unknown element or command %q", key, target)
		}
		k.elements[r] = e
	}
	return nil
}

// SetFallback sets the element selected by unbound keys.
func (k *Keymap) SetFallback(e sand.Element) {
	k.fallback = e
	k.noFallback = false
}

// ClearFallback makes unbound keys do nothing.
func (k *Keymap) ClearFallback() { k.noFallback = true }

// Lookup resolves a key without touching any painter.
func (k *Keymap) Lookup(key rune) Action {
	if kind, ok := k.commands[key]; ok {
		return Action{Kind: kind}
	}
	if e, ok := k.elements[key]; ok {
		return Action{Kind: ActionSelect, Element: e}
	}
	if k.noFallback {
		return Action{}
	}
	return Action{Kind: ActionSelect, Element: k.fallback}
}

// HandleKey applies a typed character to the painter. Reset is returned to
// the caller, which owns the grid.
func (p *Painter) HandleKey(k *Keymap, key rune) Action {
	a := k.Lookup(key)
	switch a.Kind {
	case ActionSelect:
		p.Select(a.Element)
	case ActionGrow:
		p.Grow()
	case ActionShrink:
		p.Shrink()
	}
	return a
}
