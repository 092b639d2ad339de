// Package widget composes the pixel appearance of classic beveled
// controls: buttons, checkboxes, toolbars, and their borders. Every
// operation is a deterministic, side-effect-free transformation; the
// same label, color set, and state always yield byte-identical output.
package widget

import (
	"github.com/32bitkid/chrome"
)

// Kind enumerates the button kinds with distinct chrome.
type Kind uint8

const (
	Normal Kind = iota
	Default
	Toolbar
	OptionSet
	Checkbox
	Radio
	Slider
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "Kind(Normal)"
	case Default:
		return "Kind(Default)"
	case Toolbar:
		return "Kind(Toolbar)"
	case OptionSet:
		return "Kind(OptionSet)"
	case Checkbox:
		return "Kind(Checkbox)"
	case Radio:
		return "Kind(Radio)"
	case Slider:
		return "Kind(Slider)"
	}
	return "Kind(UNKNOWN)"
}

// State enumerates widget states. A State is constructed per render
// request and carries no lifecycle beyond the enumeration.
type State uint8

const (
	Unpressed State = iota
	Pressed
	Hover
	Mixed
	Unavailable
)

func (s State) String() string {
	switch s {
	case Unpressed:
		return "State(Unpressed)"
	case Pressed:
		return "State(Pressed)"
	case Hover:
		return "State(Hover)"
	case Mixed:
		return "State(Mixed)"
	case Unavailable:
		return "State(Unavailable)"
	}
	return "State(UNKNOWN)"
}

// checkState rejects kind/state crossings with no defined rendering.
// Hover chrome exists only for toolbar buttons.
func checkState(k Kind, s State) error {
	if k > Slider || s > Unavailable {
		return chrome.UnsupportedStateError{Kind: k.String(), State: s.String()}
	}
	if s == Hover && k != Toolbar {
		return chrome.UnsupportedStateError{Kind: k.String(), State: s.String()}
	}
	return nil
}
