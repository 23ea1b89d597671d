// Package remote drives an MSP receiver from discrete key inputs.
package remote

import (
	"github.com/henkwiedig/msposd-remote/pkg/input"
	"github.com/henkwiedig/msposd-remote/pkg/msp"
)

// Keymap maps a control key to the 4 stick channel values. It is
// loaded once at startup and never mutated at runtime.
type Keymap map[input.Event][4]uint16

// DefaultKeymap returns the built-in WASDMX mapping.
func DefaultKeymap() Keymap {
	return Keymap{
		input.KeyW:       {1500, 2000, 1500, 1500},
		input.KeyA:       {2000, 1500, 1500, 1500},
		input.KeyS:       {1500, 1000, 1500, 1500},
		input.KeyD:       {2000, 1500, 1500, 1500},
		input.KeyM:       {2000, 1000, 1000, 1000},
		input.KeyX:       {1500, 1500, 1000, 1500},
		input.KeyNeutral: {1500, 1500, 1500, 1500},
	}
}

// Lookup extends the 4 stick values of a key to the full 16-channel
// control vector, remaining channels at neutral.
func (m Keymap) Lookup(ev input.Event) (msp.Channels, bool) {
	sticks, ok := m[ev]
	if !ok {
		return msp.Channels{}, false
	}
	return msp.WithSticks(sticks), true
}

// Neutral returns the control vector of the neutral key.
func (m Keymap) Neutral() msp.Channels {
	if ch, ok := m.Lookup(input.KeyNeutral); ok {
		return ch
	}
	return msp.NeutralChannels()
}
