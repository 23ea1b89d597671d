// Package input turns heterogeneous input producers into symbolic events.
package input

// Event is one symbolic key from the fixed input alphabet.
// It carries no payload beyond its identity.
type Event byte

// The fixed input alphabet. KeyQuit is a termination signal, not a
// control key; it is never produced by the pin source.
const (
	KeyW       Event = 'w'
	KeyA       Event = 'a'
	KeyS       Event = 's'
	KeyD       Event = 'd'
	KeyM       Event = 'm'
	KeyX       Event = 'x'
	KeyNeutral Event = '0'
	KeyQuit    Event = 'q'
)

// Keys lists the control keys, excluding KeyQuit.
var Keys = []Event{KeyW, KeyA, KeyS, KeyD, KeyM, KeyX, KeyNeutral}

// ParseEvent maps a line of text to an Event. Unrecognized input is
// not an error, it simply yields no event.
func ParseEvent(s string) (Event, bool) {
	if len(s) != 1 {
		return 0, false
	}
	ev := Event(s[0])
	if ev == KeyQuit {
		return ev, true
	}
	for _, k := range Keys {
		if ev == k {
			return ev, true
		}
	}
	return 0, false
}

// Source is a polled producer of events. Poll performs a bounded
// zero-wait check and returns the events observed since the last
// poll, in a deterministic order. A non-nil error is fatal to the
// control loop.
type Source interface {
	Poll() ([]Event, error)
}
