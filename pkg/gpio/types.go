// Package gpio reads momentary buttons wired to board pins.
package gpio

import "io"

// Reader represents a set of opened input pins.
type Reader interface {
	io.Closer
	// Pins returns the board pin numbers in the order they were opened.
	Pins() []int
	// ReadAll samples every opened pin and returns the logical level
	// (0 or 1) keyed by board pin number.
	ReadAll() (map[int]int, error)
}
