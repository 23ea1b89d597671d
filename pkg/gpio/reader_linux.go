//go:build linux

package gpio

import (
	"fmt"

	"github.com/golang/glog"
	gpiocdev "github.com/warthog618/go-gpiocdev"
)

const consumer = "msposd-remote"

type reader struct {
	pins  []int
	lines map[int]*gpiocdev.Line
}

// Open requests the given board pins as inputs. Each pin is resolved
// to a chip and line offset by its board name "PIN_<n>". On any
// failure, lines acquired so far are released before returning.
func Open(pins []int) (Reader, error) {
	r := &reader{lines: make(map[int]*gpiocdev.Line)}
	for _, pin := range pins {
		name := fmt.Sprintf("PIN_%d", pin)
		chip, offset, err := gpiocdev.FindLine(name)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("find line %s: %v", name, err)
		}
		glog.Infof("mapped %s to %s line %d", name, chip, offset)
		line, err := gpiocdev.RequestLine(chip, offset,
			gpiocdev.AsInput, gpiocdev.WithConsumer(consumer))
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("request %s line %d: %v", chip, offset, err)
		}
		r.pins = append(r.pins, pin)
		r.lines[pin] = line
	}
	return r, nil
}

// Pins implements Reader.
func (r *reader) Pins() []int {
	return r.pins
}

// ReadAll implements Reader.
func (r *reader) ReadAll() (map[int]int, error) {
	values := make(map[int]int, len(r.pins))
	for _, pin := range r.pins {
		v, err := r.lines[pin].Value()
		if err != nil {
			return nil, fmt.Errorf("read PIN_%d: %v", pin, err)
		}
		values[pin] = v
	}
	return values, nil
}

// Close implements io.Closer. Safe to call more than once.
func (r *reader) Close() error {
	for pin, line := range r.lines {
		line.Close()
		delete(r.lines, pin)
	}
	return nil
}
