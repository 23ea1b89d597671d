package input

import (
	"github.com/golang/glog"

	"github.com/henkwiedig/msposd-remote/pkg/gpio"
)

// PinSource produces events from rising edges on momentary buttons.
// The previous sample of every pin is retained across polls; only a
// 0 to 1 transition fires an event. A held button never re-fires,
// which is the debounce for the full command burst downstream.
type PinSource struct {
	reader  gpio.Reader
	mapping map[int]Event
	pins    []int
	last    map[int]int
}

// NewPinSource creates a PinSource over an opened reader. Pins
// without a mapping entry are sampled but never fire.
func NewPinSource(reader gpio.Reader, mapping map[int]Event) *PinSource {
	s := &PinSource{
		reader:  reader,
		mapping: mapping,
		pins:    reader.Pins(),
		last:    make(map[int]int),
	}
	for _, pin := range s.pins {
		s.last[pin] = 0
	}
	return s
}

// Poll implements Source. Events are returned in pin open order.
// A read failure is fatal and propagates.
func (s *PinSource) Poll() ([]Event, error) {
	states, err := s.reader.ReadAll()
	if err != nil {
		return nil, err
	}
	var events []Event
	for _, pin := range s.pins {
		if states[pin] == 1 && s.last[pin] == 0 {
			if ev, ok := s.mapping[pin]; ok {
				glog.Infof("PIN_%d pressed, key '%c'", pin, ev)
				events = append(events, ev)
			}
		}
		s.last[pin] = states[pin]
	}
	return events, nil
}
