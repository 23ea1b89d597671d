package input

import (
	"strings"

	"github.com/golang/glog"

	"github.com/henkwiedig/msposd-remote/pkg/mqtt"
)

// MQTTSource produces events from key symbols published to a broker
// topic, so a remote peer can press keys over the network. Message
// payloads use the same alphabet as the line source; junk payloads
// are a no-op.
type MQTTSource struct {
	ch chan Event
}

// NewMQTTSource subscribes the topic on an already connected queue.
func NewMQTTSource(q *mqtt.Queue, topic string) (*MQTTSource, error) {
	s := &MQTTSource{ch: make(chan Event, 4)}
	err := q.Sub(topic, func(t string, payload []byte) {
		ev, ok := ParseEvent(strings.TrimSpace(string(payload)))
		if !ok {
			glog.V(1).Infof("ignored mqtt input %q on %s", payload, t)
			return
		}
		select {
		case s.ch <- ev:
		default:
			glog.Warningf("mqtt input %q dropped, queue full", payload)
		}
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Poll implements Source. At most one event is consumed per tick.
func (s *MQTTSource) Poll() ([]Event, error) {
	select {
	case ev := <-s.ch:
		return []Event{ev}, nil
	default:
		return nil, nil
	}
}
