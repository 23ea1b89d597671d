package input

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/golang/glog"

	fx "github.com/henkwiedig/msposd-remote/pkg/framework"
)

// LineSource produces events from lines of text, one key per line.
// Reading happens on a background goroutine so Poll never waits on
// the underlying reader.
type LineSource struct {
	in io.Reader
	ch chan Event
}

// NewLineSource creates a LineSource over a reader, normally stdin.
func NewLineSource(in io.Reader) *LineSource {
	return &LineSource{in: in, ch: make(chan Event, 4)}
}

// Name implements Named.
func (s *LineSource) Name() string {
	return "line-input"
}

// Run implements Runnable. It returns when the reader ends or the
// context is canceled; a read blocked on a terminal is abandoned on
// cancel rather than waited for.
func (s *LineSource) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	return fx.RunWithContextCancel(ctx, nil, func() error {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			ev, ok := ParseEvent(line)
			if !ok {
				glog.V(1).Infof("ignored input %q", line)
				continue
			}
			select {
			case s.ch <- ev:
			default:
				glog.Warningf("input %q dropped, queue full", line)
			}
		}
		return scanner.Err()
	})
}

// Poll implements Source. At most one line is consumed per tick.
func (s *LineSource) Poll() ([]Event, error) {
	select {
	case ev := <-s.ch:
		return []Event{ev}, nil
	default:
		return nil, nil
	}
}
