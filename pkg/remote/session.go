package remote

import (
	"context"
	"io"

	"github.com/golang/glog"

	fx "github.com/henkwiedig/msposd-remote/pkg/framework"
)

// Session owns the control loop together with the resources it
// drives. The closers are released on every exit path: quit, signal
// cancellation and fatal errors alike.
type Session struct {
	Loop *fx.Loop

	closers []io.Closer
}

// NewSession creates a Session releasing the closers when the loop
// ends, in the given order.
func NewSession(loop *fx.Loop, closers ...io.Closer) *Session {
	return &Session{Loop: loop, closers: closers}
}

// Name implements Named.
func (s *Session) Name() string {
	return "control-loop"
}

// Run implements Runnable. Resource release is best-effort; a close
// failure is logged and never masks the loop's own error.
func (s *Session) Run(ctx context.Context) error {
	err := s.Loop.Run(ctx)
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil {
			glog.Warningf("close failed: %v", cerr)
		}
	}
	return err
}
