package remote

import (
	"github.com/golang/glog"

	fx "github.com/henkwiedig/msposd-remote/pkg/framework"
	"github.com/henkwiedig/msposd-remote/pkg/input"
	"github.com/henkwiedig/msposd-remote/pkg/msp"
	"github.com/henkwiedig/msposd-remote/pkg/transport"
)

// State is the sequencer lifecycle state.
type State int

const (
	// Uninitialized means no input has been accepted yet; the
	// initial setup burst has not been sent.
	Uninitialized State = iota
	// Running means the setup burst has been sent. The transition
	// is irreversible for the lifetime of the process.
	Running
)

// initRepeatCount is how many clear/draw pairs the setup burst sends.
const initRepeatCount = 100

// Sequencer converts accepted input events into ordered frame
// bursts. A burst always runs to completion before the next event is
// considered; a send failure aborts the run, it is never retried.
type Sequencer struct {
	sender transport.Sender
	keymap Keymap
	rcCmd  byte
	state  State
}

// NewSequencer creates a Sequencer in the Uninitialized state.
func NewSequencer(sender transport.Sender, keymap Keymap, rcCmd byte) *Sequencer {
	return &Sequencer{sender: sender, keymap: keymap, rcCmd: rcCmd}
}

// State returns the current lifecycle state.
func (s *Sequencer) State() State {
	return s.state
}

// Handle processes one input event. KeyQuit yields ErrStop for a
// clean loop exit with no further frames. Keys outside the keymap
// are silently ignored.
func (s *Sequencer) Handle(ev input.Event) error {
	if ev == input.KeyQuit {
		glog.Info("quit requested")
		return fx.ErrStop
	}
	active, ok := s.keymap.Lookup(ev)
	if !ok {
		glog.V(1).Infof("no mapping for key '%c'", ev)
		return nil
	}
	if s.state == Uninitialized {
		if err := s.sendInitialSetup(); err != nil {
			return err
		}
		s.state = Running
	}
	glog.Infof("key '%c': %v", ev, active)
	return s.sendBurst(active)
}

// sendInitialSetup primes the receiver: initRepeatCount clear/draw
// DisplayPort pairs followed by one status frame. It must complete
// before the first control vector is ever sent.
func (s *Sequencer) sendInitialSetup() error {
	glog.Info("sending initial setup commands")
	for i := 0; i < initRepeatCount; i++ {
		if err := s.send(msp.DirResponse, msp.CmdDisplayPort, []byte{msp.DisplayPortClear}); err != nil {
			return err
		}
		if err := s.send(msp.DirResponse, msp.CmdDisplayPort, []byte{msp.DisplayPortDraw}); err != nil {
			return err
		}
	}
	if err := s.send(msp.DirResponse, msp.CmdStatus, []byte{0}); err != nil {
		return err
	}
	glog.Info("initial setup complete")
	return nil
}

// sendBurst emits the fixed 5-frame command burst. The neutral
// vector directly follows the active one so a discrete key press
// produces a momentary pulse, not a held state.
func (s *Sequencer) sendBurst(active msp.Channels) error {
	if err := s.send(msp.DirResponse, msp.CmdDisplayPort, []byte{msp.DisplayPortRelease}); err != nil {
		return err
	}
	if err := s.send(msp.DirResponse, msp.CmdDisplayPort, []byte{msp.DisplayPortClear}); err != nil {
		return err
	}
	if err := s.send(msp.DirRequest, s.rcCmd, active.Bytes()); err != nil {
		return err
	}
	if err := s.send(msp.DirRequest, s.rcCmd, s.keymap.Neutral().Bytes()); err != nil {
		return err
	}
	return s.send(msp.DirResponse, msp.CmdDisplayPort, []byte{msp.DisplayPortDraw})
}

func (s *Sequencer) send(dir msp.Direction, cmd byte, payload []byte) error {
	f, err := msp.NewFrame(dir, cmd, payload)
	if err != nil {
		return err
	}
	return s.sender.Send(f.Bytes())
}
