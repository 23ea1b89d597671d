// Package sh provides the ishell backed interactive front-end.
package sh

import (
	"fmt"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	fx "github.com/henkwiedig/msposd-remote/pkg/framework"
	"github.com/henkwiedig/msposd-remote/pkg/input"
	"github.com/henkwiedig/msposd-remote/pkg/remote"
	"github.com/henkwiedig/msposd-remote/pkg/transport"
)

// Shell drives the sequencer loop from interactive commands. Each
// key command posts the event to the loop, so the frame bursts go
// through exactly the same sequencer path as the polled sources.
type Shell struct {
	Shell *ishell.Shell
	Loop  *fx.Loop
}

// New creates a shell wired to a control loop.
func New(loop *fx.Loop, keymap remote.Keymap) *Shell {
	s := &Shell{Shell: ishell.New(), Loop: loop}
	s.Shell.SetPrompt("msp> ")
	for _, key := range input.Keys {
		key := key
		cmd := &ishell.Cmd{
			Name: string(rune(key)),
			Help: helpFor(key, keymap),
			Func: func(c *ishell.Context) {
				s.Press(key)
			},
		}
		if key == input.KeyNeutral {
			cmd.Aliases = []string{"center"}
		}
		s.Shell.AddCmd(cmd)
	}
	s.Shell.AddCmd(&ishell.Cmd{
		Name:    "quit",
		Aliases: []string{"q"},
		Help:    "stop the control loop and exit",
		Func: func(c *ishell.Context) {
			s.Press(input.KeyQuit)
			c.Stop()
		},
	})
	return s
}

func helpFor(key input.Event, keymap remote.Keymap) string {
	return fmt.Sprintf("send sticks %v", keymap[key])
}

// Press posts one key event and wakes the loop up so the burst goes
// out without waiting for the next tick.
func (s *Shell) Press(ev input.Event) {
	s.Loop.PostMessage(ev)
	s.Loop.TriggerNext()
}

// Run runs the interactive shell until quit or EOF.
func (s *Shell) Run() {
	s.Shell.Println("MSP remote shell. Keys: w a s d m x 0, 'quit' to exit.")
	s.Shell.Run()
}

// Main builds sender, sequencer and loop from the config and runs
// the shell as the only input source.
func Main() {
	conf := remote.NewConfig()
	defer glog.Flush()

	rcCmd, err := conf.RCCommandByte()
	if err != nil {
		glog.Exitf("fatal: %v", err)
	}
	sender, err := transport.DialUDP(conf.Target)
	if err != nil {
		glog.Exitf("fatal: %v", err)
	}
	defer sender.Close()

	seq := remote.NewSequencer(sender, remote.DefaultKeymap(), rcCmd)
	loop := fx.NewLoop()
	loop.Interval = conf.Interval
	loop.Add(remote.NewController(seq))

	runner := fx.NewRunner().HandleSignals()
	runner.Go(remote.NewSession(loop, sender))

	s := New(loop, remote.DefaultKeymap())
	s.Run()

	// the shell may exit on EOF without a quit command
	s.Press(input.KeyQuit)
	if err := runner.Wait(); err != nil {
		glog.Exitf("fatal: %v", err)
	}
}
