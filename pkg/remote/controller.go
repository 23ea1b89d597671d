package remote

import (
	"fmt"

	fx "github.com/henkwiedig/msposd-remote/pkg/framework"
	"github.com/henkwiedig/msposd-remote/pkg/input"
)

// Controller polls the input sources once per loop tick, in the
// order they were given, and feeds every observed event to the
// sequencer. When a pin edge and a line key land on the same tick
// both bursts are emitted, pin first; the sources are independent
// and no deduplication happens on purpose.
type Controller struct {
	sources []input.Source
	seq     *Sequencer
}

// NewController creates a Controller over ordered sources.
func NewController(seq *Sequencer, sources ...input.Source) *Controller {
	return &Controller{sources: sources, seq: seq}
}

// AddToLoop implements LoopAdder. Sources that need a background
// reader are registered as runnables.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.AddController(c)
	for _, src := range c.sources {
		if runner, ok := src.(fx.Runnable); ok {
			loop.AddRunnable(runner)
		}
	}
}

// Control implements Controller. Events posted to the loop directly
// (e.g. from an interactive shell) are handled after the polled
// sources.
func (c *Controller) Control(cc fx.ControlContext) error {
	for _, src := range c.sources {
		events, err := src.Poll()
		if err != nil {
			return fmt.Errorf("input source failed: %v", err)
		}
		for _, ev := range events {
			if err := c.seq.Handle(ev); err != nil {
				return err
			}
		}
	}
	for _, msg := range cc.Messages() {
		if ev, ok := msg.(input.Event); ok {
			if err := c.seq.Handle(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
