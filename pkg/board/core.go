// Package board assembles the device-side protocol core.
package board

import (
	fx "github.com/betz-engineering/uiboard.go/pkg/framework"

	"github.com/betz-engineering/uiboard.go/pkg/board/control"
	"github.com/betz-engineering/uiboard.go/pkg/board/frame"
	"github.com/betz-engineering/uiboard.go/pkg/board/hw"
)

// Core wires the frame assembler and the command dispatcher to their
// transport and hardware collaborators. The bulk path is polled from the
// control loop; the control path is entered synchronously by the transport
// whenever the host issues a request.
type Core struct {
	assembler  *frame.Assembler
	dispatcher *control.Dispatcher
}

// NewCore creates a Core streaming frames from endpoint into sink and
// dispatching control requests over bank.
func NewCore(endpoint frame.Endpoint, sink frame.Sink, bank *hw.Bank) *Core {
	return &Core{
		assembler:  frame.NewAssembler(endpoint, sink),
		dispatcher: control.NewDispatcher(bank),
	}
}

// Assembler exposes the frame assembler, mainly for inspection.
func (c *Core) Assembler() *frame.Assembler {
	return c.assembler
}

// HandleControl serves one host control request. It runs in the transport's
// execution context and completes r before returning.
func (c *Core) HandleControl(req control.Request, r control.Responder) {
	c.dispatcher.Dispatch(req, r)
}

// Control implements framework.Controller by polling the bulk endpoint.
func (c *Core) Control(cc fx.ControlContext) error {
	c.assembler.Poll(cc.Time())
	return nil
}

// AddToLoop implements framework.LoopAdder.
func (c *Core) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PhasePoll, c)
}
