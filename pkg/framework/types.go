package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// Controller is one bounded, non-blocking step invoked every loop
// iteration. Controllers service polled hardware and must return without
// waiting: the same iteration drives every other peripheral.
type Controller interface {
	Control(ControlContext) error
}

// TimeSource provides the time for controlling logic.
type TimeSource interface {
	Time() time.Time
}

// ControlContext is the context of the current loop iteration. Time is
// sampled once per iteration so every controller observes the same instant.
type ControlContext interface {
	TimeSource
	// Context retrieves context.Context.
	Context() context.Context
	// Phase gets the current execution phase.
	Phase() int

	LoopControl
}

// Phases is the number of execution phases per iteration.
const Phases int = 4

// Execution phases, run in order within one iteration.
const (
	// PhasePoll services input endpoints and sensors.
	PhasePoll int = 0
	// PhaseControl runs decision logic over freshly polled state.
	PhaseControl int = 1
	// PhaseActuate pushes outputs to hardware.
	PhaseActuate int = 2
	// PhaseIdle runs housekeeping after everything else.
	PhaseIdle int = 3
)

// LoopControl exposes access to the controlling loop.
type LoopControl interface {
	// TriggerNext schedules the next iteration immediately after the
	// current one instead of waiting for the tick.
	TriggerNext()
}

// ControlFunc defines the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(ctx ControlContext) error {
	return f(ctx)
}
