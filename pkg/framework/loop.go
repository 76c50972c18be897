package framework

import (
	"context"
	"log"
	"time"

	"github.com/golang/glog"
)

// Loop drives controllers cooperatively from a single execution context.
// Each tick runs one iteration: every controller, phase by phase, exactly
// once. Controllers never run concurrently with each other, so state owned
// by a controller needs no locking.
type Loop struct {
	Interval time.Duration

	phases [Phases][]Controller

	runners []Runnable

	wakeUpCh chan struct{}
}

// LoopAdder provides specific logic to add components to loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}

type loopIteration struct {
	loop  *Loop
	ctx   context.Context
	time  time.Time
	phase int
}

// NewLoop creates a Loop.
func NewLoop() *Loop {
	return &Loop{Interval: time.Millisecond}
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddController registers controllers at a phase.
func (l *Loop) AddController(phase int, ctls ...Controller) *Loop {
	l.phases[phase] = append(l.phases[phase], ctls...)
	for _, ctl := range ctls {
		if runner, ok := ctl.(Runnable); ok {
			l.runners = append(l.runners, runner)
		}
	}
	return l
}

// AddRunnable adds Runnable implementations.
func (l *Loop) AddRunnable(runnables ...Runnable) *Loop {
	l.runners = append(l.runners, runnables...)
	return l
}

// Run implements Runnable.
func (l *Loop) Run(ctx context.Context) error {
	if l.wakeUpCh == nil {
		l.wakeUpCh = make(chan struct{}, 1)
	}

	runner := NewRunnerWith(ctx)
	runner.Go(l.runners...)
	defer runner.Wait()

	interval := l.Interval
	if interval == 0 {
		interval = time.Millisecond
	}
	timer := time.Tick(interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer:
			l.runIteration(ctx)
		case <-l.wakeUpCh:
			l.runIteration(ctx)
		}
	}
}

// RunOrFail is intended to be used in main to simply run the loop.
func (l *Loop) RunOrFail() {
	if err := l.Run(context.TODO()); err != nil && err != context.Canceled {
		log.Fatalln(err)
	}
}

// TriggerNext implements LoopControl.
func (l *Loop) TriggerNext() {
	select {
	case l.wakeUpCh <- struct{}{}:
	default:
	}
}

func (l *Loop) runIteration(ctx context.Context) {
	iter := &loopIteration{loop: l, ctx: ctx, time: time.Now()}
	for i := 0; i < Phases; i++ {
		iter.phase = i
		for _, ctl := range l.phases[i] {
			if err := ctl.Control(iter); err != nil {
				glog.Errorf("controller error at phase %d: %v", i, err)
			}
		}
	}
}

func (t *loopIteration) Context() context.Context {
	return t.ctx
}

func (t *loopIteration) Time() time.Time {
	return t.time
}

func (t *loopIteration) Phase() int {
	return t.phase
}

func (t *loopIteration) TriggerNext() {
	t.loop.TriggerNext()
}
