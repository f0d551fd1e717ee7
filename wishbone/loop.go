package wishbone

import (
	"context"
	"time"
)

// Logger receives task failures. logxi.Logger satisfies it.
type Logger interface {
	Warn(msg string, args ...interface{}) error
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) error { return nil }

// Task is one subsystem serviced by the Loop.
type Task interface {
	Tick(ctx context.Context, now uint32) error
}

// TaskFunc adapts a function to Task.
type TaskFunc func(ctx context.Context, now uint32) error

func (f TaskFunc) Tick(ctx context.Context, now uint32) error {
	return f(ctx, now)
}

type namedTask struct {
	name string
	task Task
}

// Loop is a single-threaded cooperative scheduler: each pass ticks every task
// once, in registration order, then yields for the configured period.
type Loop struct {
	clock  Clock
	period time.Duration
	logger Logger
	tasks  []namedTask
	passes uint64
}

// NewLoop creates a loop driven by clock. A nil logger discards task errors.
func NewLoop(clock Clock, period time.Duration, logger Logger) *Loop {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Loop{
		clock:  clock,
		period: period,
		logger: logger,
	}
}

// Add registers a task. Tasks run in the order they were added.
func (l *Loop) Add(name string, task Task) {
	l.tasks = append(l.tasks, namedTask{name: name, task: task})
}

// Passes returns the number of completed passes.
func (l *Loop) Passes() uint64 {
	return l.passes
}

// RunOnce ticks every task once. A failing task is logged and does not stop the others.
func (l *Loop) RunOnce(ctx context.Context) {
	for _, t := range l.tasks {
		if ctx.Err() != nil {
			return
		}
		if err := t.task.Tick(ctx, l.clock.Millis()); err != nil {
			l.logger.Warn("task failed", "task", t.name, "err", err)
		}
	}
	l.passes++
}

// Run repeats RunOnce until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		l.RunOnce(ctx)

		timer.Reset(l.period)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
