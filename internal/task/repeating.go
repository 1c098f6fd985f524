package task

import (
	"sync"
	"time"
)

// RepeatingTask executes a function in a fixed interval on its own goroutine
type RepeatingTask struct {
	action   func()
	interval time.Duration

	mtx  sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewRepeating creates a new repeating task.
// The task does not run before Start is called.
func NewRepeating(action func(), interval time.Duration) *RepeatingTask {
	return &RepeatingTask{
		action:   action,
		interval: interval,
	}
}

// Running reports whether the task is currently scheduled
func (task *RepeatingTask) Running() bool {
	task.mtx.Lock()
	defer task.mtx.Unlock()
	return task.stop != nil
}

// Start schedules the task.
// Calling Start on a running task is a no-op.
func (task *RepeatingTask) Start() {
	task.mtx.Lock()
	defer task.mtx.Unlock()
	if task.stop != nil {
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	task.stop = stop
	task.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(task.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				task.action()
			case <-stop:
				return
			}
		}
	}()
}

// Stop unschedules the task and waits for a currently running execution to finish.
// Calling Stop on a task that is not running is a no-op.
// If forceExec is set, the action is executed one last time after the task stopped.
func (task *RepeatingTask) Stop(forceExec bool) {
	task.mtx.Lock()
	if task.stop == nil {
		task.mtx.Unlock()
		return
	}
	close(task.stop)
	done := task.done
	task.stop = nil
	task.done = nil
	task.mtx.Unlock()

	<-done
	if forceExec {
		task.action()
	}
}
