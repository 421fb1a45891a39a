package clicker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Engine executes one Job at a time on a background goroutine. At most one
// run is ever active: Start while running and Stop while idle are no-ops.
type Engine struct {
	pointer Pointer
	logger  Logger

	running atomic.Bool
	clicks  atomic.Int64

	mu       sync.Mutex
	stopCh   chan struct{}
	stopOnce *sync.Once

	onStatus func(running bool)
	onCount  func(count int)
}

func NewEngine(pointer Pointer, logger Logger) (*Engine, error) {
	if pointer == nil {
		return nil, fmt.Errorf("pointer is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	return &Engine{pointer: pointer, logger: logger}, nil
}

// SetCallbacks registers the status and click-count observers. Both are
// advisory fire-and-forget events; panics inside them are swallowed.
func (e *Engine) SetCallbacks(onStatus func(bool), onCount func(int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onStatus = onStatus
	e.onCount = onCount
}

func (e *Engine) Running() bool {
	return e.running.Load()
}

func (e *Engine) Clicks() int {
	return int(e.clicks.Load())
}

// Start launches the click loop for job. If a run is already active the call
// returns immediately without effect. The status-changed(true) notification
// is emitted synchronously before the loop begins.
func (e *Engine) Start(job Job) {
	if !e.running.CompareAndSwap(false, true) {
		return
	}

	e.clicks.Store(0)

	stop := make(chan struct{})
	e.mu.Lock()
	e.stopCh = stop
	e.stopOnce = &sync.Once{}
	e.mu.Unlock()

	e.logger.Info("Run started",
		"targets", len(job.Targets),
		"interval", job.Interval,
		"repeat", job.Repeat,
		"button", string(job.Button),
		"double", job.Double,
	)
	e.notifyStatus(true)

	go e.clickLoop(job, stop)
}

// Stop signals the active loop to exit at its next check point. The engine is
// marked not-running before Stop returns; the loop's own terminal
// status-changed(false) arrives shortly after as an idempotent confirmation.
func (e *Engine) Stop() {
	if !e.running.Load() {
		return
	}

	e.mu.Lock()
	stop := e.stopCh
	once := e.stopOnce
	e.mu.Unlock()
	if once == nil {
		return
	}

	once.Do(func() { close(stop) })
	e.running.Store(false)
	e.logger.Info("Run stopped", "clicks", e.Clicks())
	e.notifyStatus(false)
}

func (e *Engine) clickLoop(job Job, stop <-chan struct{}) {
	// The teardown only acts while this loop is still the current run. After
	// Stop a new Start may have installed a fresh stop channel; clearing the
	// flag then would mark the successor run stopped and orphan its loop.
	defer func() {
		e.mu.Lock()
		current := e.stopCh == stop
		e.mu.Unlock()
		if !current {
			return
		}
		e.running.Store(false)
		e.notifyStatus(false)
	}()

	presses := 1
	if job.Double {
		presses = 2
	}
	index := 0

	for {
		select {
		case <-stop:
			return
		default:
		}

		if len(job.Targets) > 0 {
			target := job.Targets[index%len(job.Targets)]
			index++
			if err := e.pointer.MoveTo(target.X, target.Y); err != nil {
				e.logger.Warn("Pointer move failed", "x", target.X, "y", target.Y, "err", err)
			}
		}

		if err := e.pointer.Click(job.Button, presses); err != nil {
			e.logger.Warn("Click failed", "button", string(job.Button), "err", err)
		}

		count := int(e.clicks.Add(1))
		e.notifyCount(count)

		if job.Repeat > 0 && count >= job.Repeat {
			e.logger.Info("Repeat limit reached", "clicks", count)
			return
		}

		if !e.waitInterval(job.Interval, stop) {
			return
		}
	}
}

// waitInterval sleeps for d or until stop fires, whichever comes first. A
// non-positive interval performs no wait beyond a final stop check.
func (e *Engine) waitInterval(d time.Duration, stop <-chan struct{}) bool {
	if d <= 0 {
		select {
		case <-stop:
			return false
		default:
			return true
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-stop:
		return false
	case <-timer.C:
		return true
	}
}

func (e *Engine) notifyStatus(running bool) {
	e.mu.Lock()
	cb := e.onStatus
	e.mu.Unlock()
	if cb == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Status callback panicked", "err", r)
		}
	}()
	cb(running)
}

func (e *Engine) notifyCount(count int) {
	e.mu.Lock()
	cb := e.onCount
	e.mu.Unlock()
	if cb == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Count callback panicked", "err", r)
		}
	}()
	cb(count)
}
