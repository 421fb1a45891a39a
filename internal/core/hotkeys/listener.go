package hotkeys

import (
	"errors"
	"runtime"
	"sync"
	"time"
)

// ErrUnknownKey is returned by a Registrar when the key name cannot be
// resolved to a registrable code. The listener then waits for the binding to
// change instead of retrying a name that can never succeed.
var ErrUnknownKey = errors.New("unknown key name")

// Registrar binds a single named hotkey with the operating system. Register,
// Unregister and Poll are always called from the same goroutine, which stays
// locked to one OS thread for the lifetime of the listener.
type Registrar interface {
	Register(name string) error
	Unregister()
	Poll(quantum time.Duration) (fired bool, err error)
}

// KeySource delivers the next key press for capture mode. NextKey blocks
// until a key arrives or cancel is closed, in which case it returns an error.
type KeySource interface {
	NextKey(cancel <-chan struct{}) (string, error)
}

// Logger is the subset of log/slog used by this package.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

const pollQuantum = 10 * time.Millisecond

// Listener owns the hotkey registration loop. It keeps exactly one binding
// registered at a time, re-registers when the binding changes, and fires the
// toggle callback on every hotkey press. Capture mode runs alongside the
// registered binding and resolves a single key press into a canonical name.
type Listener struct {
	reg      Registrar
	source   KeySource
	onToggle func()
	logger   Logger

	retryBackoff time.Duration

	mu            sync.Mutex
	name          string
	started       bool
	stopCh        chan struct{}
	doneCh        chan struct{}
	changeCh      chan struct{}
	captureCancel chan struct{}
}

// NewListener wires a registrar, an optional capture source and the toggle
// callback. The initial binding is set with SetHotkey before Start.
func NewListener(reg Registrar, source KeySource, onToggle func(), logger Logger) (*Listener, error) {
	if reg == nil {
		return nil, errors.New("hotkeys: registrar is nil")
	}
	if onToggle == nil {
		return nil, errors.New("hotkeys: toggle callback is nil")
	}
	if logger == nil {
		return nil, errors.New("hotkeys: logger is nil")
	}
	return &Listener{
		reg:          reg,
		source:       source,
		onToggle:     onToggle,
		logger:       logger,
		retryBackoff: time.Second,
	}, nil
}

// Hotkey returns the currently requested binding.
func (l *Listener) Hotkey() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.name
}

// SetHotkey replaces the binding. A running listener unregisters the old key
// and registers the new one; the two are never registered at the same time.
// Unrecognized names are kept as requested and reported by the registrar.
func (l *Listener) SetHotkey(name string) {
	if canon, ok := Canonicalize(name); ok {
		name = canon
	}
	l.mu.Lock()
	if name == l.name {
		l.mu.Unlock()
		return
	}
	l.name = name
	change := l.changeCh
	l.mu.Unlock()

	if change != nil {
		select {
		case change <- struct{}{}:
		default:
		}
	}
}

// Start launches the listener goroutine. Starting an already running
// listener is a no-op.
func (l *Listener) Start() {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})
	l.changeCh = make(chan struct{}, 1)
	stop, done, change := l.stopCh, l.doneCh, l.changeCh
	l.mu.Unlock()

	go l.run(stop, done, change)
}

// Stop unregisters the binding and waits for the listener goroutine to exit.
// A pending capture is cancelled as well. Stopping an idle listener is a
// no-op.
func (l *Listener) Stop() {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return
	}
	l.started = false
	stop, done := l.stopCh, l.doneCh
	l.stopCh, l.doneCh, l.changeCh = nil, nil, nil
	l.mu.Unlock()

	close(stop)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		l.logger.Warn("Hotkey listener did not stop in time")
	}
	l.CancelCapture()
}

// Running reports whether the listener goroutine is active.
func (l *Listener) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started
}

func (l *Listener) run(stopCh, doneCh chan struct{}, changeCh chan struct{}) {
	defer close(doneCh)

	// Windows binds RegisterHotKey and its message queue to the calling
	// thread, so the whole register/poll cycle must not migrate.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case <-stopCh:
			return
		default:
		}

		name := l.Hotkey()
		if err := l.reg.Register(name); err != nil {
			if errors.Is(err, ErrUnknownKey) {
				l.logger.Error("Cannot register hotkey", "hotkey", name, "err", err)
				select {
				case <-stopCh:
					return
				case <-changeCh:
				}
				continue
			}
			l.logger.Error("Hotkey registration failed", "hotkey", name, "err", err)
			select {
			case <-stopCh:
				return
			case <-changeCh:
			case <-time.After(l.retryBackoff):
			}
			continue
		}
		l.logger.Info("Hotkey registered", "hotkey", name)

		l.pollUntilChange(name, stopCh, changeCh)
		l.reg.Unregister()
		l.logger.Info("Hotkey unregistered", "hotkey", name)

		select {
		case <-stopCh:
			return
		default:
		}
	}
}

func (l *Listener) pollUntilChange(name string, stopCh, changeCh chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case <-changeCh:
			return
		default:
		}

		fired, err := l.reg.Poll(pollQuantum)
		if err != nil {
			l.logger.Error("Hotkey poll failed", "hotkey", name, "err", err)
			// A registrar that fails fast must not turn this loop into a
			// busy spin; pace errors at the same rate as quiet polls.
			time.Sleep(pollQuantum)
			continue
		}
		if fired {
			l.logger.Info("Hotkey triggered", "hotkey", name)
			l.dispatchToggle()
		}
	}
}

func (l *Listener) dispatchToggle() {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Toggle callback panicked", "panic", r)
		}
	}()
	l.onToggle()
}

// BeginCapture arms one-shot capture: the next non-modifier key press is
// canonicalized and delivered to report, then capture disarms itself. Arming
// while a capture is pending replaces it. The active hotkey stays registered
// throughout.
func (l *Listener) BeginCapture(report func(name string)) {
	if l.source == nil || report == nil {
		return
	}
	l.mu.Lock()
	if l.captureCancel != nil {
		close(l.captureCancel)
	}
	cancel := make(chan struct{})
	l.captureCancel = cancel
	l.mu.Unlock()

	l.logger.Info("Capture mode started")
	go l.captureLoop(report, cancel)
}

// CancelCapture disarms a pending capture without reporting a key.
func (l *Listener) CancelCapture() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.captureCancel != nil {
		close(l.captureCancel)
		l.captureCancel = nil
	}
}

// Capturing reports whether a capture is pending.
func (l *Listener) Capturing() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.captureCancel != nil
}

func (l *Listener) captureLoop(report func(string), cancel chan struct{}) {
	defer func() {
		l.mu.Lock()
		if l.captureCancel == cancel {
			l.captureCancel = nil
		}
		l.mu.Unlock()
	}()

	for {
		raw, err := l.source.NextKey(cancel)
		if err != nil {
			l.logger.Debug("Capture ended without a key", "err", err)
			return
		}
		name, ok := Canonicalize(raw)
		if !ok {
			l.logger.Debug("Ignoring unrecognized key", "key", raw)
			continue
		}
		if IsModifier(name) {
			continue
		}
		l.logger.Info("Captured key", "key", name)
		l.reportCapture(report, name)
		return
	}
}

func (l *Listener) reportCapture(report func(string), name string) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Capture callback panicked", "panic", r)
		}
	}()
	report(name)
}
