package hotkeys

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeRegistrar struct {
	mu     sync.Mutex
	active string
	log    []string
	fireCh chan struct{}
	fail   map[string]error
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{fireCh: make(chan struct{}), fail: map[string]error{}}
}

func (f *fakeRegistrar) Register(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail[name]; err != nil {
		f.log = append(f.log, "fail "+name)
		return err
	}
	f.active = name
	f.log = append(f.log, "register "+name)
	return nil
}

func (f *fakeRegistrar) Unregister() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.log = append(f.log, "unregister "+f.active)
	f.active = ""
}

func (f *fakeRegistrar) Poll(quantum time.Duration) (bool, error) {
	select {
	case <-f.fireCh:
		return true, nil
	case <-time.After(quantum):
		return false, nil
	}
}

func (f *fakeRegistrar) fire() {
	f.fireCh <- struct{}{}
}

func (f *fakeRegistrar) registered() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

func (f *fakeRegistrar) snapshotLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.log...)
}

func (f *fakeRegistrar) setFail(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.fail, name)
	} else {
		f.fail[name] = err
	}
}

type fakeSource struct {
	keys chan string
}

func newFakeSource() *fakeSource {
	return &fakeSource{keys: make(chan string)}
}

func (s *fakeSource) NextKey(cancel <-chan struct{}) (string, error) {
	select {
	case key := <-s.keys:
		return key, nil
	case <-cancel:
		return "", errors.New("cancelled")
	}
}

type testLogger struct{}

func (testLogger) Debug(string, ...any) {}
func (testLogger) Info(string, ...any)  {}
func (testLogger) Warn(string, ...any)  {}
func (testLogger) Error(string, ...any) {}

func eventually(t *testing.T, what string, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestSetHotkeySwapsRegistrationWithoutOverlap(t *testing.T) {
	reg := newFakeRegistrar()
	lis, err := NewListener(reg, nil, func() {}, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}
	lis.SetHotkey("F6")
	lis.Start()
	defer lis.Stop()

	eventually(t, "initial registration", func() bool { return reg.registered() == "F6" })

	lis.SetHotkey("F8")
	eventually(t, "re-registration", func() bool { return reg.registered() == "F8" })

	log := reg.snapshotLog()
	want := []string{"register F6", "unregister F6", "register F8"}
	if len(log) < len(want) {
		t.Fatalf("registrar log too short: %v", log)
	}
	for i, step := range want {
		if log[i] != step {
			t.Fatalf("registrar log[%d] = %q, want %q (full log %v)", i, log[i], step, log)
		}
	}
}

func TestUnknownKeyDefersUntilBindingChanges(t *testing.T) {
	reg := newFakeRegistrar()
	reg.setFail("F13", ErrUnknownKey)
	lis, err := NewListener(reg, nil, func() {}, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}
	lis.SetHotkey("F13")
	lis.Start()
	defer lis.Stop()

	eventually(t, "failed attempt", func() bool {
		log := reg.snapshotLog()
		return len(log) >= 1 && log[0] == "fail F13"
	})
	time.Sleep(50 * time.Millisecond)
	if log := reg.snapshotLog(); len(log) > 1 {
		t.Fatalf("unknown key retried without a binding change: %v", log)
	}

	lis.SetHotkey("F6")
	eventually(t, "registration after change", func() bool { return reg.registered() == "F6" })
}

func TestRegistrationFailureRetriesAfterBackoff(t *testing.T) {
	reg := newFakeRegistrar()
	reg.setFail("F6", errors.New("hotkey busy"))
	lis, err := NewListener(reg, nil, func() {}, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}
	lis.retryBackoff = 5 * time.Millisecond
	lis.SetHotkey("F6")
	lis.Start()
	defer lis.Stop()

	eventually(t, "first failed attempt", func() bool {
		return len(reg.snapshotLog()) >= 1
	})
	reg.setFail("F6", nil)
	eventually(t, "eventual registration", func() bool { return reg.registered() == "F6" })
}

func TestToggleCallbackInvokedPerFire(t *testing.T) {
	reg := newFakeRegistrar()
	var mu sync.Mutex
	toggles := 0
	lis, err := NewListener(reg, nil, func() {
		mu.Lock()
		toggles++
		mu.Unlock()
	}, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}
	lis.SetHotkey("F6")
	lis.Start()
	defer lis.Stop()

	eventually(t, "registration", func() bool { return reg.registered() == "F6" })
	reg.fire()
	reg.fire()
	eventually(t, "two toggles", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return toggles == 2
	})
}

func TestToggleCallbackPanicDoesNotKillListener(t *testing.T) {
	reg := newFakeRegistrar()
	var mu sync.Mutex
	calls := 0
	lis, err := NewListener(reg, nil, func() {
		mu.Lock()
		calls++
		mu.Unlock()
		panic("boom")
	}, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}
	lis.SetHotkey("F6")
	lis.Start()
	defer lis.Stop()

	eventually(t, "registration", func() bool { return reg.registered() == "F6" })
	reg.fire()
	reg.fire()
	eventually(t, "second call after panic", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 2
	})
}

func TestStopUnregistersAndIsIdempotent(t *testing.T) {
	reg := newFakeRegistrar()
	lis, err := NewListener(reg, nil, func() {}, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}
	lis.SetHotkey("F6")
	lis.Start()
	eventually(t, "registration", func() bool { return reg.registered() == "F6" })

	lis.Stop()
	if reg.registered() != "" {
		t.Fatalf("hotkey still registered after stop")
	}
	if lis.Running() {
		t.Fatalf("listener reports running after stop")
	}
	lis.Stop()
}

func TestCaptureIgnoresLoneModifierThenDisarms(t *testing.T) {
	reg := newFakeRegistrar()
	source := newFakeSource()
	lis, err := NewListener(reg, source, func() {}, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}

	var mu sync.Mutex
	var captured []string
	lis.BeginCapture(func(name string) {
		mu.Lock()
		captured = append(captured, name)
		mu.Unlock()
	})
	if !lis.Capturing() {
		t.Fatalf("capture not armed")
	}

	source.keys <- "shift"
	source.keys <- "Control_L"
	source.keys <- "f8"

	eventually(t, "captured key", func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(captured) == 1
	})
	mu.Lock()
	got := captured[0]
	mu.Unlock()
	if got != "F8" {
		t.Fatalf("captured %q, want F8", got)
	}
	eventually(t, "capture disarmed", func() bool { return !lis.Capturing() })
}

func TestCancelCaptureReportsNothing(t *testing.T) {
	reg := newFakeRegistrar()
	source := newFakeSource()
	lis, err := NewListener(reg, source, func() {}, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}

	reported := make(chan string, 1)
	lis.BeginCapture(func(name string) { reported <- name })
	lis.CancelCapture()
	eventually(t, "capture disarmed", func() bool { return !lis.Capturing() })

	select {
	case name := <-reported:
		t.Fatalf("cancelled capture reported %q", name)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCaptureLeavesActiveHotkeyRegistered(t *testing.T) {
	reg := newFakeRegistrar()
	source := newFakeSource()
	toggled := make(chan struct{}, 4)
	lis, err := NewListener(reg, source, func() { toggled <- struct{}{} }, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}
	lis.SetHotkey("F6")
	lis.Start()
	defer lis.Stop()
	eventually(t, "registration", func() bool { return reg.registered() == "F6" })

	captured := make(chan string, 1)
	lis.BeginCapture(func(name string) { captured <- name })

	// The registered binding keeps firing while capture is armed.
	reg.fire()
	select {
	case <-toggled:
	case <-time.After(2 * time.Second):
		t.Fatalf("toggle did not fire during capture")
	}

	source.keys <- "A"
	select {
	case name := <-captured:
		if name != "A" {
			t.Fatalf("captured %q, want A", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("capture did not complete")
	}
	if reg.registered() != "F6" {
		t.Fatalf("capture disturbed the active registration")
	}
}

// faultyPollRegistrar accepts any registration but fails every poll without
// consuming the quantum.
type faultyPollRegistrar struct {
	mu    sync.Mutex
	polls int
}

func (f *faultyPollRegistrar) Register(string) error { return nil }
func (f *faultyPollRegistrar) Unregister()           {}

func (f *faultyPollRegistrar) Poll(time.Duration) (bool, error) {
	f.mu.Lock()
	f.polls++
	f.mu.Unlock()
	return false, errors.New("message pump broke")
}

func (f *faultyPollRegistrar) pollCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polls
}

func TestPollErrorsArePacedNotSpun(t *testing.T) {
	reg := &faultyPollRegistrar{}
	lis, err := NewListener(reg, nil, func() {}, testLogger{})
	if err != nil {
		t.Fatalf("NewListener: %v", err)
	}
	lis.SetHotkey("F6")
	lis.Start()
	defer lis.Stop()

	time.Sleep(100 * time.Millisecond)

	// At one poll per quantum roughly ten attempts fit in the window; a
	// loop that skips the wait on error would log thousands.
	if got := reg.pollCount(); got > 30 {
		t.Fatalf("%d poll attempts in 100ms, want them paced at the quantum", got)
	}
}
