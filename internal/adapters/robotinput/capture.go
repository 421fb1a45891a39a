//go:build !windows

package robotinput

import (
	"errors"

	hook "github.com/robotn/gohook"
)

// ErrCaptureCancelled is returned by NextKey when the caller closes the
// cancel channel before a key arrives.
var ErrCaptureCancelled = errors.New("key capture cancelled")

// Capture reads the next key press from the global gohook event stream.
// Only one capture may run at a time; the hotkey listener enforces that.
type Capture struct{}

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) NextKey(cancel <-chan struct{}) (string, error) {
	evChan := hook.Start()
	defer hook.End()

	for {
		select {
		case <-cancel:
			return "", ErrCaptureCancelled
		case ev, ok := <-evChan:
			if !ok {
				return "", errors.New("input hook closed")
			}
			if ev.Kind != hook.KeyDown {
				continue
			}
			name := hook.RawcodetoKeychar(ev.Rawcode)
			if name == "" {
				continue
			}
			return name, nil
		}
	}
}
