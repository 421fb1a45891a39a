//go:build windows

package wininput

import (
	"errors"
	"time"
)

// ErrCaptureCancelled is returned by NextKey when the caller closes the
// cancel channel before a key arrives.
var ErrCaptureCancelled = errors.New("key capture cancelled")

// Capture watches the async key state of every known virtual-key code and
// reports the first new press. Keys already held when NextKey is called do
// not count until released and pressed again.
type Capture struct{}

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) NextKey(cancel <-chan struct{}) (string, error) {
	state := make(map[uint32]bool, len(captureVKs))
	for _, vk := range captureVKs {
		state[vk] = isKeyDown(vk)
	}

	ticker := time.NewTicker(2 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return "", ErrCaptureCancelled
		case <-ticker.C:
		}

		for _, vk := range captureVKs {
			down := isKeyDown(vk)
			wasDown := state[vk]
			state[vk] = down
			if down && !wasDown {
				name, ok := KeyFromVK(vk)
				if !ok {
					continue
				}
				return name, nil
			}
		}
	}
}

func isKeyDown(vk uint32) bool {
	state, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(state)&0x8000 != 0
}
