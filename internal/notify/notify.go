// Package notify sends system toast notifications for clicker state changes.
package notify

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gen2brain/beeep"
)

const appName = "SlickClick"

// Notifier sends toasts through the platform notification service. A
// disabled notifier drops everything silently.
type Notifier struct {
	mu      sync.Mutex
	enabled bool
}

func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	n.enabled = enabled
	n.mu.Unlock()
}

func (n *Notifier) Enabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.enabled
}

// Started announces a new clicking run.
func (n *Notifier) Started(hotkey string) {
	n.send("Clicking started", "Press "+hotkey+" to stop")
}

// Stopped announces the end of a run and how many clicks it performed.
func (n *Notifier) Stopped(clicks int) {
	n.send("Clicking stopped", strconv.Itoa(clicks)+" clicks performed")
}

// UpdateAvailable announces a newer release.
func (n *Notifier) UpdateAvailable(version string) {
	n.send("Update available", "Version "+version+" is ready to download")
}

// Error announces a failure the user should know about.
func (n *Notifier) Error(msg string) {
	n.send("Error", msg)
}

func (n *Notifier) send(title, message string) {
	if !n.Enabled() {
		return
	}
	// Notification failures are not worth surfacing.
	_ = beeep.Notify(fmt.Sprintf("%s: %s", appName, title), message, "")
}
