package workshop

import (
	"errors"
	"sync"
)

// ErrBusy is returned when an action is triggered while its previous call is
// still in flight. The trigger has no effect.
var ErrBusy = errors.New("action already in progress")

// busyFlags tracks one in-flight marker per action. Flags are independent:
// a busy action never blocks another.
type busyFlags struct {
	mu    sync.Mutex
	flags map[Action]bool
}

func newBusyFlags() *busyFlags {
	return &busyFlags{flags: make(map[Action]bool, len(Actions))}
}

// acquire marks a as in flight. It returns false if a was already marked.
func (b *busyFlags) acquire(a Action) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.flags[a] {
		return false
	}
	b.flags[a] = true
	return true
}

func (b *busyFlags) release(a Action) {
	b.mu.Lock()
	b.flags[a] = false
	b.mu.Unlock()
}

func (b *busyFlags) isBusy(a Action) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flags[a]
}

func (b *busyFlags) snapshot() map[string]bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]bool, len(Actions))
	for _, a := range Actions {
		out[string(a)] = b.flags[a]
	}
	return out
}
