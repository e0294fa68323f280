package utils

import "sync"

var (
	messageLocks = make(map[string]*sync.Mutex)
	messageMutex = &sync.Mutex{}
)

// LockMessage serializes writers of one trial-card message. Every handler
// that decodes, mutates and re-edits a card holds this lock across the
// whole cycle so concurrent button presses cannot interleave. The returned
// function releases the lock.
//
// Locks are kept per message id for the process lifetime. A bot serves a
// few trial messages at a time, so the map stays small.
func LockMessage(messageID string) func() {
	messageMutex.Lock()
	lock, ok := messageLocks[messageID]
	if !ok {
		lock = &sync.Mutex{}
		messageLocks[messageID] = lock
	}
	messageMutex.Unlock()

	lock.Lock()
	return lock.Unlock
}
